package usecase

import (
	"context"
	"testing"

	"hotel-booking/internal/dto/request"
	"hotel-booking/internal/hotelerr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddRoomDuplicate(t *testing.T) {
	env := newTestEnv()
	env.addRoom(t, "101", "single", 12000)

	_, err := env.service.Room.AddRoom(context.Background(), &request.CreateRoomRequest{
		RoomNumber:    "101",
		RoomType:      "double",
		PricePerNight: 18000,
	})
	require.Error(t, err)
	assert.Equal(t, hotelerr.KindDuplicateKey, hotelerr.KindOf(err))
}

func TestAddRoomValidation(t *testing.T) {
	env := newTestEnv()

	_, err := env.service.Room.AddRoom(context.Background(), &request.CreateRoomRequest{
		RoomNumber:    "101",
		RoomType:      "single",
		PricePerNight: -1,
	})
	assert.Error(t, err)
}

func TestRemoveRoom(t *testing.T) {
	env := newTestEnv()
	env.addRoom(t, "101", "single", 12000)

	require.NoError(t, env.service.Room.RemoveRoom(context.Background(), "101"))

	_, err := env.service.Room.GetRoom(context.Background(), "101")
	assert.Equal(t, hotelerr.KindNotFound, hotelerr.KindOf(err))

	err = env.service.Room.RemoveRoom(context.Background(), "101")
	assert.Equal(t, hotelerr.KindNotFound, hotelerr.KindOf(err))
}

func TestAvailableRooms(t *testing.T) {
	env := newTestEnv()
	env.addRoom(t, "101", "single", 12000)
	env.addRoom(t, "102", "double", 18000)
	env.addRoom(t, "103", "suite", 45000)
	env.addGuest(t, "g1")

	env.book(t, "g1", "102", 1, 3)

	available, err := env.service.Room.AvailableRooms(context.Background(), &request.DateRangeRequest{
		CheckInDate:  day(2),
		CheckOutDate: day(4),
	})
	require.NoError(t, err)

	numbers := make([]string, 0, len(available))
	for _, room := range available {
		numbers = append(numbers, room.RoomNumber)
	}
	assert.ElementsMatch(t, []string{"101", "103"}, numbers)
}

func TestAvailableRoomsBoundary(t *testing.T) {
	env := newTestEnv()
	env.addRoom(t, "101", "single", 12000)
	env.addGuest(t, "g1")

	env.book(t, "g1", "101", 1, 3)

	// A range starting on the existing check-out day does not overlap.
	available, err := env.service.Room.AvailableRooms(context.Background(), &request.DateRangeRequest{
		CheckInDate:  day(3),
		CheckOutDate: day(5),
	})
	require.NoError(t, err)
	assert.Len(t, available, 1)
}

func TestAvailableRoomsInvalidRange(t *testing.T) {
	env := newTestEnv()
	env.addRoom(t, "101", "single", 12000)

	_, err := env.service.Room.AvailableRooms(context.Background(), &request.DateRangeRequest{
		CheckInDate:  day(3),
		CheckOutDate: day(3),
	})
	require.Error(t, err)
	assert.Equal(t, hotelerr.KindInvalidDateRange, hotelerr.KindOf(err))
}

func TestGuestDuplicateAndLookup(t *testing.T) {
	env := newTestEnv()
	env.addGuest(t, "g1")

	_, err := env.service.Guest.RegisterGuest(context.Background(), &request.RegisterGuestRequest{
		GuestID: "g1",
		Name:    "Someone Else",
	})
	assert.Equal(t, hotelerr.KindDuplicateKey, hotelerr.KindOf(err))

	guest, err := env.service.Guest.GetGuest(context.Background(), "g1")
	require.NoError(t, err)
	assert.Equal(t, "Guest g1", guest.Name)

	_, err = env.service.Guest.GetGuest(context.Background(), "nobody")
	assert.Equal(t, hotelerr.KindNotFound, hotelerr.KindOf(err))
}
