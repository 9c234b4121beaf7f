package usecase

import (
	"context"
	"testing"

	"hotel-booking/internal/data/entity"
	"hotel-booking/internal/dto/request"
	"hotel-booking/internal/dto/response"
	"hotel-booking/internal/hotelerr"
	"hotel-booking/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(offset int) string {
	return utils.FormatDate(utils.Today().AddDate(0, 0, offset))
}

func strPtr(s string) *string { return &s }

func (e *testEnv) addRoom(t *testing.T, number, roomType string, price float64) {
	t.Helper()
	_, err := e.service.Room.AddRoom(context.Background(), &request.CreateRoomRequest{
		RoomNumber:    number,
		RoomType:      roomType,
		PricePerNight: price,
	})
	require.NoError(t, err)
}

func (e *testEnv) addGuest(t *testing.T, guestID string) {
	t.Helper()
	_, err := e.service.Guest.RegisterGuest(context.Background(), &request.RegisterGuestRequest{
		GuestID: guestID,
		Name:    "Guest " + guestID,
		Email:   strPtr(guestID + "@example.com"),
		Phone:   strPtr("+77070000000"),
	})
	require.NoError(t, err)
}

func (e *testEnv) book(t *testing.T, guestID, roomNumber string, inOffset, outOffset int) *response.BookingResponse {
	t.Helper()
	booking, err := e.service.Booking.CreateBooking(context.Background(), &request.CreateBookingRequest{
		GuestID:      guestID,
		RoomNumber:   roomNumber,
		CheckInDate:  day(inOffset),
		CheckOutDate: day(outOffset),
	})
	require.NoError(t, err)
	return booking
}

func TestCreateBooking(t *testing.T) {
	env := newTestEnv()
	env.addRoom(t, "101", "single", 12000)
	env.addGuest(t, "g1")

	booking := env.book(t, "g1", "101", 1, 3)

	assert.Equal(t, entity.BookingStatusBooked, booking.Status)
	assert.Equal(t, 2, booking.Nights)
	assert.Equal(t, "g1", booking.GuestID)
	assert.Equal(t, "101", booking.RoomNumber)
	assert.NotEmpty(t, booking.Reference)

	all, err := env.service.Booking.ListBookings(context.Background())
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestCreateBookingHoldsRoomLease(t *testing.T) {
	env := newTestEnv()
	env.addRoom(t, "101", "single", 12000)
	env.addGuest(t, "g1")

	env.book(t, "g1", "101", 1, 3)

	assert.Equal(t, []string{"101"}, env.locker.acquired)
	assert.Equal(t, 1, env.locker.released)
}

func TestCreateBookingInvalidDates(t *testing.T) {
	env := newTestEnv()
	env.addRoom(t, "101", "single", 12000)
	env.addGuest(t, "g1")

	cases := []struct {
		name    string
		in, out int
	}{
		{"checkout equals checkin", 1, 1},
		{"checkout before checkin", 3, 1},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := env.service.Booking.CreateBooking(context.Background(), &request.CreateBookingRequest{
				GuestID:      "g1",
				RoomNumber:   "101",
				CheckInDate:  day(tc.in),
				CheckOutDate: day(tc.out),
			})
			require.Error(t, err)
			assert.Equal(t, hotelerr.KindInvalidDateRange, hotelerr.KindOf(err))
		})
	}

	all, err := env.service.Booking.ListBookings(context.Background())
	require.NoError(t, err)
	assert.Empty(t, all, "rejected bookings must not be persisted")
}

func TestCreateBookingUnknownGuestOrRoom(t *testing.T) {
	env := newTestEnv()
	env.addRoom(t, "101", "single", 12000)
	env.addGuest(t, "g1")

	_, err := env.service.Booking.CreateBooking(context.Background(), &request.CreateBookingRequest{
		GuestID:      "ghost",
		RoomNumber:   "101",
		CheckInDate:  day(1),
		CheckOutDate: day(3),
	})
	assert.Equal(t, hotelerr.KindNotFound, hotelerr.KindOf(err))

	_, err = env.service.Booking.CreateBooking(context.Background(), &request.CreateBookingRequest{
		GuestID:      "g1",
		RoomNumber:   "999",
		CheckInDate:  day(1),
		CheckOutDate: day(3),
	})
	assert.Equal(t, hotelerr.KindNotFound, hotelerr.KindOf(err))
}

func TestCreateBookingConflict(t *testing.T) {
	env := newTestEnv()
	env.addRoom(t, "101", "single", 12000)
	env.addGuest(t, "g1")
	env.addGuest(t, "g2")

	env.book(t, "g1", "101", 1, 3)

	_, err := env.service.Booking.CreateBooking(context.Background(), &request.CreateBookingRequest{
		GuestID:      "g2",
		RoomNumber:   "101",
		CheckInDate:  day(2),
		CheckOutDate: day(4),
	})
	require.Error(t, err)
	assert.Equal(t, hotelerr.KindConflict, hotelerr.KindOf(err))
}

func TestSameDayTurnoverDoesNotConflict(t *testing.T) {
	env := newTestEnv()
	env.addRoom(t, "101", "single", 12000)
	env.addGuest(t, "g1")
	env.addGuest(t, "g2")

	// One guest leaves on day +3, the next arrives the same day.
	env.book(t, "g1", "101", 1, 3)
	booking := env.book(t, "g2", "101", 3, 5)

	assert.Equal(t, entity.BookingStatusBooked, booking.Status)
}

func TestCancelThenRebook(t *testing.T) {
	env := newTestEnv()
	env.addRoom(t, "101", "single", 12000)
	env.addGuest(t, "g1")
	env.addGuest(t, "g2")

	first := env.book(t, "g1", "101", 1, 3)

	_, err := env.service.Booking.CreateBooking(context.Background(), &request.CreateBookingRequest{
		GuestID:      "g2",
		RoomNumber:   "101",
		CheckInDate:  day(2),
		CheckOutDate: day(4),
	})
	assert.Equal(t, hotelerr.KindConflict, hotelerr.KindOf(err))

	require.NoError(t, env.service.Booking.CancelBooking(context.Background(), first.ID))

	rebooked := env.book(t, "g2", "101", 2, 4)
	assert.Equal(t, entity.BookingStatusBooked, rebooked.Status)
}

func TestCancelTerminalBooking(t *testing.T) {
	env := newTestEnv()
	env.addRoom(t, "101", "single", 12000)
	env.addGuest(t, "g1")

	booking := env.book(t, "g1", "101", 1, 3)
	require.NoError(t, env.service.Booking.CancelBooking(context.Background(), booking.ID))

	err := env.service.Booking.CancelBooking(context.Background(), booking.ID)
	assert.Equal(t, hotelerr.KindInvalidTransition, hotelerr.KindOf(err))
}

func TestCancelUnknownBooking(t *testing.T) {
	env := newTestEnv()

	err := env.service.Booking.CancelBooking(context.Background(), "not-a-uuid")
	assert.Equal(t, hotelerr.KindNotFound, hotelerr.KindOf(err))
}

func TestCheckIn(t *testing.T) {
	env := newTestEnv()
	env.addRoom(t, "101", "single", 12000)
	env.addGuest(t, "g1")

	booking := env.book(t, "g1", "101", 0, 2)

	checked, err := env.service.Booking.CheckIn(context.Background(), booking.ID, &request.StayDateRequest{Date: day(0)})
	require.NoError(t, err)
	assert.Equal(t, entity.BookingStatusCheckedIn, checked.Status)

	room, err := env.service.Room.GetRoom(context.Background(), "101")
	require.NoError(t, err)
	assert.True(t, room.IsOccupied)
}

func TestCheckInWrongDate(t *testing.T) {
	env := newTestEnv()
	env.addRoom(t, "101", "single", 12000)
	env.addGuest(t, "g1")

	booking := env.book(t, "g1", "101", 1, 3)

	_, err := env.service.Booking.CheckIn(context.Background(), booking.ID, &request.StayDateRequest{Date: day(0)})
	require.Error(t, err)
	assert.Equal(t, hotelerr.KindDateMismatch, hotelerr.KindOf(err))

	// Neither the booking nor the room may change on a rejected transition.
	unchanged, err := env.service.Booking.GetBooking(context.Background(), booking.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.BookingStatusBooked, unchanged.Status)

	room, err := env.service.Room.GetRoom(context.Background(), "101")
	require.NoError(t, err)
	assert.False(t, room.IsOccupied)
}

func TestCheckInWrongStatus(t *testing.T) {
	env := newTestEnv()
	env.addRoom(t, "101", "single", 12000)
	env.addGuest(t, "g1")

	booking := env.book(t, "g1", "101", 0, 2)
	require.NoError(t, env.service.Booking.CancelBooking(context.Background(), booking.ID))

	_, err := env.service.Booking.CheckIn(context.Background(), booking.ID, &request.StayDateRequest{Date: day(0)})
	assert.Equal(t, hotelerr.KindInvalidTransition, hotelerr.KindOf(err))
}

func TestCheckOut(t *testing.T) {
	env := newTestEnv()
	env.addRoom(t, "202", "deluxe", 30000)
	env.addGuest(t, "g1")

	booking := env.book(t, "g1", "202", 0, 2)

	_, err := env.service.Booking.CheckIn(context.Background(), booking.ID, &request.StayDateRequest{Date: day(0)})
	require.NoError(t, err)

	result, err := env.service.Booking.CheckOut(context.Background(), booking.ID, &request.StayDateRequest{Date: day(2)})
	require.NoError(t, err)

	// 2 nights at 30000.
	assert.Equal(t, 60000.0, result.Total)
	assert.Equal(t, entity.BookingStatusCheckedOut, result.Booking.Status)
	require.NotNil(t, result.Booking.TotalPrice)
	assert.Equal(t, 60000.0, *result.Booking.TotalPrice)

	assert.Equal(t, entity.PaymentStatusCompleted, result.Payment.Status)
	assert.Equal(t, 60000.0, result.Payment.Amount)
	assert.NotNil(t, result.Payment.TransactionID)

	room, err := env.service.Room.GetRoom(context.Background(), "202")
	require.NoError(t, err)
	assert.False(t, room.IsOccupied)
}

func TestCheckOutWrongDate(t *testing.T) {
	env := newTestEnv()
	env.addRoom(t, "101", "single", 12000)
	env.addGuest(t, "g1")

	booking := env.book(t, "g1", "101", 0, 2)
	_, err := env.service.Booking.CheckIn(context.Background(), booking.ID, &request.StayDateRequest{Date: day(0)})
	require.NoError(t, err)

	_, err = env.service.Booking.CheckOut(context.Background(), booking.ID, &request.StayDateRequest{Date: day(1)})
	assert.Equal(t, hotelerr.KindDateMismatch, hotelerr.KindOf(err))
}

func TestCheckOutWrongStatus(t *testing.T) {
	env := newTestEnv()
	env.addRoom(t, "101", "single", 12000)
	env.addGuest(t, "g1")

	booking := env.book(t, "g1", "101", 0, 2)

	_, err := env.service.Booking.CheckOut(context.Background(), booking.ID, &request.StayDateRequest{Date: day(2)})
	assert.Equal(t, hotelerr.KindInvalidTransition, hotelerr.KindOf(err))
}

func TestCheckOutRoomGone(t *testing.T) {
	env := newTestEnv()
	env.addRoom(t, "101", "single", 12000)
	env.addGuest(t, "g1")

	booking := env.book(t, "g1", "101", 0, 2)
	_, err := env.service.Booking.CheckIn(context.Background(), booking.ID, &request.StayDateRequest{Date: day(0)})
	require.NoError(t, err)

	require.NoError(t, env.rooms.Delete(context.Background(), "101"))

	_, err = env.service.Booking.CheckOut(context.Background(), booking.ID, &request.StayDateRequest{Date: day(2)})
	assert.Equal(t, hotelerr.KindNotFound, hotelerr.KindOf(err))
}

func TestHasConflict(t *testing.T) {
	env := newTestEnv()
	env.addRoom(t, "101", "single", 12000)
	env.addGuest(t, "g1")

	// No bookings at all: no conflict.
	conflict, err := env.service.Booking.HasConflict(context.Background(),
		"101", utils.Today().AddDate(0, 0, 1), utils.Today().AddDate(0, 0, 3))
	require.NoError(t, err)
	assert.False(t, conflict)

	booking := env.book(t, "g1", "101", 1, 3)

	cases := []struct {
		name     string
		in, out  int
		conflict bool
	}{
		{"identical range", 1, 3, true},
		{"overlap from left", 0, 2, true},
		{"overlap from right", 2, 4, true},
		{"contained", 1, 2, true},
		{"spanning", 0, 5, true},
		{"ends at existing start", 0, 1, false},
		{"starts at existing end", 3, 5, false},
		{"disjoint after", 5, 7, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := env.service.Booking.HasConflict(context.Background(),
				"101", utils.Today().AddDate(0, 0, tc.in), utils.Today().AddDate(0, 0, tc.out))
			require.NoError(t, err)
			assert.Equal(t, tc.conflict, got)
		})
	}

	// Cancelled bookings never conflict.
	require.NoError(t, env.service.Booking.CancelBooking(context.Background(), booking.ID))
	conflict, err = env.service.Booking.HasConflict(context.Background(),
		"101", utils.Today().AddDate(0, 0, 1), utils.Today().AddDate(0, 0, 3))
	require.NoError(t, err)
	assert.False(t, conflict)
}
