package response

import (
	"hotel-booking/internal/data/entity"
)

type RoomResponse struct {
	RoomNumber    string  `json:"room_number"`
	RoomType      string  `json:"room_type"`
	PricePerNight float64 `json:"price_per_night"`
	IsOccupied    bool    `json:"is_occupied"`
}

type AvailabilityResponse struct {
	RoomNumber   string `json:"room_number"`
	CheckInDate  string `json:"check_in_date"`
	CheckOutDate string `json:"check_out_date"`
	Available    bool   `json:"available"`
}

func RoomToResponse(room *entity.Room) RoomResponse {
	return RoomResponse{
		RoomNumber:    room.RoomNumber,
		RoomType:      room.RoomType,
		PricePerNight: room.PricePerNight,
		IsOccupied:    room.IsOccupied,
	}
}
