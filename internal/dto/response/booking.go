package response

import (
	"time"

	"hotel-booking/internal/data/entity"
)

type BookingResponse struct {
	ID           string               `json:"id"`
	Reference    string               `json:"reference"`
	GuestID      string               `json:"guest_id"`
	RoomNumber   string               `json:"room_number"`
	CheckInDate  string               `json:"check_in_date"`
	CheckOutDate string               `json:"check_out_date"`
	Nights       int                  `json:"nights"`
	Status       entity.BookingStatus `json:"status"`
	TotalPrice   *float64             `json:"total_price,omitempty"`
	CreatedAt    time.Time            `json:"created_at"`
}

type CheckOutResponse struct {
	Booking BookingResponse `json:"booking"`
	Total   float64         `json:"total"`
	Payment PaymentResponse `json:"payment"`
}

func BookingToResponse(booking *entity.Booking) BookingResponse {
	return BookingResponse{
		ID:           booking.ID.String(),
		Reference:    booking.Reference,
		GuestID:      booking.GuestID,
		RoomNumber:   booking.RoomNumber,
		CheckInDate:  booking.CheckInDate.Format("2006-01-02"),
		CheckOutDate: booking.CheckOutDate.Format("2006-01-02"),
		Nights:       booking.Nights(),
		Status:       booking.Status,
		TotalPrice:   booking.TotalPrice,
		CreatedAt:    booking.CreatedAt,
	}
}
