package request

type CreateBookingRequest struct {
	GuestID      string `json:"guest_id" validate:"required"`
	RoomNumber   string `json:"room_number" validate:"required"`
	CheckInDate  string `json:"check_in_date" validate:"required,datetime=2006-01-02"`
	CheckOutDate string `json:"check_out_date" validate:"required,datetime=2006-01-02"`
}

// StayDateRequest carries the acting date for check-in/check-out. When Date
// is empty the server's current date is used; tests pass it explicitly.
type StayDateRequest struct {
	Date string `json:"date,omitempty" validate:"omitempty,datetime=2006-01-02"`
}
