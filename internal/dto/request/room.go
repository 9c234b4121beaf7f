package request

type CreateRoomRequest struct {
	RoomNumber    string  `json:"room_number" validate:"required"`
	RoomType      string  `json:"room_type" validate:"required"`
	PricePerNight float64 `json:"price_per_night" validate:"min=0"`
}

type DateRangeRequest struct {
	CheckInDate  string `json:"check_in_date" validate:"required,datetime=2006-01-02"`
	CheckOutDate string `json:"check_out_date" validate:"required,datetime=2006-01-02"`
}
