package entity

type Room struct {
	RoomNumber    string  `db:"room_number"`
	RoomType      string  `db:"room_type"`
	PricePerNight float64 `db:"price_per_night"`
	IsOccupied    bool    `db:"is_occupied"`
}
