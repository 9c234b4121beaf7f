package entity

import (
	"time"
)

type BookingStatus string

const (
	BookingStatusBooked     BookingStatus = "booked"
	BookingStatusCheckedIn  BookingStatus = "checked_in"
	BookingStatusCheckedOut BookingStatus = "checked_out"
	BookingStatusCancelled  BookingStatus = "cancelled"
)

type Booking struct {
	Base
	Reference    string        `db:"reference"`
	GuestID      string        `db:"guest_id"`
	RoomNumber   string        `db:"room_number"`
	CheckInDate  time.Time     `db:"check_in_date"`
	CheckOutDate time.Time     `db:"check_out_date"`
	Status       BookingStatus `db:"status"`
	TotalPrice   *float64      `db:"total_price"`
}

// Nights is the stay length in whole days.
func (b *Booking) Nights() int {
	return int(b.CheckOutDate.Sub(b.CheckInDate).Hours() / 24)
}

// Active reports whether the booking still blocks its room's calendar.
// Cancelled and checked-out bookings never conflict with new ranges.
func (b *Booking) Active() bool {
	return b.Status != BookingStatusCancelled && b.Status != BookingStatusCheckedOut
}

// Overlaps tests the half-open interval [CheckInDate, CheckOutDate) against
// the candidate range. Equal boundaries do not overlap, so same-day turnover
// (one guest leaves the day another arrives) is allowed.
func (b *Booking) Overlaps(checkIn, checkOut time.Time) bool {
	return b.CheckInDate.Before(checkOut) && checkIn.Before(b.CheckOutDate)
}
