package usecase

import (
	"context"
	"fmt"
	"time"

	"hotel-booking/internal/data/repository"
)

// roomHasConflict scans the room's bookings for an active one whose half-open
// date interval overlaps the candidate range. A booking ending on the
// candidate's start day does not conflict.
func roomHasConflict(ctx context.Context, bookings repository.BookingRepository, roomNumber string, checkIn, checkOut time.Time) (bool, error) {
	existing, err := bookings.FindByRoom(ctx, roomNumber)
	if err != nil {
		return false, fmt.Errorf("check availability for room %s: %w", roomNumber, err)
	}

	for _, booking := range existing {
		if !booking.Active() {
			continue
		}
		if booking.Overlaps(checkIn, checkOut) {
			return true, nil
		}
	}

	return false, nil
}
