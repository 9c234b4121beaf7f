package repository

import (
	"errors"

	"hotel-booking/pkg/database"

	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
)

type Repository struct {
	Room    RoomRepository
	Guest   GuestRepository
	Booking BookingRepository
	Payment PaymentRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		Room:    NewRoomRepository(db, log),
		Guest:   NewGuestRepository(db, log),
		Booking: NewBookingRepository(db, log),
		Payment: NewPaymentRepository(db, log),
	}
}

// isDuplicateKey reports whether err is a postgres unique violation, so the
// caller can surface it as a duplicate-key failure instead of a generic one.
func isDuplicateKey(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
