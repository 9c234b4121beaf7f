package usecase

import (
	"hotel-booking/internal/data/repository"
	"hotel-booking/internal/notifier"
	"hotel-booking/pkg/lock"

	"go.uber.org/zap"
)

type Service struct {
	Room    RoomService
	Guest   GuestService
	Booking BookingService
	Payment PaymentService
}

func NewService(repo *repository.Repository, locker lock.RoomLocker, notif notifier.Notifier, log *zap.Logger) *Service {
	payment := NewPaymentService(repo, notif, log)

	return &Service{
		Room:    NewRoomService(repo, log),
		Guest:   NewGuestService(repo, log),
		Booking: NewBookingService(repo, payment, locker, notif, log),
		Payment: payment,
	}
}
