package usecase

import (
	"context"
	"fmt"
	"time"

	"hotel-booking/internal/data/entity"
	"hotel-booking/internal/data/repository"
	"hotel-booking/internal/dto/request"
	"hotel-booking/internal/dto/response"
	"hotel-booking/internal/hotelerr"
	"hotel-booking/internal/notifier"
	"hotel-booking/pkg/lock"
	"hotel-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type BookingService interface {
	CreateBooking(ctx context.Context, req *request.CreateBookingRequest) (*response.BookingResponse, error)
	CancelBooking(ctx context.Context, bookingID string) error
	CheckIn(ctx context.Context, bookingID string, req *request.StayDateRequest) (*response.BookingResponse, error)
	CheckOut(ctx context.Context, bookingID string, req *request.StayDateRequest) (*response.CheckOutResponse, error)
	GetBooking(ctx context.Context, bookingID string) (*response.BookingResponse, error)
	ListBookings(ctx context.Context) ([]*response.BookingResponse, error)
	GuestBookings(ctx context.Context, guestID string) ([]*response.BookingResponse, error)
	HasConflict(ctx context.Context, roomNumber string, checkIn, checkOut time.Time) (bool, error)
}

type bookingService struct {
	repo     *repository.Repository
	payments PaymentService
	locker   lock.RoomLocker
	notifier notifier.Notifier
	log      *zap.Logger
}

func NewBookingService(
	repo *repository.Repository,
	payments PaymentService,
	locker lock.RoomLocker,
	notif notifier.Notifier,
	log *zap.Logger,
) BookingService {
	return &bookingService{
		repo:     repo,
		payments: payments,
		locker:   locker,
		notifier: notif,
		log:      log.With(zap.String("service", "booking")),
	}
}

// HasConflict reports whether any active booking for the room overlaps the
// candidate half-open range.
func (s *bookingService) HasConflict(ctx context.Context, roomNumber string, checkIn, checkOut time.Time) (bool, error) {
	return roomHasConflict(ctx, s.repo.Booking, roomNumber, checkIn, checkOut)
}

func (s *bookingService) CreateBooking(ctx context.Context, req *request.CreateBookingRequest) (*response.BookingResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create booking validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	checkIn, err := utils.ParseDate(req.CheckInDate)
	if err != nil {
		return nil, hotelerr.InvalidDatesf("invalid check_in_date %s", req.CheckInDate)
	}
	checkOut, err := utils.ParseDate(req.CheckOutDate)
	if err != nil {
		return nil, hotelerr.InvalidDatesf("invalid check_out_date %s", req.CheckOutDate)
	}
	if !checkOut.After(checkIn) {
		return nil, hotelerr.InvalidDatesf("check_out_date must be after check_in_date")
	}

	guest, err := s.repo.Guest.FindByID(ctx, req.GuestID)
	if err != nil {
		return nil, err
	}
	if guest == nil {
		return nil, hotelerr.NotFoundf("guest %s not found", req.GuestID)
	}

	room, err := s.repo.Room.FindByNumber(ctx, req.RoomNumber)
	if err != nil {
		return nil, err
	}
	if room == nil {
		return nil, hotelerr.NotFoundf("room %s not found", req.RoomNumber)
	}

	// Hold the room lease across check-then-insert so two overlapping
	// requests cannot both pass the availability check.
	release, err := s.locker.Acquire(ctx, req.RoomNumber)
	if err != nil {
		return nil, err
	}
	defer release()

	conflict, err := s.HasConflict(ctx, req.RoomNumber, checkIn, checkOut)
	if err != nil {
		return nil, err
	}
	if conflict {
		return nil, hotelerr.Conflictf("room %s is not available from %s to %s",
			req.RoomNumber, req.CheckInDate, req.CheckOutDate)
	}

	now := time.Now()
	booking := &entity.Booking{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Reference:    utils.GenerateBookingReference(),
		GuestID:      req.GuestID,
		RoomNumber:   req.RoomNumber,
		CheckInDate:  checkIn,
		CheckOutDate: checkOut,
		Status:       entity.BookingStatusBooked,
	}

	if err := s.repo.Booking.Create(ctx, booking); err != nil {
		s.log.Error("Failed to create booking",
			zap.Error(err),
			zap.String("guest_id", req.GuestID),
			zap.String("room_number", req.RoomNumber),
		)
		return nil, err
	}

	s.log.Info("Booking created",
		zap.String("booking_id", booking.ID.String()),
		zap.String("reference", booking.Reference),
		zap.String("guest_id", booking.GuestID),
		zap.String("room_number", booking.RoomNumber),
		zap.Int("nights", booking.Nights()),
	)

	// Best-effort: the caller's result never depends on delivery.
	go func(email, bookingID string) {
		s.notifier.BookingConfirmation(email, bookingID)
	}(guest.EmailAddress(), booking.ID.String())

	resp := response.BookingToResponse(booking)
	return &resp, nil
}

func (s *bookingService) CancelBooking(ctx context.Context, bookingID string) error {
	booking, err := s.findBooking(ctx, bookingID)
	if err != nil {
		return err
	}

	if !booking.Active() {
		return hotelerr.InvalidTransitionf("booking %s is already %s and cannot be cancelled",
			bookingID, booking.Status)
	}

	if err := s.repo.Booking.UpdateStatus(ctx, booking.ID, entity.BookingStatusCancelled); err != nil {
		return err
	}

	s.log.Info("Booking cancelled",
		zap.String("booking_id", bookingID),
		zap.String("reference", booking.Reference),
	)

	guest, _ := s.repo.Guest.FindByID(ctx, booking.GuestID)
	if guest != nil {
		go func(email, phone, ref string) {
			s.notifier.BookingCancellation(email, bookingID)
			s.notifier.SMS(phone, "Booking "+ref+" cancelled")
		}(guest.EmailAddress(), guest.PhoneNumber(), booking.Reference)
	}

	return nil
}

func (s *bookingService) CheckIn(ctx context.Context, bookingID string, req *request.StayDateRequest) (*response.BookingResponse, error) {
	today, err := s.resolveDate(req)
	if err != nil {
		return nil, err
	}

	booking, err := s.findBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	if booking.Status != entity.BookingStatusBooked {
		return nil, hotelerr.InvalidTransitionf("only a booked stay can be checked in, booking %s is %s",
			bookingID, booking.Status)
	}

	if !utils.SameDate(booking.CheckInDate, today) {
		return nil, hotelerr.DateMismatchf("check-in is scheduled for %s, not %s",
			utils.FormatDate(booking.CheckInDate), utils.FormatDate(today))
	}

	if err := s.repo.Booking.UpdateStatus(ctx, booking.ID, entity.BookingStatusCheckedIn); err != nil {
		return nil, err
	}
	if err := s.repo.Room.SetOccupied(ctx, booking.RoomNumber, true); err != nil {
		return nil, err
	}

	s.log.Info("Guest checked in",
		zap.String("booking_id", bookingID),
		zap.String("room_number", booking.RoomNumber),
	)

	guest, _ := s.repo.Guest.FindByID(ctx, booking.GuestID)
	if guest != nil {
		go func(email, phone, room string) {
			s.notifier.CheckInReminder(email, bookingID)
			s.notifier.SMS(phone, "Checked in to room "+room)
		}(guest.EmailAddress(), guest.PhoneNumber(), booking.RoomNumber)
	}

	booking.Status = entity.BookingStatusCheckedIn
	resp := response.BookingToResponse(booking)
	return &resp, nil
}

func (s *bookingService) CheckOut(ctx context.Context, bookingID string, req *request.StayDateRequest) (*response.CheckOutResponse, error) {
	today, err := s.resolveDate(req)
	if err != nil {
		return nil, err
	}

	booking, err := s.findBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	if booking.Status != entity.BookingStatusCheckedIn {
		return nil, hotelerr.InvalidTransitionf("only a checked-in stay can be checked out, booking %s is %s",
			bookingID, booking.Status)
	}

	if !utils.SameDate(booking.CheckOutDate, today) {
		return nil, hotelerr.DateMismatchf("check-out is scheduled for %s, not %s",
			utils.FormatDate(booking.CheckOutDate), utils.FormatDate(today))
	}

	room, err := s.repo.Room.FindByNumber(ctx, booking.RoomNumber)
	if err != nil {
		return nil, err
	}
	if room == nil {
		return nil, hotelerr.NotFoundf("room %s for booking %s not found", booking.RoomNumber, bookingID)
	}

	total := float64(booking.Nights()) * room.PricePerNight

	if err := s.repo.Booking.UpdateStatus(ctx, booking.ID, entity.BookingStatusCheckedOut); err != nil {
		return nil, err
	}
	if err := s.repo.Booking.UpdateTotal(ctx, booking.ID, total); err != nil {
		return nil, err
	}
	if err := s.repo.Room.SetOccupied(ctx, booking.RoomNumber, false); err != nil {
		return nil, err
	}

	payment, err := s.payments.RecordPayment(ctx, &request.RecordPaymentRequest{
		BookingID: booking.ID.String(),
		Amount:    total,
		Method:    "card",
	})
	if err != nil {
		s.log.Error("Failed to record check-out payment",
			zap.Error(err),
			zap.String("booking_id", bookingID),
			zap.Float64("total", total),
		)
		return nil, err
	}

	s.log.Info("Guest checked out",
		zap.String("booking_id", bookingID),
		zap.String("room_number", booking.RoomNumber),
		zap.Int("nights", booking.Nights()),
		zap.Float64("total", total),
	)

	guest, _ := s.repo.Guest.FindByID(ctx, booking.GuestID)
	if guest != nil {
		go func(email, phone string) {
			s.notifier.CheckOutReminder(email, bookingID)
			s.notifier.SMS(phone, fmt.Sprintf("Checked out, total %.2f", total))
		}(guest.EmailAddress(), guest.PhoneNumber())
	}

	booking.Status = entity.BookingStatusCheckedOut
	booking.TotalPrice = &total

	return &response.CheckOutResponse{
		Booking: response.BookingToResponse(booking),
		Total:   total,
		Payment: *payment,
	}, nil
}

func (s *bookingService) GetBooking(ctx context.Context, bookingID string) (*response.BookingResponse, error) {
	booking, err := s.findBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	resp := response.BookingToResponse(booking)
	return &resp, nil
}

func (s *bookingService) ListBookings(ctx context.Context) ([]*response.BookingResponse, error) {
	bookings, err := s.repo.Booking.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return toBookingResponses(bookings), nil
}

func (s *bookingService) GuestBookings(ctx context.Context, guestID string) ([]*response.BookingResponse, error) {
	bookings, err := s.repo.Booking.FindByGuest(ctx, guestID)
	if err != nil {
		return nil, err
	}
	return toBookingResponses(bookings), nil
}

// ==================== HELPER METHODS ====================

func (s *bookingService) findBooking(ctx context.Context, bookingID string) (*entity.Booking, error) {
	id, err := uuid.Parse(bookingID)
	if err != nil {
		return nil, hotelerr.NotFoundf("booking %s not found", bookingID)
	}

	booking, err := s.repo.Booking.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if booking == nil {
		return nil, hotelerr.NotFoundf("booking %s not found", bookingID)
	}

	return booking, nil
}

// resolveDate returns the acting date for a transition: the one supplied in
// the request, or the server's current date when absent.
func (s *bookingService) resolveDate(req *request.StayDateRequest) (time.Time, error) {
	if req == nil || req.Date == "" {
		return utils.Today(), nil
	}
	date, err := utils.ParseDate(req.Date)
	if err != nil {
		return time.Time{}, hotelerr.InvalidDatesf("invalid date %s", req.Date)
	}
	return date, nil
}

func toBookingResponses(bookings []*entity.Booking) []*response.BookingResponse {
	responses := make([]*response.BookingResponse, len(bookings))
	for i, booking := range bookings {
		resp := response.BookingToResponse(booking)
		responses[i] = &resp
	}
	return responses
}
