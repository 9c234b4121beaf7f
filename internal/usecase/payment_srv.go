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
	"hotel-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type PaymentService interface {
	RecordPayment(ctx context.Context, req *request.RecordPaymentRequest) (*response.PaymentResponse, error)
	RefundPayment(ctx context.Context, paymentID string) (*response.PaymentResponse, error)
	PaymentHistory(ctx context.Context, guestID string) ([]*response.PaymentResponse, error)
}

type paymentService struct {
	repo     *repository.Repository
	notifier notifier.Notifier
	log      *zap.Logger
}

func NewPaymentService(repo *repository.Repository, notif notifier.Notifier, log *zap.Logger) PaymentService {
	return &paymentService{
		repo:     repo,
		notifier: notif,
		log:      log.With(zap.String("service", "payment")),
	}
}

// RecordPayment persists a settled payment for the booking. There is no real
// gateway behind this: the record is created pending and advanced to
// completed in the same call, with a fresh transaction ID. The amount is
// taken as given; checkout computes it from nights and room rate.
func (s *paymentService) RecordPayment(ctx context.Context, req *request.RecordPaymentRequest) (*response.PaymentResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Record payment validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	bookingID, err := uuid.Parse(req.BookingID)
	if err != nil {
		return nil, hotelerr.NotFoundf("booking %s not found", req.BookingID)
	}

	booking, err := s.repo.Booking.FindByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if booking == nil {
		return nil, hotelerr.NotFoundf("booking %s not found", req.BookingID)
	}

	now := time.Now()
	payment := &entity.Payment{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		BookingID: bookingID,
		Amount:    req.Amount,
		Method:    req.Method,
		Status:    entity.PaymentStatusPending,
	}

	// Stub processor: settle immediately.
	transactionID := uuid.NewString()
	payment.Status = entity.PaymentStatusCompleted
	payment.PaymentDate = &now
	payment.TransactionID = &transactionID

	if err := s.repo.Payment.Create(ctx, payment); err != nil {
		s.log.Error("Failed to create payment",
			zap.Error(err),
			zap.String("booking_id", req.BookingID),
		)
		return nil, err
	}

	s.log.Info("Payment recorded",
		zap.String("payment_id", payment.ID.String()),
		zap.String("booking_id", req.BookingID),
		zap.Float64("amount", payment.Amount),
		zap.String("method", payment.Method),
	)

	guest, _ := s.repo.Guest.FindByID(ctx, booking.GuestID)
	if guest != nil {
		details := notifier.PaymentDetails{
			PaymentID:     payment.ID.String(),
			BookingID:     req.BookingID,
			Amount:        payment.Amount,
			Method:        payment.Method,
			Status:        string(payment.Status),
			TransactionID: transactionID,
		}
		go func(email string) {
			s.notifier.PaymentConfirmation(email, details)
		}(guest.EmailAddress())
	}

	resp := response.PaymentToResponse(payment)
	return &resp, nil
}

func (s *paymentService) RefundPayment(ctx context.Context, paymentID string) (*response.PaymentResponse, error) {
	id, err := uuid.Parse(paymentID)
	if err != nil {
		return nil, hotelerr.NotFoundf("payment %s not found", paymentID)
	}

	payment, err := s.repo.Payment.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if payment == nil {
		return nil, hotelerr.NotFoundf("payment %s not found", paymentID)
	}

	if !payment.Successful() {
		return nil, hotelerr.InvalidTransitionf("only a completed or confirmed payment can be refunded, payment %s is %s",
			paymentID, payment.Status)
	}

	if err := s.repo.Payment.UpdateStatus(ctx, payment.ID, entity.PaymentStatusRefunded); err != nil {
		return nil, err
	}

	s.log.Info("Payment refunded",
		zap.String("payment_id", paymentID),
		zap.Float64("amount", payment.Amount),
	)

	payment.Status = entity.PaymentStatusRefunded
	resp := response.PaymentToResponse(payment)
	return &resp, nil
}

// PaymentHistory returns every payment attached to any booking owned by the
// guest. An unknown guest simply has no bookings and yields an empty list.
func (s *paymentService) PaymentHistory(ctx context.Context, guestID string) ([]*response.PaymentResponse, error) {
	bookings, err := s.repo.Booking.FindByGuest(ctx, guestID)
	if err != nil {
		return nil, err
	}

	var history []*response.PaymentResponse
	for _, booking := range bookings {
		payments, err := s.repo.Payment.FindByBookingID(ctx, booking.ID)
		if err != nil {
			return nil, err
		}
		for _, payment := range payments {
			resp := response.PaymentToResponse(payment)
			history = append(history, &resp)
		}
	}

	return history, nil
}
