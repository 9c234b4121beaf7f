package notifier

import (
	"go.uber.org/zap"
)

// PaymentDetails is the payload for payment confirmations.
type PaymentDetails struct {
	PaymentID     string
	BookingID     string
	Amount        float64
	Method        string
	Status        string
	TransactionID string
}

// Notifier delivers guest-facing messages. Every method is best-effort: it
// returns whether the message was delivered and never returns an error, and
// an empty contact is a no-op. Callers must not base control flow on the
// result.
type Notifier interface {
	BookingConfirmation(email, bookingID string) bool
	BookingCancellation(email, bookingID string) bool
	PaymentConfirmation(email string, details PaymentDetails) bool
	CheckInReminder(email, bookingID string) bool
	CheckOutReminder(email, bookingID string) bool
	SMS(phone, message string) bool
}

// ConsoleNotifier writes notifications to the log instead of a real
// email/SMS provider.
type ConsoleNotifier struct {
	log *zap.Logger
}

func NewConsoleNotifier(log *zap.Logger) *ConsoleNotifier {
	return &ConsoleNotifier{
		log: log.With(zap.String("component", "notifier")),
	}
}

func (n *ConsoleNotifier) email(to, subject, message string) bool {
	if to == "" {
		return false
	}
	n.log.Info("Email notification",
		zap.String("to", to),
		zap.String("subject", subject),
		zap.String("message", message),
	)
	return true
}

func (n *ConsoleNotifier) BookingConfirmation(email, bookingID string) bool {
	return n.email(email, "Booking confirmation", "Your booking "+bookingID+" is confirmed")
}

func (n *ConsoleNotifier) BookingCancellation(email, bookingID string) bool {
	return n.email(email, "Booking cancelled", "Booking "+bookingID+" has been cancelled")
}

func (n *ConsoleNotifier) PaymentConfirmation(email string, details PaymentDetails) bool {
	if email == "" {
		return false
	}
	n.log.Info("Email notification",
		zap.String("to", email),
		zap.String("subject", "Payment confirmation"),
		zap.String("payment_id", details.PaymentID),
		zap.String("booking_id", details.BookingID),
		zap.Float64("amount", details.Amount),
		zap.String("status", details.Status),
	)
	return true
}

func (n *ConsoleNotifier) CheckInReminder(email, bookingID string) bool {
	return n.email(email, "Check-in reminder", "Reminder: check-in for booking "+bookingID)
}

func (n *ConsoleNotifier) CheckOutReminder(email, bookingID string) bool {
	return n.email(email, "Check-out reminder", "Reminder: check-out for booking "+bookingID)
}

func (n *ConsoleNotifier) SMS(phone, message string) bool {
	if phone == "" {
		return false
	}
	n.log.Info("SMS notification",
		zap.String("to", phone),
		zap.String("message", message),
	)
	return true
}
