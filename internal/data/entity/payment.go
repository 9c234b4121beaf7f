package entity

import (
	"time"

	"github.com/google/uuid"
)

type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusCompleted PaymentStatus = "completed"
	PaymentStatusConfirmed PaymentStatus = "confirmed"
	PaymentStatusRefunded  PaymentStatus = "refunded"
)

type Payment struct {
	Base
	BookingID     uuid.UUID     `db:"booking_id"`
	Amount        float64       `db:"amount"`
	PaymentDate   *time.Time    `db:"payment_date"`
	Method        string        `db:"payment_method"`
	Status        PaymentStatus `db:"status"`
	TransactionID *string       `db:"transaction_id"`
}

// Successful reports whether the payment settled.
func (p *Payment) Successful() bool {
	return p.Status == PaymentStatusCompleted || p.Status == PaymentStatusConfirmed
}
