package response

import (
	"time"

	"hotel-booking/internal/data/entity"
)

type PaymentResponse struct {
	ID            string               `json:"id"`
	BookingID     string               `json:"booking_id"`
	Amount        float64              `json:"amount"`
	PaymentDate   *time.Time           `json:"payment_date,omitempty"`
	Method        string               `json:"payment_method"`
	Status        entity.PaymentStatus `json:"status"`
	TransactionID *string              `json:"transaction_id,omitempty"`
	CreatedAt     time.Time            `json:"created_at"`
}

func PaymentToResponse(payment *entity.Payment) PaymentResponse {
	return PaymentResponse{
		ID:            payment.ID.String(),
		BookingID:     payment.BookingID.String(),
		Amount:        payment.Amount,
		PaymentDate:   payment.PaymentDate,
		Method:        payment.Method,
		Status:        payment.Status,
		TransactionID: payment.TransactionID,
		CreatedAt:     payment.CreatedAt,
	}
}
