package wire

import (
	"hotel-booking/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wirePayment(r chi.Router, paymentHandler *adaptor.PaymentHandler) {
	r.Route("/api/payments", func(r chi.Router) {
		// POST /api/payments - Record a payment against a booking
		r.Post("/", paymentHandler.RecordPayment)

		// PUT /api/payments/{id}/refund - Refund a settled payment
		r.Put("/{id}/refund", paymentHandler.RefundPayment)
	})
}
