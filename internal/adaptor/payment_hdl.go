package adaptor

import (
	"encoding/json"
	"net/http"

	"hotel-booking/internal/dto/request"
	"hotel-booking/internal/usecase"
	"hotel-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type PaymentHandler struct {
	service usecase.PaymentService
	log     *zap.Logger
}

func NewPaymentHandler(service usecase.PaymentService, log *zap.Logger) *PaymentHandler {
	return &PaymentHandler{
		service: service,
		log:     log.With(zap.String("handler", "payment")),
	}
}

// RecordPayment handles POST /api/payments
func (h *PaymentHandler) RecordPayment(w http.ResponseWriter, r *http.Request) {
	var req request.RecordPaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	payment, err := h.service.RecordPayment(r.Context(), &req)
	if err != nil {
		respondError(w, h.log, err, "record payment")
		return
	}

	utils.ResponseCreated(w, "success", payment)
}

// RefundPayment handles PUT /api/payments/{id}/refund
func (h *PaymentHandler) RefundPayment(w http.ResponseWriter, r *http.Request) {
	paymentID := chi.URLParam(r, "id")
	if paymentID == "" {
		utils.ResponseBadRequest(w, "Payment ID is required", nil)
		return
	}

	payment, err := h.service.RefundPayment(r.Context(), paymentID)
	if err != nil {
		respondError(w, h.log, err, "refund payment")
		return
	}

	utils.ResponseSuccess(w, "success", payment)
}
