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

type GuestHandler struct {
	service  usecase.GuestService
	bookings usecase.BookingService
	payments usecase.PaymentService
	log      *zap.Logger
}

func NewGuestHandler(
	service usecase.GuestService,
	bookings usecase.BookingService,
	payments usecase.PaymentService,
	log *zap.Logger,
) *GuestHandler {
	return &GuestHandler{
		service:  service,
		bookings: bookings,
		payments: payments,
		log:      log.With(zap.String("handler", "guest")),
	}
}

// RegisterGuest handles POST /api/guests
func (h *GuestHandler) RegisterGuest(w http.ResponseWriter, r *http.Request) {
	var req request.RegisterGuestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	guest, err := h.service.RegisterGuest(r.Context(), &req)
	if err != nil {
		respondError(w, h.log, err, "register guest")
		return
	}

	utils.ResponseCreated(w, "success", guest)
}

// GetGuest handles GET /api/guests/{id}
func (h *GuestHandler) GetGuest(w http.ResponseWriter, r *http.Request) {
	guestID := chi.URLParam(r, "id")
	if guestID == "" {
		utils.ResponseBadRequest(w, "Guest ID is required", nil)
		return
	}

	guest, err := h.service.GetGuest(r.Context(), guestID)
	if err != nil {
		respondError(w, h.log, err, "get guest")
		return
	}

	utils.ResponseSuccess(w, "success", guest)
}

// ListGuests handles GET /api/guests
func (h *GuestHandler) ListGuests(w http.ResponseWriter, r *http.Request) {
	guests, err := h.service.ListGuests(r.Context())
	if err != nil {
		respondError(w, h.log, err, "list guests")
		return
	}

	utils.ResponseSuccess(w, "success", guests)
}

// GuestBookings handles GET /api/guests/{id}/bookings
func (h *GuestHandler) GuestBookings(w http.ResponseWriter, r *http.Request) {
	guestID := chi.URLParam(r, "id")
	if guestID == "" {
		utils.ResponseBadRequest(w, "Guest ID is required", nil)
		return
	}

	bookings, err := h.bookings.GuestBookings(r.Context(), guestID)
	if err != nil {
		respondError(w, h.log, err, "guest bookings")
		return
	}

	utils.ResponseSuccess(w, "success", bookings)
}

// PaymentHistory handles GET /api/guests/{id}/payments
func (h *GuestHandler) PaymentHistory(w http.ResponseWriter, r *http.Request) {
	guestID := chi.URLParam(r, "id")
	if guestID == "" {
		utils.ResponseBadRequest(w, "Guest ID is required", nil)
		return
	}

	history, err := h.payments.PaymentHistory(r.Context(), guestID)
	if err != nil {
		respondError(w, h.log, err, "payment history")
		return
	}

	utils.ResponseSuccess(w, "success", history)
}
