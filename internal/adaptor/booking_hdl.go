package adaptor

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"hotel-booking/internal/dto/request"
	"hotel-booking/internal/usecase"
	"hotel-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type BookingHandler struct {
	service usecase.BookingService
	log     *zap.Logger
}

func NewBookingHandler(service usecase.BookingService, log *zap.Logger) *BookingHandler {
	return &BookingHandler{
		service: service,
		log:     log.With(zap.String("handler", "booking")),
	}
}

// CreateBooking handles POST /api/bookings
func (h *BookingHandler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	var req request.CreateBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	booking, err := h.service.CreateBooking(r.Context(), &req)
	if err != nil {
		respondError(w, h.log, err, "create booking")
		return
	}

	utils.ResponseCreated(w, "success", booking)
}

// GetBooking handles GET /api/bookings/{id}
func (h *BookingHandler) GetBooking(w http.ResponseWriter, r *http.Request) {
	bookingID := chi.URLParam(r, "id")
	if bookingID == "" {
		utils.ResponseBadRequest(w, "Booking ID is required", nil)
		return
	}

	booking, err := h.service.GetBooking(r.Context(), bookingID)
	if err != nil {
		respondError(w, h.log, err, "get booking")
		return
	}

	utils.ResponseSuccess(w, "success", booking)
}

// ListBookings handles GET /api/bookings
func (h *BookingHandler) ListBookings(w http.ResponseWriter, r *http.Request) {
	bookings, err := h.service.ListBookings(r.Context())
	if err != nil {
		respondError(w, h.log, err, "list bookings")
		return
	}

	utils.ResponseSuccess(w, "success", bookings)
}

// CancelBooking handles PUT /api/bookings/{id}/cancel
func (h *BookingHandler) CancelBooking(w http.ResponseWriter, r *http.Request) {
	bookingID := chi.URLParam(r, "id")
	if bookingID == "" {
		utils.ResponseBadRequest(w, "Booking ID is required", nil)
		return
	}

	if err := h.service.CancelBooking(r.Context(), bookingID); err != nil {
		respondError(w, h.log, err, "cancel booking")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}

// CheckIn handles PUT /api/bookings/{id}/check-in
func (h *BookingHandler) CheckIn(w http.ResponseWriter, r *http.Request) {
	bookingID := chi.URLParam(r, "id")
	if bookingID == "" {
		utils.ResponseBadRequest(w, "Booking ID is required", nil)
		return
	}

	req, ok := h.decodeStayDate(w, r)
	if !ok {
		return
	}

	booking, err := h.service.CheckIn(r.Context(), bookingID, req)
	if err != nil {
		respondError(w, h.log, err, "check in")
		return
	}

	utils.ResponseSuccess(w, "success", booking)
}

// CheckOut handles PUT /api/bookings/{id}/check-out
func (h *BookingHandler) CheckOut(w http.ResponseWriter, r *http.Request) {
	bookingID := chi.URLParam(r, "id")
	if bookingID == "" {
		utils.ResponseBadRequest(w, "Booking ID is required", nil)
		return
	}

	req, ok := h.decodeStayDate(w, r)
	if !ok {
		return
	}

	result, err := h.service.CheckOut(r.Context(), bookingID, req)
	if err != nil {
		respondError(w, h.log, err, "check out")
		return
	}

	utils.ResponseSuccess(w, "success", result)
}

// decodeStayDate reads the optional {"date": "..."} body. An empty body is
// fine and means the server's current date.
func (h *BookingHandler) decodeStayDate(w http.ResponseWriter, r *http.Request) (*request.StayDateRequest, bool) {
	var req request.StayDateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return nil, false
	}
	return &req, true
}
