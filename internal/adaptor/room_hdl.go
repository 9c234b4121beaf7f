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

type RoomHandler struct {
	service usecase.RoomService
	log     *zap.Logger
}

func NewRoomHandler(service usecase.RoomService, log *zap.Logger) *RoomHandler {
	return &RoomHandler{
		service: service,
		log:     log.With(zap.String("handler", "room")),
	}
}

// AddRoom handles POST /api/rooms
func (h *RoomHandler) AddRoom(w http.ResponseWriter, r *http.Request) {
	var req request.CreateRoomRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	room, err := h.service.AddRoom(r.Context(), &req)
	if err != nil {
		respondError(w, h.log, err, "add room")
		return
	}

	utils.ResponseCreated(w, "success", room)
}

// RemoveRoom handles DELETE /api/rooms/{number}
func (h *RoomHandler) RemoveRoom(w http.ResponseWriter, r *http.Request) {
	roomNumber := chi.URLParam(r, "number")
	if roomNumber == "" {
		utils.ResponseBadRequest(w, "Room number is required", nil)
		return
	}

	if err := h.service.RemoveRoom(r.Context(), roomNumber); err != nil {
		respondError(w, h.log, err, "remove room")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}

// GetRoom handles GET /api/rooms/{number}
func (h *RoomHandler) GetRoom(w http.ResponseWriter, r *http.Request) {
	roomNumber := chi.URLParam(r, "number")
	if roomNumber == "" {
		utils.ResponseBadRequest(w, "Room number is required", nil)
		return
	}

	room, err := h.service.GetRoom(r.Context(), roomNumber)
	if err != nil {
		respondError(w, h.log, err, "get room")
		return
	}

	utils.ResponseSuccess(w, "success", room)
}

// ListRooms handles GET /api/rooms
func (h *RoomHandler) ListRooms(w http.ResponseWriter, r *http.Request) {
	rooms, err := h.service.ListRooms(r.Context())
	if err != nil {
		respondError(w, h.log, err, "list rooms")
		return
	}

	utils.ResponseSuccess(w, "success", rooms)
}

// AvailableRooms handles GET /api/rooms/available?check_in=...&check_out=...
func (h *RoomHandler) AvailableRooms(w http.ResponseWriter, r *http.Request) {
	req := dateRangeFromQuery(r)

	rooms, err := h.service.AvailableRooms(r.Context(), req)
	if err != nil {
		respondError(w, h.log, err, "available rooms")
		return
	}

	utils.ResponseSuccess(w, "success", rooms)
}

// RoomAvailability handles GET /api/rooms/{number}/availability?check_in=...&check_out=...
func (h *RoomHandler) RoomAvailability(w http.ResponseWriter, r *http.Request) {
	roomNumber := chi.URLParam(r, "number")
	if roomNumber == "" {
		utils.ResponseBadRequest(w, "Room number is required", nil)
		return
	}

	req := dateRangeFromQuery(r)

	availability, err := h.service.RoomAvailability(r.Context(), roomNumber, req)
	if err != nil {
		respondError(w, h.log, err, "room availability")
		return
	}

	utils.ResponseSuccess(w, "success", availability)
}

func dateRangeFromQuery(r *http.Request) *request.DateRangeRequest {
	query := r.URL.Query()
	return &request.DateRangeRequest{
		CheckInDate:  query.Get("check_in"),
		CheckOutDate: query.Get("check_out"),
	}
}
