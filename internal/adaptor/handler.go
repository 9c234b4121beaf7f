package adaptor

import (
	"net/http"
	"strings"

	"hotel-booking/internal/hotelerr"
	"hotel-booking/internal/snapshot"
	"hotel-booking/internal/usecase"
	"hotel-booking/pkg/utils"

	"go.uber.org/zap"
)

type Handler struct {
	Room     *RoomHandler
	Guest    *GuestHandler
	Booking  *BookingHandler
	Payment  *PaymentHandler
	Snapshot *SnapshotHandler
}

func NewHandler(service *usecase.Service, snap *snapshot.Manager, log *zap.Logger) *Handler {
	return &Handler{
		Room:     NewRoomHandler(service.Room, log),
		Guest:    NewGuestHandler(service.Guest, service.Booking, service.Payment, log),
		Booking:  NewBookingHandler(service.Booking, log),
		Payment:  NewPaymentHandler(service.Payment, log),
		Snapshot: NewSnapshotHandler(snap, log),
	}
}

// respondError maps a service error to the HTTP envelope. Typed errors carry
// their kind; anything untyped that reads like a validation failure is a bad
// request, the rest is a 500.
func respondError(w http.ResponseWriter, log *zap.Logger, err error, operation string) {
	kind := hotelerr.KindOf(err)

	switch kind {
	case hotelerr.KindDuplicateKey, hotelerr.KindConflict:
		log.Warn(operation+" failed - conflict", zap.Error(err))
		utils.ResponseConflict(w, err.Error())

	case hotelerr.KindNotFound:
		log.Warn(operation+" failed - not found", zap.Error(err))
		utils.ResponseNotFound(w, err.Error())

	case hotelerr.KindInvalidDateRange, hotelerr.KindDateMismatch, hotelerr.KindInvalidTransition:
		log.Warn(operation+" failed - rejected", zap.Error(err))
		utils.ResponseBadRequest(w, err.Error(), nil)

	default:
		if strings.Contains(err.Error(), "validation failed") {
			log.Warn(operation+" validation failed", zap.Error(err))
			utils.ResponseBadRequest(w, err.Error(), nil)
			return
		}
		log.Error(operation+" failed", zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
