package adaptor

import (
	"net/http"

	"hotel-booking/internal/snapshot"
	"hotel-booking/pkg/utils"

	"go.uber.org/zap"
)

type SnapshotHandler struct {
	manager *snapshot.Manager
	log     *zap.Logger
}

func NewSnapshotHandler(manager *snapshot.Manager, log *zap.Logger) *SnapshotHandler {
	return &SnapshotHandler{
		manager: manager,
		log:     log.With(zap.String("handler", "snapshot")),
	}
}

// Export handles POST /api/admin/snapshot/export
func (h *SnapshotHandler) Export(w http.ResponseWriter, r *http.Request) {
	if err := h.manager.Export(r.Context()); err != nil {
		respondError(w, h.log, err, "export snapshot")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}
