package wire

import (
	"hotel-booking/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireSnapshot(r chi.Router, snapshotHandler *adaptor.SnapshotHandler) {
	// POST /api/admin/snapshot/export - Dump the full state to disk on demand
	r.Post("/api/admin/snapshot/export", snapshotHandler.Export)
}
