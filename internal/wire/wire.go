package wire

import (
	"net/http"

	"hotel-booking/internal/adaptor"
	"hotel-booking/internal/data/repository"
	"hotel-booking/internal/notifier"
	"hotel-booking/internal/snapshot"
	"hotel-booking/internal/usecase"
	"hotel-booking/pkg/lock"
	"hotel-booking/pkg/middleware"
	"hotel-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// App holds the wired router.
type App struct {
	Router *chi.Mux
}

// Wiring builds services and handlers and mounts every route.
func Wiring(
	repo *repository.Repository,
	locker lock.RoomLocker,
	notif notifier.Notifier,
	snap *snapshot.Manager,
	config *utils.Config,
	logger *zap.Logger,
) *App {
	service := usecase.NewService(repo, locker, notif, logger)
	handler := adaptor.NewHandler(service, snap, logger)

	router := setupRouter(handler, logger)

	return &App{
		Router: router,
	}
}

func setupRouter(handler *adaptor.Handler, logger *zap.Logger) *chi.Mux {
	r := chi.NewRouter()

	// Apply global middleware
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS())

	// Apply routes
	wireRoom(r, handler.Room)
	wireGuest(r, handler.Guest)
	wireBooking(r, handler.Booking)
	wirePayment(r, handler.Payment)
	wireSnapshot(r, handler.Snapshot)

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	return r
}
