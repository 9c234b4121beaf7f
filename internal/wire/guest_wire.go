package wire

import (
	"hotel-booking/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireGuest(r chi.Router, guestHandler *adaptor.GuestHandler) {
	r.Route("/api/guests", func(r chi.Router) {
		// POST /api/guests - Register a guest
		r.Post("/", guestHandler.RegisterGuest)

		// GET /api/guests - List every guest
		r.Get("/", guestHandler.ListGuests)

		// GET /api/guests/{id} - Guest details
		r.Get("/{id}", guestHandler.GetGuest)

		// GET /api/guests/{id}/bookings - The guest's bookings
		r.Get("/{id}/bookings", guestHandler.GuestBookings)

		// GET /api/guests/{id}/payments - The guest's payment history
		r.Get("/{id}/payments", guestHandler.PaymentHistory)
	})
}
