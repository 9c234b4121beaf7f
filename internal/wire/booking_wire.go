package wire

import (
	"hotel-booking/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireBooking(r chi.Router, bookingHandler *adaptor.BookingHandler) {
	r.Route("/api/bookings", func(r chi.Router) {
		// POST /api/bookings - Book a room for a date range
		r.Post("/", bookingHandler.CreateBooking)

		// GET /api/bookings - List every booking
		r.Get("/", bookingHandler.ListBookings)

		// GET /api/bookings/{id} - Booking details
		r.Get("/{id}", bookingHandler.GetBooking)

		// PUT /api/bookings/{id}/cancel - Cancel an active booking
		r.Put("/{id}/cancel", bookingHandler.CancelBooking)

		// PUT /api/bookings/{id}/check-in - Check the guest in on the scheduled day
		r.Put("/{id}/check-in", bookingHandler.CheckIn)

		// PUT /api/bookings/{id}/check-out - Check out, bill and pay the stay
		r.Put("/{id}/check-out", bookingHandler.CheckOut)
	})
}
