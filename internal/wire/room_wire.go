package wire

import (
	"hotel-booking/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireRoom(r chi.Router, roomHandler *adaptor.RoomHandler) {
	r.Route("/api/rooms", func(r chi.Router) {
		// POST /api/rooms - Add a room to the inventory
		r.Post("/", roomHandler.AddRoom)

		// GET /api/rooms - List every room
		r.Get("/", roomHandler.ListRooms)

		// GET /api/rooms/available?check_in=...&check_out=... - Rooms free for a range
		r.Get("/available", roomHandler.AvailableRooms)

		// GET /api/rooms/{number} - Room details
		r.Get("/{number}", roomHandler.GetRoom)

		// DELETE /api/rooms/{number} - Remove a room
		r.Delete("/{number}", roomHandler.RemoveRoom)

		// GET /api/rooms/{number}/availability?check_in=...&check_out=...
		r.Get("/{number}/availability", roomHandler.RoomAvailability)
	})
}
