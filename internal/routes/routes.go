package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/theramatch/theramatch-backend/internal/handlers"
)

func SetupRoutes(r *chi.Mux, h *handlers.Handler) {
	// Status and tooling
	r.Get("/", h.Root)
	r.Get("/test", h.TestDatabase)
	r.Get("/schema", h.GetSchemas)
	r.Post("/seed", h.Seed)

	// Therapist directory
	r.Get("/api/therapists", h.ListTherapists)
	r.Post("/api/therapists", h.CreateTherapist)
	r.Get("/api/therapists/{id}", h.GetTherapist)

	// Availability
	r.Get("/api/availability", h.ListAvailability)
	r.Post("/api/availability", h.CreateAvailability)

	// Booking requests
	r.Get("/api/booking-requests", h.ListBookings)
	r.Post("/api/booking-requests", h.CreateBooking)

	// Messages (store + realtime thread stream)
	r.Get("/api/messages", h.ListMessages)
	r.Post("/api/messages", h.CreateMessage)
	r.Get("/ws/messages", h.StreamMessages)

	// Journal
	r.Get("/api/journal", h.ListJournal)
	r.Post("/api/journal", h.CreateJournalEntry)

	// Profile photo uploads
	r.Post("/api/upload", h.UploadPhoto)
}
