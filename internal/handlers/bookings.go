package handlers

import (
	"net/http"

	"github.com/theramatch/theramatch-backend/internal/query"
	"github.com/theramatch/theramatch-backend/internal/schema"
	"github.com/theramatch/theramatch-backend/internal/store"
)

// CreateBooking validates and stores a booking request. New requests default
// to status "pending".
func (h *Handler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	raw, err := decodeBody(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	rec, err := h.registry.Validate(schema.KindBooking, raw)
	if err != nil {
		writeValidationError(w, err)
		return
	}

	ctx, cancel := requestContext()
	defer cancel()

	id, err := h.store.Insert(ctx, schema.KindBooking, rec)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to create booking request")
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"id": id.Hex()})
}

// ListBookings lists booking requests filtered by therapist and/or client.
func (h *Handler) ListBookings(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	params := query.BookingParams{
		TherapistID: q.Get("therapist_id"),
		ClientEmail: q.Get("client_email"),
	}

	ctx, cancel := requestContext()
	defer cancel()

	docs, err := h.store.FindMany(ctx, schema.KindBooking, query.Bookings(params),
		store.FindOptions{SortField: "created_at", SortDesc: true})
	if err != nil {
		writeError(w, http.StatusInternalServerError, "database error")
		return
	}
	writeJSON(w, http.StatusOK, store.NormalizeAll(docs))
}
