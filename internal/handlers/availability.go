package handlers

import (
	"net/http"

	"github.com/theramatch/theramatch-backend/internal/query"
	"github.com/theramatch/theramatch-backend/internal/schema"
	"github.com/theramatch/theramatch-backend/internal/store"
)

// CreateAvailability records a therapist's weekly availability slot.
// Weekday is 0=Monday..6=Sunday; time ranges are "HH:MM-HH:MM" strings.
func (h *Handler) CreateAvailability(w http.ResponseWriter, r *http.Request) {
	raw, err := decodeBody(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	rec, err := h.registry.Validate(schema.KindAvailability, raw)
	if err != nil {
		writeValidationError(w, err)
		return
	}

	ctx, cancel := requestContext()
	defer cancel()

	id, err := h.store.Insert(ctx, schema.KindAvailability, rec)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to create availability")
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"id": id.Hex()})
}

// ListAvailability lists availability slots, optionally filtered by
// therapist, weekday, and session mode.
func (h *Handler) ListAvailability(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	params := query.AvailabilityParams{
		TherapistID: q.Get("therapist_id"),
		Weekday:     intParam(q.Get("weekday")),
		Virtual:     boolParam(q.Get("virtual")),
		InPerson:    boolParam(q.Get("in_person")),
	}

	ctx, cancel := requestContext()
	defer cancel()

	docs, err := h.store.FindMany(ctx, schema.KindAvailability, query.Availability(params),
		store.FindOptions{SortField: "weekday"})
	if err != nil {
		writeError(w, http.StatusInternalServerError, "database error")
		return
	}
	writeJSON(w, http.StatusOK, store.NormalizeAll(docs))
}
