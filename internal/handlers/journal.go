package handlers

import (
	"net/http"

	"github.com/theramatch/theramatch-backend/internal/query"
	"github.com/theramatch/theramatch-backend/internal/schema"
	"github.com/theramatch/theramatch-backend/internal/store"
)

// CreateJournalEntry validates and stores a private journal entry.
func (h *Handler) CreateJournalEntry(w http.ResponseWriter, r *http.Request) {
	raw, err := decodeBody(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	rec, err := h.registry.Validate(schema.KindJournal, raw)
	if err != nil {
		writeValidationError(w, err)
		return
	}

	ctx, cancel := requestContext()
	defer cancel()

	id, err := h.store.Insert(ctx, schema.KindJournal, rec)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to create journal entry")
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"id": id.Hex()})
}

// ListJournal returns a client's journal entries, newest first.
func (h *Handler) ListJournal(w http.ResponseWriter, r *http.Request) {
	clientEmail := r.URL.Query().Get("client_email")
	if clientEmail == "" {
		writeError(w, http.StatusBadRequest, "client_email is required")
		return
	}

	ctx, cancel := requestContext()
	defer cancel()

	docs, err := h.store.FindMany(ctx, schema.KindJournal,
		query.Journal(query.JournalParams{ClientEmail: clientEmail}),
		store.FindOptions{SortField: "created_at", SortDesc: true})
	if err != nil {
		writeError(w, http.StatusInternalServerError, "database error")
		return
	}
	writeJSON(w, http.StatusOK, store.NormalizeAll(docs))
}
