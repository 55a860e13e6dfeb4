package handlers

import (
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/theramatch/theramatch-backend/internal/query"
	"github.com/theramatch/theramatch-backend/internal/schema"
	"github.com/theramatch/theramatch-backend/internal/store"
)

const directoryCachePrefix = "therapists:"

// ListTherapists serves the therapist directory with optional free-text
// search, specialty/language filters, and tri-state virtual/in_person flags.
// Responses are cached per query string.
func (h *Handler) ListTherapists(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	params := query.TherapistParams{
		Search:    q.Get("search"),
		Specialty: q.Get("specialty"),
		Language:  q.Get("language"),
		Virtual:   boolParam(q.Get("virtual")),
		InPerson:  boolParam(q.Get("in_person")),
	}

	ctx, cancel := requestContext()
	defer cancel()

	cacheKey := directoryCachePrefix + r.URL.RawQuery
	if h.cache != nil {
		var cached []bson.M
		if hit, err := h.cache.Get(ctx, cacheKey, &cached); err == nil && hit {
			writeJSON(w, http.StatusOK, cached)
			return
		}
	}

	docs, err := h.store.FindMany(ctx, schema.KindUser, query.Therapists(params), store.FindOptions{})
	if err != nil {
		writeError(w, http.StatusInternalServerError, "database error")
		return
	}
	out := store.NormalizeAll(docs)

	if h.cache != nil {
		if err := h.cache.Set(ctx, cacheKey, out); err != nil {
			log.Printf("failed to cache therapist directory: %v", err)
		}
	}
	writeJSON(w, http.StatusOK, out)
}

// CreateTherapist validates and inserts a therapist profile. The directory
// write path only accepts role=therapist; clients sign up elsewhere.
func (h *Handler) CreateTherapist(w http.ResponseWriter, r *http.Request) {
	raw, err := decodeBody(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	rec, err := h.registry.Validate(schema.KindUser, raw, schema.OneOf("role", "therapist"))
	if err != nil {
		writeValidationError(w, err)
		return
	}

	ctx, cancel := requestContext()
	defer cancel()

	id, err := h.store.Insert(ctx, schema.KindUser, rec)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to create therapist")
		return
	}
	h.invalidateDirectory()

	writeJSON(w, http.StatusCreated, map[string]string{"id": id.Hex()})
}

// GetTherapist fetches one therapist by external id.
func (h *Handler) GetTherapist(w http.ResponseWriter, r *http.Request) {
	oid, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}

	ctx, cancel := requestContext()
	defer cancel()

	doc, err := h.store.FindOne(ctx, schema.KindUser, query.Eq{Field: "_id", Value: oid})
	if err != nil {
		writeError(w, http.StatusInternalServerError, "database error")
		return
	}
	if doc == nil {
		writeError(w, http.StatusNotFound, "not found")
		return
	}
	writeJSON(w, http.StatusOK, store.Normalize(doc))
}

func (h *Handler) invalidateDirectory() {
	if h.cache == nil {
		return
	}
	ctx, cancel := requestContext()
	defer cancel()
	if err := h.cache.DeletePrefix(ctx, directoryCachePrefix); err != nil {
		log.Printf("failed to invalidate therapist directory cache: %v", err)
	}
}
