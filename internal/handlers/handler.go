package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/theramatch/theramatch-backend/internal/schema"
	"github.com/theramatch/theramatch-backend/internal/services"
	"github.com/theramatch/theramatch-backend/internal/store"
)

const requestTimeout = 5 * time.Second

// Handler holds the HTTP handlers' dependencies. The store, cache, broker
// and uploader are injected; cache, broker and uploads may be nil, in which
// case the features they back are skipped or report unavailable.
type Handler struct {
	registry *schema.Registry
	store    store.Store
	cache    *services.Cache
	broker   *services.MessageBroker
	uploads  *services.CloudinaryService
}

func New(registry *schema.Registry, st store.Store, cache *services.Cache, broker *services.MessageBroker, uploads *services.CloudinaryService) *Handler {
	return &Handler{
		registry: registry,
		store:    st,
		cache:    cache,
		broker:   broker,
		uploads:  uploads,
	}
}

func requestContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), requestTimeout)
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

// writeValidationError maps validation failures to responses: an unknown
// kind is a server bug (the kinds are fixed at startup), everything else is
// a caller-correctable 400 with the field and constraint in the message.
func writeValidationError(w http.ResponseWriter, err error) {
	var unknown schema.UnknownKindError
	if errors.As(err, &unknown) {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeError(w, http.StatusBadRequest, err.Error())
}

func decodeBody(r *http.Request) (map[string]interface{}, error) {
	var raw map[string]interface{}
	if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
		return nil, err
	}
	return raw, nil
}

// boolParam parses a tri-state boolean query parameter: absent means no
// constraint, anything unparseable is ignored rather than rejected.
func boolParam(s string) *bool {
	if s == "" {
		return nil
	}
	b, err := strconv.ParseBool(s)
	if err != nil {
		return nil
	}
	return &b
}

func intParam(s string) *int {
	if s == "" {
		return nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return nil
	}
	return &n
}
