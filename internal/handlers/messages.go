package handlers

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/theramatch/theramatch-backend/internal/query"
	"github.com/theramatch/theramatch-backend/internal/schema"
	"github.com/theramatch/theramatch-backend/internal/store"
)

// CreateMessage validates and stores a message between a client and a
// therapist. A message without a thread_id starts a new thread. Subscribers
// on the thread's WebSocket stream get the message pushed to them.
func (h *Handler) CreateMessage(w http.ResponseWriter, r *http.Request) {
	raw, err := decodeBody(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	rec, err := h.registry.Validate(schema.KindMessage, raw)
	if err != nil {
		writeValidationError(w, err)
		return
	}
	threadID, _ := rec["thread_id"].(string)
	if threadID == "" {
		threadID = uuid.NewString()
		rec["thread_id"] = threadID
	}

	ctx, cancel := requestContext()
	defer cancel()

	id, err := h.store.Insert(ctx, schema.KindMessage, rec)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to send message")
		return
	}

	if h.broker != nil {
		event := make(bson.M, len(rec)+1)
		for k, v := range rec {
			event[k] = v
		}
		event["id"] = id.Hex()
		go func() {
			pubCtx, pubCancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer pubCancel()
			if err := h.broker.Publish(pubCtx, threadID, event); err != nil {
				log.Printf("failed to publish message event: %v", err)
			}
		}()
	}

	writeJSON(w, http.StatusCreated, map[string]string{
		"id":        id.Hex(),
		"thread_id": threadID,
	})
}

// ListMessages lists messages filtered by therapist, client, and/or thread,
// oldest first.
func (h *Handler) ListMessages(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	params := query.MessageParams{
		TherapistID: q.Get("therapist_id"),
		ClientEmail: q.Get("client_email"),
		ThreadID:    q.Get("thread_id"),
	}

	ctx, cancel := requestContext()
	defer cancel()

	docs, err := h.store.FindMany(ctx, schema.KindMessage, query.Messages(params),
		store.FindOptions{SortField: "created_at"})
	if err != nil {
		writeError(w, http.StatusInternalServerError, "database error")
		return
	}
	writeJSON(w, http.StatusOK, store.NormalizeAll(docs))
}
