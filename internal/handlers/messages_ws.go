package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
)

var messageUpgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		// CORS is handled at the HTTP layer.
		return true
	},
}

// StreamMessages pushes new messages on a thread over a WebSocket as they
// are created. Each connection is bound to one thread via the `thread_id`
// query parameter; history comes from GET /api/messages.
func (h *Handler) StreamMessages(w http.ResponseWriter, r *http.Request) {
	if h.broker == nil {
		writeError(w, http.StatusServiceUnavailable, "realtime messages not available")
		return
	}
	threadID := r.URL.Query().Get("thread_id")
	if threadID == "" {
		writeError(w, http.StatusBadRequest, "thread_id is required")
		return
	}

	conn, err := messageUpgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	defer conn.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	events, stop := h.broker.Subscribe(ctx, threadID)
	defer stop()

	// Writer: forward broker events to the socket.
	go func() {
		for event := range events {
			if err := conn.WriteJSON(event); err != nil {
				cancel()
				return
			}
		}
	}()

	// Reader: only there to notice disconnects and answer pings.
	conn.SetReadLimit(4 * 1024)
	_ = conn.SetReadDeadline(time.Now().Add(90 * time.Second))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(90 * time.Second))
	})
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
		_ = conn.SetReadDeadline(time.Now().Add(90 * time.Second))
	}
}
