package handlers

import "net/http"

// Root is the liveness message at GET /.
func (h *Handler) Root(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"message": "TheraMatch API running"})
}

// TestDatabase reports store connectivity and the collections it holds.
func (h *Handler) TestDatabase(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := requestContext()
	defer cancel()

	response := map[string]interface{}{
		"backend":           "running",
		"database":          "not available",
		"connection_status": "not connected",
		"collections":       []string{},
	}

	collections, err := h.store.Collections(ctx)
	if err != nil {
		response["database"] = "error: " + err.Error()
		writeJSON(w, http.StatusOK, response)
		return
	}
	if collections == nil {
		collections = []string{}
	}
	response["database"] = "connected"
	response["connection_status"] = "connected"
	response["collections"] = collections
	writeJSON(w, http.StatusOK, response)
}
