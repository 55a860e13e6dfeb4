package handlers

import "net/http"

type uploadResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	URL     string `json:"url,omitempty"`
}

// UploadPhoto uploads a therapist profile photo to Cloudinary and returns
// the URL to store in the profile's photo_url field.
func (h *Handler) UploadPhoto(w http.ResponseWriter, r *http.Request) {
	if h.uploads == nil {
		writeJSON(w, http.StatusServiceUnavailable, uploadResponse{
			Success: false,
			Message: "uploads not configured",
		})
		return
	}

	// 10MB cap on the multipart form
	if err := r.ParseMultipartForm(10 << 20); err != nil {
		writeJSON(w, http.StatusBadRequest, uploadResponse{
			Success: false,
			Message: "failed to parse form: " + err.Error(),
		})
		return
	}

	file, fileHeader, err := r.FormFile("file")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, uploadResponse{
			Success: false,
			Message: "no file provided",
		})
		return
	}
	file.Close()

	folder := r.URL.Query().Get("folder")
	if folder == "" {
		folder = "theramatch"
	}

	ctx, cancel := requestContext()
	defer cancel()

	url, err := h.uploads.Upload(ctx, fileHeader, folder)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, uploadResponse{
			Success: false,
			Message: "upload failed",
		})
		return
	}
	writeJSON(w, http.StatusOK, uploadResponse{
		Success: true,
		Message: "uploaded",
		URL:     url,
	})
}
