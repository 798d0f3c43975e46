package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"pixelnex.dev/internal/services"
)

// GalleryHandler handles lightbox endpoints
type GalleryHandler struct {
	galleryService *services.GalleryService
}

// NewGalleryHandler creates a new GalleryHandler
func NewGalleryHandler(gs *services.GalleryService) *GalleryHandler {
	return &GalleryHandler{galleryService: gs}
}

// GetGallery handles GET /api/projects/{id}/gallery?index=
// Without an index the lightbox is reported closed.
func (h *GalleryHandler) GetGallery(w http.ResponseWriter, r *http.Request) {
	var index *int
	if raw := r.URL.Query().Get("index"); raw != "" {
		i, err := strconv.Atoi(raw)
		if err != nil {
			respondError(w, r, http.StatusBadRequest, "Invalid index")
			return
		}
		index = &i
	}

	view, err := h.galleryService.View(chi.URLParam(r, "id"), index)
	if err != nil {
		respondAppError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, view)
}

// Navigate handles POST /api/projects/{id}/gallery/navigate
func (h *GalleryHandler) Navigate(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Index     int    `json:"index"`
		Direction string `json:"direction"`
		Key       string `json:"key"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, r, http.StatusBadRequest, "Invalid request body")
		return
	}

	direction := req.Direction
	if direction == "" {
		direction = req.Key
	}

	view, err := h.galleryService.Navigate(chi.URLParam(r, "id"), req.Index, direction)
	if err != nil {
		respondAppError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, view)
}

// parseIntParam parses an integer query parameter with a default value
func parseIntParam(r *http.Request, name string, defaultVal int) int {
	val := r.URL.Query().Get(name)
	if val == "" {
		return defaultVal
	}
	intVal, err := strconv.Atoi(val)
	if err != nil {
		return defaultVal
	}
	return intVal
}
