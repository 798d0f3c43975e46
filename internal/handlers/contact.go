package handlers

import (
	"encoding/json"
	"net/http"

	"pixelnex.dev/internal/contact"
	"pixelnex.dev/internal/models"
)

// ContactHandler relays the contact form
type ContactHandler struct {
	submitter *contact.Submitter
}

// NewContactHandler creates a new ContactHandler
func NewContactHandler(s *contact.Submitter) *ContactHandler {
	return &ContactHandler{submitter: s}
}

// Submit handles POST /api/contact
func (h *ContactHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var form models.ContactForm
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		respondError(w, r, http.StatusBadRequest, "Invalid request body")
		return
	}

	result := h.submitter.Submit(r.Context(), form)

	status := http.StatusOK
	if result.Status == models.StatusError {
		status = http.StatusUnprocessableEntity
	}
	respondJSON(w, r, status, result)
}
