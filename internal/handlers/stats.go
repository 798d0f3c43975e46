package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"pixelnex.dev/internal/apperrors"
	"pixelnex.dev/internal/middleware"
	"pixelnex.dev/internal/models"
	"pixelnex.dev/internal/services"
)

// StatsHandler handles view and like endpoints
type StatsHandler struct {
	stats        *services.StatsService
	interactions *services.InteractionService
	logger       *zap.Logger
}

// NewStatsHandler creates a new StatsHandler
func NewStatsHandler(ss *services.StatsService, is *services.InteractionService, logger *zap.Logger) *StatsHandler {
	return &StatsHandler{stats: ss, interactions: is, logger: logger}
}

// likeResponse reports whether the like was counted alongside the new state
type likeResponse struct {
	*models.InteractionState
	Accepted bool `json:"accepted"`
}

// GetStats handles GET /api/projects/{id}/stats
func (h *StatsHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.stats.GetStats(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.logger.Warn("Stats lookup aborted", zap.Error(err))
		respondAppError(w, r, apperrors.FromContext(err))
		return
	}
	respondJSON(w, r, http.StatusOK, stats)
}

// OpenView handles POST /api/projects/{id}/view
func (h *StatsHandler) OpenView(w http.ResponseWriter, r *http.Request) {
	state, err := h.interactions.Open(r.Context(), middleware.ClientIDFrom(r.Context()), chi.URLParam(r, "id"))
	if err != nil {
		if apperrors.IsCode(err, apperrors.CodeCanceled) {
			h.logger.Debug("Client left before the view opened", zap.String("project_id", chi.URLParam(r, "id")))
		}
		respondAppError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, state)
}

// ViewState handles GET /api/projects/{id}/view
func (h *StatsHandler) ViewState(w http.ResponseWriter, r *http.Request) {
	state, err := h.interactions.State(middleware.ClientIDFrom(r.Context()), chi.URLParam(r, "id"))
	if err != nil {
		respondAppError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, state)
}

// CloseView handles DELETE /api/projects/{id}/view
func (h *StatsHandler) CloseView(w http.ResponseWriter, r *http.Request) {
	h.interactions.Close(middleware.ClientIDFrom(r.Context()), chi.URLParam(r, "id"))
	w.WriteHeader(http.StatusNoContent)
}

// Like handles POST /api/projects/{id}/like
func (h *StatsHandler) Like(w http.ResponseWriter, r *http.Request) {
	state, accepted, err := h.interactions.Like(r.Context(), middleware.ClientIDFrom(r.Context()), chi.URLParam(r, "id"))
	if err != nil {
		respondAppError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, likeResponse{InteractionState: state, Accepted: accepted})
}
