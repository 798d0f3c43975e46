package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"pixelnex.dev/internal/services"
)

// ProjectHandler handles project-related endpoints
type ProjectHandler struct {
	projectService *services.ProjectService
	pageSize       int
}

// NewProjectHandler creates a new ProjectHandler
func NewProjectHandler(ps *services.ProjectService, pageSize int) *ProjectHandler {
	return &ProjectHandler{projectService: ps, pageSize: pageSize}
}

// ListProjects handles GET /api/projects?category=&q=&page=
func (h *ProjectHandler) ListProjects(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	page := parseIntParam(r, "page", 1)

	result := h.projectService.Query(query.Get("category"), query.Get("q"), page, h.pageSize)
	respondJSON(w, r, http.StatusOK, result)
}

// ListFeatured handles GET /api/projects/featured
func (h *ProjectHandler) ListFeatured(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, r, http.StatusOK, h.projectService.Featured())
}

// GetProject handles GET /api/projects/{id}
func (h *ProjectHandler) GetProject(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	project, err := h.projectService.GetByID(id)
	if err != nil {
		respondError(w, r, http.StatusNotFound, "Project not found")
		return
	}

	respondJSON(w, r, http.StatusOK, project)
}
