package handlers

import (
	"encoding/json"
	"net/http"
	"path/filepath"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"pixelnex.dev/internal/apperrors"
	"pixelnex.dev/internal/config"
	"pixelnex.dev/internal/contact"
	"pixelnex.dev/internal/middleware"
	"pixelnex.dev/internal/models"
	"pixelnex.dev/internal/services"
)

// Services bundles everything the routes depend on
type Services struct {
	Projects     *services.ProjectService
	Stats        *services.StatsService
	Gallery      *services.GalleryService
	Interactions *services.InteractionService
	Contact      *contact.Submitter
	Profile      *models.Profile
}

// SetupRoutes configures all routes and returns the router
func SetupRoutes(cfg *config.Config, svc Services, logger *zap.Logger) http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Recovery(logger))
	r.Use(middleware.Logger(logger))
	r.Use(middleware.ClientID)

	projectHandler := NewProjectHandler(svc.Projects, cfg.PageSize)
	statsHandler := NewStatsHandler(svc.Stats, svc.Interactions, logger)
	galleryHandler := NewGalleryHandler(svc.Gallery)
	contactHandler := NewContactHandler(svc.Contact)

	r.Route("/api", func(r chi.Router) {
		r.Get("/profile", func(w http.ResponseWriter, r *http.Request) {
			respondJSON(w, r, http.StatusOK, svc.Profile)
		})

		r.Route("/projects", func(r chi.Router) {
			r.Get("/", projectHandler.ListProjects)
			r.Get("/featured", projectHandler.ListFeatured)

			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", projectHandler.GetProject)

				r.Get("/stats", statsHandler.GetStats)
				r.Post("/view", statsHandler.OpenView)
				r.Get("/view", statsHandler.ViewState)
				r.Delete("/view", statsHandler.CloseView)
				r.Post("/like", statsHandler.Like)

				r.Get("/gallery", galleryHandler.GetGallery)
				r.Post("/gallery/navigate", galleryHandler.Navigate)
			})
		})

		r.Post("/contact", contactHandler.Submit)

		// Health check
		r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
			respondJSON(w, r, http.StatusOK, map[string]string{"status": "ok"})
		})
	})

	// Static files
	fileServer := http.FileServer(http.Dir(cfg.StaticDir))
	r.Handle("/static/*", http.StripPrefix("/static", fileServer))

	// Serve index.html at root
	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		http.ServeFile(w, r, filepath.Join(cfg.StaticDir, "index.html"))
	})

	return r
}

// respondJSON writes a JSON response
func respondJSON(w http.ResponseWriter, r *http.Request, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		middleware.LoggerFrom(r.Context()).Error("Error encoding JSON", zap.Error(err))
	}
}

// respondError writes an error JSON response
func respondError(w http.ResponseWriter, r *http.Request, status int, message string) {
	respondJSON(w, r, status, map[string]string{"error": message})
}

// respondAppError maps a service error onto status and message. Server-side
// failures are logged with their cause.
func respondAppError(w http.ResponseWriter, r *http.Request, err error) {
	status := apperrors.StatusOf(err)
	if status >= http.StatusInternalServerError {
		middleware.LoggerFrom(r.Context()).Error("Request failed", zap.Int("status", status), zap.Error(err))
	}
	respondError(w, r, status, apperrors.MessageOf(err))
}
