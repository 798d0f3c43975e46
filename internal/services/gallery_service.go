package services

import (
	"errors"
	"fmt"

	"pixelnex.dev/internal/apperrors"
	"pixelnex.dev/internal/gallery"
	"pixelnex.dev/internal/media"
	"pixelnex.dev/internal/models"
)

// GalleryService builds lightbox views for catalog projects
type GalleryService struct {
	projects   *ProjectService
	classifier *media.Classifier
}

// NewGalleryService creates a new GalleryService
func NewGalleryService(ps *ProjectService, classifier *media.Classifier) *GalleryService {
	return &GalleryService{projects: ps, classifier: classifier}
}

// Controller returns a closed lightbox over the project's media sequence
func (s *GalleryService) Controller(id string) (*gallery.Controller, error) {
	project, err := s.projects.GetByID(id)
	if err != nil {
		return nil, err
	}
	items := s.classifier.Items(project.MediaSequence())
	return gallery.NewController(items, nil), nil
}

// View returns the lightbox state, open at index when one is given
func (s *GalleryService) View(id string, index *int) (*models.GalleryView, error) {
	ctrl, err := s.Controller(id)
	if err != nil {
		return nil, err
	}
	if index != nil {
		if err := ctrl.Open(*index); err != nil {
			return nil, indexError(err)
		}
	}
	return ctrl.View(id), nil
}

// Navigate applies a direction or key to a lightbox open at index
func (s *GalleryService) Navigate(id string, index int, direction string) (*models.GalleryView, error) {
	ctrl, err := s.Controller(id)
	if err != nil {
		return nil, err
	}
	if err := ctrl.Open(index); err != nil {
		return nil, indexError(err)
	}

	switch direction {
	case "next", "right", gallery.KeyArrowRight:
		ctrl.Next()
	case "prev", "left", gallery.KeyArrowLeft:
		ctrl.Prev()
	case "close", gallery.KeyEscape:
		ctrl.Close()
	default:
		return nil, apperrors.Validation("invalid direction: %s", direction)
	}

	return ctrl.View(id), nil
}

func indexError(err error) error {
	if errors.Is(err, gallery.ErrOutOfRange) || errors.Is(err, gallery.ErrEmpty) {
		return apperrors.Validation("%v", err)
	}
	return fmt.Errorf("open gallery: %w", err)
}
