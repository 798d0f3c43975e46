package services

import (
	"strings"

	"pixelnex.dev/internal/apperrors"
	"pixelnex.dev/internal/models"
)

// DefaultPageSize matches the portfolio grid
const DefaultPageSize = 9

// ProjectService answers read-only queries against the catalog
type ProjectService struct {
	projects *models.ProjectList
}

// NewProjectService creates a new ProjectService
func NewProjectService(projects *models.ProjectList) *ProjectService {
	return &ProjectService{projects: projects}
}

// GetProjects returns a copy of the projects in category, in catalog order.
// An empty category or "All" returns everything.
func (s *ProjectService) GetProjects(category string) []models.Project {
	result := make([]models.Project, 0, len(s.projects.Projects))
	for _, p := range s.projects.Projects {
		if category == "" || category == models.CategoryAll || string(p.Category) == category {
			result = append(result, p.Clone())
		}
	}
	return result
}

// GetAll returns a copy of every project
func (s *ProjectService) GetAll() []models.Project {
	return s.GetProjects(models.CategoryAll)
}

// GetByID returns a specific project by ID
func (s *ProjectService) GetByID(id string) (*models.Project, error) {
	for i := range s.projects.Projects {
		if s.projects.Projects[i].ID == id {
			p := s.projects.Projects[i].Clone()
			return &p, nil
		}
	}
	return nil, apperrors.NotFound("project not found: %s", id)
}

// Featured returns the projects flagged for the home page
func (s *ProjectService) Featured() []models.Project {
	var result []models.Project
	for _, p := range s.projects.Projects {
		if p.Featured {
			result = append(result, p.Clone())
		}
	}
	return result
}

// Search keeps projects whose title or any tag contains query, ignoring case
func Search(projects []models.Project, query string) []models.Project {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return projects
	}

	var result []models.Project
	for _, p := range projects {
		if matches(p, query) {
			result = append(result, p)
		}
	}
	return result
}

func matches(p models.Project, query string) bool {
	if strings.Contains(strings.ToLower(p.Title), query) {
		return true
	}
	for _, tag := range p.Tags {
		if strings.Contains(strings.ToLower(tag), query) {
			return true
		}
	}
	return false
}

// Paginate slices projects into 1-based pages of size items
func Paginate(projects []models.Project, page, size int) models.ProjectPage {
	if size <= 0 {
		size = DefaultPageSize
	}
	if page < 1 {
		page = 1
	}

	total := len(projects)
	result := models.ProjectPage{
		Projects:   []models.Project{},
		Page:       page,
		PageSize:   size,
		Total:      total,
		TotalPages: (total + size - 1) / size,
	}
	// pages past the end are empty; checking first keeps (page-1)*size from overflowing
	if page > result.TotalPages {
		return result
	}

	start := (page - 1) * size
	end := min(start+size, total)
	result.Projects = append(result.Projects, projects[start:end]...)
	return result
}

// Query runs the full listing pipeline: category, then search, then paging
func (s *ProjectService) Query(category, search string, page, size int) models.ProjectPage {
	return Paginate(Search(s.GetProjects(category), search), page, size)
}
