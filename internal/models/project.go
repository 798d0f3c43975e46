package models

import "slices"

// Category groups portfolio projects by discipline
type Category string

const (
	CategoryGraphics Category = "Graphics"
	Category3D       Category = "3D"
	CategoryGameDev  Category = "GameDev"
	CategoryVideo    Category = "Video"
)

// CategoryAll is the filter value that matches every project
const CategoryAll = "All"

// Categories lists the known categories in display order
var Categories = []Category{CategoryGraphics, Category3D, CategoryGameDev, CategoryVideo}

// Valid reports whether c is one of the known categories
func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// Stats holds view and like counters for a project
type Stats struct {
	Views int `json:"views" yaml:"views"`
	Likes int `json:"likes" yaml:"likes"`
}

// Project represents a portfolio project
type Project struct {
	ID            string   `json:"id" yaml:"id"`
	Title         string   `json:"title" yaml:"title"`
	Description   string   `json:"description" yaml:"description"`
	Category      Category `json:"category" yaml:"category"`
	Tags          []string `json:"tags" yaml:"tags"`
	ImageURL      string   `json:"image_url" yaml:"image_url"`
	GalleryImages []string `json:"gallery_images,omitempty" yaml:"gallery_images,omitempty"`
	Date          string   `json:"date" yaml:"date"`
	Role          string   `json:"role" yaml:"role"`
	Tools         []string `json:"tools" yaml:"tools"`
	DemoLink      string   `json:"demo_link,omitempty" yaml:"demo_link,omitempty"`
	DownloadLink  string   `json:"download_link,omitempty" yaml:"download_link,omitempty"`
	Featured      bool     `json:"featured,omitempty" yaml:"featured,omitempty"`
	Stats         *Stats   `json:"stats,omitempty" yaml:"stats,omitempty"`
}

// MediaSequence returns the primary image followed by the gallery images
func (p Project) MediaSequence() []string {
	seq := make([]string, 0, len(p.GalleryImages)+1)
	seq = append(seq, p.ImageURL)
	return append(seq, p.GalleryImages...)
}

// Clone returns a deep copy, so callers cannot reach the catalog's slices
func (p Project) Clone() Project {
	p.Tags = slices.Clone(p.Tags)
	p.GalleryImages = slices.Clone(p.GalleryImages)
	p.Tools = slices.Clone(p.Tools)
	if p.Stats != nil {
		stats := *p.Stats
		p.Stats = &stats
	}
	return p
}

// InitialStats returns the embedded stats snapshot, or zero counters
func (p Project) InitialStats() Stats {
	if p.Stats == nil {
		return Stats{}
	}
	return *p.Stats
}

// ProjectList wraps the array of projects
type ProjectList struct {
	Projects []Project `json:"projects" yaml:"projects"`
}

// ProjectPage is one page of a filtered project listing
type ProjectPage struct {
	Projects   []Project `json:"projects"`
	Page       int       `json:"page"`
	PageSize   int       `json:"page_size"`
	Total      int       `json:"total"`
	TotalPages int       `json:"total_pages"`
}
