// Package catalog holds the read-only project catalog and owner profile.
//
// The default catalog is embedded in the binary. A JSON or YAML file with the
// same shape can replace it at startup.
package catalog

import (
	"embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"pixelnex.dev/internal/models"
)

//go:embed data/projects.json data/profile.json
var embedded embed.FS

// Default returns the embedded project catalog
func Default() (*models.ProjectList, error) {
	data, err := embedded.ReadFile("data/projects.json")
	if err != nil {
		return nil, fmt.Errorf("failed to read embedded catalog: %w", err)
	}

	var projects models.ProjectList
	if err := json.Unmarshal(data, &projects); err != nil {
		return nil, fmt.Errorf("failed to parse embedded catalog: %w", err)
	}

	if err := Validate(&projects); err != nil {
		return nil, err
	}
	return &projects, nil
}

// DefaultProfile returns the embedded owner profile
func DefaultProfile() (*models.Profile, error) {
	data, err := embedded.ReadFile("data/profile.json")
	if err != nil {
		return nil, fmt.Errorf("failed to read embedded profile: %w", err)
	}

	var profile models.Profile
	if err := json.Unmarshal(data, &profile); err != nil {
		return nil, fmt.Errorf("failed to parse embedded profile: %w", err)
	}
	return &profile, nil
}

// LoadFile reads a catalog from a .json, .yaml or .yml file
func LoadFile(path string) (*models.ProjectList, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	projects, err := Decode(data, Format(path))
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return projects, nil
}

// Format guesses the encoding from a file extension
func Format(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return "yaml"
	default:
		return "json"
	}
}

// Decode parses and validates a catalog in the given format
func Decode(data []byte, format string) (*models.ProjectList, error) {
	var projects models.ProjectList
	switch format {
	case "yaml":
		if err := yaml.Unmarshal(data, &projects); err != nil {
			return nil, err
		}
	case "json":
		if err := json.Unmarshal(data, &projects); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unsupported catalog format: %s", format)
	}

	if err := Validate(&projects); err != nil {
		return nil, err
	}
	return &projects, nil
}

// Encode writes a catalog in the given format
func Encode(projects *models.ProjectList, format string) ([]byte, error) {
	switch format {
	case "yaml":
		return yaml.Marshal(projects)
	case "json":
		return json.MarshalIndent(projects, "", "  ")
	default:
		return nil, fmt.Errorf("unsupported catalog format: %s", format)
	}
}

// Validate checks ids are present and unique and categories are known
func Validate(projects *models.ProjectList) error {
	seen := make(map[string]bool, len(projects.Projects))
	for i, p := range projects.Projects {
		if p.ID == "" {
			return fmt.Errorf("project %d has no id", i)
		}
		if seen[p.ID] {
			return fmt.Errorf("duplicate project id: %s", p.ID)
		}
		seen[p.ID] = true

		if !p.Category.Valid() {
			return fmt.Errorf("project %s has unknown category %q", p.ID, p.Category)
		}
		if p.ImageURL == "" {
			return fmt.Errorf("project %s has no primary image", p.ID)
		}
		if p.Stats != nil && (p.Stats.Views < 0 || p.Stats.Likes < 0) {
			return fmt.Errorf("project %s has negative stats", p.ID)
		}
	}
	return nil
}
