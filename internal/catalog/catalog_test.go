package catalog

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"pixelnex.dev/internal/models"
)

func TestDefaultCatalog(t *testing.T) {
	projects, err := Default()
	if err != nil {
		t.Fatalf("Default: %v", err)
	}
	if len(projects.Projects) == 0 {
		t.Fatal("embedded catalog is empty")
	}

	first := projects.Projects[0]
	if first.ID != "natural-narratives" {
		t.Errorf("first project = %q", first.ID)
	}
	if first.Stats == nil || first.Stats.Views != 15784 || first.Stats.Likes != 3459 {
		t.Errorf("unexpected stats snapshot: %+v", first.Stats)
	}
}

func TestDefaultProfile(t *testing.T) {
	profile, err := DefaultProfile()
	if err != nil {
		t.Fatalf("DefaultProfile: %v", err)
	}
	if profile.Name == "" || len(profile.Roles) == 0 {
		t.Fatalf("profile incomplete: %+v", profile)
	}
	if len(profile.Experience) == 0 || len(profile.Education) == 0 {
		t.Fatal("expected experience and education timelines")
	}
}

func TestYAMLRoundTripThroughFile(t *testing.T) {
	list := &models.ProjectList{Projects: []models.Project{{
		ID:            "p1",
		Title:         "Villa",
		Category:      models.Category3D,
		ImageURL:      "a.png",
		GalleryImages: []string{"b.png", "streamable.com/xyz123"},
		Stats:         &models.Stats{Views: 3, Likes: 1},
	}}}

	data, err := Encode(list, "yaml")
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	path := filepath.Join(t.TempDir(), "catalog.yml")
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}

	loaded, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	got := loaded.Projects[0]
	if got.ID != "p1" || len(got.GalleryImages) != 2 || got.Stats.Views != 3 {
		t.Fatalf("unexpected project after reload: %+v", got)
	}
}

func TestValidateRejectsBadCatalogs(t *testing.T) {
	cases := []struct {
		name string
		list models.ProjectList
		want string
	}{
		{
			name: "missing id",
			list: models.ProjectList{Projects: []models.Project{{Category: models.Category3D, ImageURL: "a.png"}}},
			want: "no id",
		},
		{
			name: "duplicate id",
			list: models.ProjectList{Projects: []models.Project{
				{ID: "x", Category: models.Category3D, ImageURL: "a.png"},
				{ID: "x", Category: models.CategoryVideo, ImageURL: "b.png"},
			}},
			want: "duplicate",
		},
		{
			name: "unknown category",
			list: models.ProjectList{Projects: []models.Project{{ID: "x", Category: "Pottery", ImageURL: "a.png"}}},
			want: "unknown category",
		},
		{
			name: "negative stats",
			list: models.ProjectList{Projects: []models.Project{{ID: "x", Category: models.CategoryGameDev, ImageURL: "a.png", Stats: &models.Stats{Views: -1}}}},
			want: "negative",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := Validate(&tc.list)
			if err == nil || !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("Validate error = %v, want containing %q", err, tc.want)
			}
		})
	}
}

func TestFormat(t *testing.T) {
	if Format("x.YAML") != "yaml" || Format("x.yml") != "yaml" || Format("x.json") != "json" {
		t.Fatal("unexpected format detection")
	}
}
