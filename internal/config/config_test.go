package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestParseDefaults(t *testing.T) {
	cfg, err := Parse()
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if cfg.ServerAddr != ":8080" || cfg.PageSize != 9 || cfg.StatsLatency != 200*time.Millisecond {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if cfg.Likes.Backend != "sqlite" || cfg.Likes.DBPath != "data/likes.db" {
		t.Fatalf("unexpected likes defaults: %+v", cfg.Likes)
	}
	if cfg.Contact.Timeout != 10*time.Second {
		t.Fatalf("unexpected contact timeout: %v", cfg.Contact.Timeout)
	}
	if cfg.Sessions.TTL != 30*time.Minute || cfg.Sessions.MaxSessions != 10000 {
		t.Fatalf("unexpected session limits: %+v", cfg.Sessions)
	}
}

func TestParseOverrides(t *testing.T) {
	t.Setenv("PORTFOLIO_SERVER_ADDR", "127.0.0.1:9000")
	t.Setenv("PORTFOLIO_STATS_LATENCY", "0s")
	t.Setenv("PORTFOLIO_LIKES_BACKEND", "redis")
	t.Setenv("PORTFOLIO_REDIS_DB", "3")

	cfg, err := Parse()
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if cfg.ServerAddr != "127.0.0.1:9000" || cfg.StatsLatency != 0 {
		t.Fatalf("overrides ignored: %+v", cfg)
	}
	if store := cfg.Likes.Store(); store.Backend != "redis" || store.RedisDB != 3 {
		t.Fatalf("likes store config = %+v", store)
	}
}

func TestParseRejectsInvalid(t *testing.T) {
	cases := map[string]string{
		"PORTFOLIO_LIKES_BACKEND": "etcd",
		"PORTFOLIO_PAGE_SIZE":     "0",
		"PORTFOLIO_STATS_LATENCY": "soon",
		"PORTFOLIO_MAX_SESSIONS":  "0",
		"PORTFOLIO_SESSION_TTL":   "-1m",
	}
	for key, value := range cases {
		t.Run(key, func(t *testing.T) {
			t.Setenv(key, value)
			if _, err := Parse(); err == nil {
				t.Fatalf("expected error for %s=%s", key, value)
			}
		})
	}
}

func TestLoadUsesCatalogFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	content := "projects:\n  - id: only\n    title: Only\n    category: Video\n    image_url: clip.mp4\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("PORTFOLIO_CATALOG_FILE", path)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(cfg.Projects.Projects) != 1 || cfg.Projects.Projects[0].ID != "only" {
		t.Fatalf("catalog = %+v", cfg.Projects)
	}
	if cfg.Profile == nil {
		t.Fatal("profile not loaded")
	}
}

func TestLoadReportsBadCatalog(t *testing.T) {
	t.Setenv("PORTFOLIO_CATALOG_FILE", filepath.Join(t.TempDir(), "missing.json"))
	if _, err := Load(); err == nil || !strings.Contains(err.Error(), "failed to load catalog") {
		t.Fatalf("err = %v", err)
	}
}
