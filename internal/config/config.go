package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"pixelnex.dev/internal/catalog"
	"pixelnex.dev/internal/models"
	"pixelnex.dev/internal/storage/likes"
)

// EnvPrefix is prepended to every variable name
const EnvPrefix = "PORTFOLIO_"

// Config holds all application configuration
type Config struct {
	ServerAddr   string        `env:"SERVER_ADDR" envDefault:":8080"`
	StaticDir    string        `env:"STATIC_DIR" envDefault:"static"`
	CatalogFile  string        `env:"CATALOG_FILE"`
	StatsLatency time.Duration `env:"STATS_LATENCY" envDefault:"200ms"`
	PageSize     int           `env:"PAGE_SIZE" envDefault:"9"`

	Logging  LoggingConfig
	Likes    LikesConfig
	Sessions SessionConfig
	Contact  ContactConfig

	Projects *models.ProjectList `env:"-"`
	Profile  *models.Profile     `env:"-"`
}

// LoggingConfig controls the zap logger
type LoggingConfig struct {
	Level string `env:"LOG_LEVEL" envDefault:"info"`
	File  string `env:"LOG_FILE"`
}

// LikesConfig selects where LikeFlags are kept
type LikesConfig struct {
	Backend       string `env:"LIKES_BACKEND" envDefault:"sqlite"`
	DBPath        string `env:"LIKES_DB_PATH" envDefault:"data/likes.db"`
	RedisAddr     string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPassword string `env:"REDIS_PASSWORD"`
	RedisDB       int    `env:"REDIS_DB" envDefault:"0"`
}

// SessionConfig bounds the open project views kept per server
type SessionConfig struct {
	TTL         time.Duration `env:"SESSION_TTL" envDefault:"30m"`
	MaxSessions int           `env:"MAX_SESSIONS" envDefault:"10000"`
}

// ContactConfig points at the hosted form endpoint
type ContactConfig struct {
	Endpoint string        `env:"CONTACT_ENDPOINT" envDefault:"https://formspree.io/f/xwpgynaz"`
	Timeout  time.Duration `env:"CONTACT_TIMEOUT" envDefault:"10s"`
}

// Store returns the likes store settings
func (c LikesConfig) Store() likes.Config {
	return likes.Config{
		Backend:       c.Backend,
		SQLitePath:    c.DBPath,
		RedisAddr:     c.RedisAddr,
		RedisPassword: c.RedisPassword,
		RedisDB:       c.RedisDB,
	}
}

// Load reads .env (if present), the environment and the catalog
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg, err := Parse()
	if err != nil {
		return nil, err
	}

	if err := cfg.loadContent(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Parse builds a Config from the environment alone
func Parse() (*Config, error) {
	cfg := &Config{}
	if err := env.ParseWithOptions(cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return cfg, nil
}

// Validate checks values env parsing cannot
func (c *Config) Validate() error {
	switch c.Likes.Backend {
	case likes.BackendSQLite, likes.BackendRedis, likes.BackendMemory:
	default:
		return fmt.Errorf("%sLIKES_BACKEND must be sqlite, redis or memory, got %q", EnvPrefix, c.Likes.Backend)
	}
	if c.PageSize <= 0 {
		return fmt.Errorf("%sPAGE_SIZE must be positive", EnvPrefix)
	}
	if c.StatsLatency < 0 {
		return fmt.Errorf("%sSTATS_LATENCY must not be negative", EnvPrefix)
	}
	if c.Sessions.TTL <= 0 || c.Sessions.MaxSessions <= 0 {
		return fmt.Errorf("%sSESSION_TTL and %sMAX_SESSIONS must be positive", EnvPrefix, EnvPrefix)
	}
	if c.Contact.Endpoint == "" {
		return fmt.Errorf("%sCONTACT_ENDPOINT is required", EnvPrefix)
	}
	return nil
}

// loadContent reads the project catalog and owner profile
func (c *Config) loadContent() error {
	var err error
	if c.CatalogFile != "" {
		c.Projects, err = catalog.LoadFile(c.CatalogFile)
	} else {
		c.Projects, err = catalog.Default()
	}
	if err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}

	c.Profile, err = catalog.DefaultProfile()
	if err != nil {
		return fmt.Errorf("failed to load profile: %w", err)
	}
	return nil
}
