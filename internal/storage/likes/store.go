// Package likes persists per-client LikeFlags.
//
// Flags are written once and never cleared. Each backend keys a flag by the
// client id and a flag key such as "liked_<project id>".
package likes

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"pixelnex.dev/internal/apperrors"
)

// Store is a durable set of (client, key) flags
type Store interface {
	Has(ctx context.Context, clientID, key string) (bool, error)
	Set(ctx context.Context, clientID, key string) error
	Close() error
}

// ClientFlags scopes a Store to a single client
type ClientFlags struct {
	store    Store
	clientID string
}

// ForClient returns the flags belonging to clientID
func ForClient(store Store, clientID string) ClientFlags {
	return ClientFlags{store: store, clientID: clientID}
}

func (f ClientFlags) Has(ctx context.Context, key string) (bool, error) {
	return f.store.Has(ctx, f.clientID, key)
}

func (f ClientFlags) Set(ctx context.Context, key string) error {
	return f.store.Set(ctx, f.clientID, key)
}

// Backends
const (
	BackendSQLite = "sqlite"
	BackendRedis  = "redis"
	BackendMemory = "memory"
)

// Config selects and configures a backend
type Config struct {
	Backend       string
	SQLitePath    string
	RedisAddr     string
	RedisPassword string
	RedisDB       int
}

// Open creates the configured store. Connection failures are reported as
// storage errors.
func Open(ctx context.Context, cfg Config, logger *zap.Logger) (Store, error) {
	switch cfg.Backend {
	case BackendSQLite:
		store, err := OpenSQLite(ctx, cfg.SQLitePath, logger)
		if err != nil {
			return nil, apperrors.Storage("open sqlite likes store", err)
		}
		return store, nil
	case BackendRedis:
		store, err := NewRedisStore(ctx, RedisConfig{Addr: cfg.RedisAddr, Password: cfg.RedisPassword, DB: cfg.RedisDB}, logger)
		if err != nil {
			return nil, apperrors.Storage("open redis likes store", err)
		}
		return store, nil
	case BackendMemory:
		return NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("unknown likes backend: %s", cfg.Backend)
	}
}
