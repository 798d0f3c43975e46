package likes

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS like_flags (
	client_id  TEXT NOT NULL,
	flag_key   TEXT NOT NULL,
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
	PRIMARY KEY (client_id, flag_key)
)`

// SQLiteStore keeps flags in a local SQLite database
type SQLiteStore struct {
	db     *sql.DB
	logger *zap.Logger
}

// OpenSQLite opens (creating if needed) the database at path.
// Use ":memory:" for a throwaway store.
func OpenSQLite(ctx context.Context, path string, logger *zap.Logger) (*SQLiteStore, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return nil, fmt.Errorf("create likes db dir: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open likes db: %w", err)
	}
	// one connection keeps :memory: databases shared and serialises writers
	db.SetMaxOpenConns(1)

	for _, pragma := range []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 10000",
		"PRAGMA synchronous = NORMAL",
	} {
		if _, err := db.ExecContext(ctx, pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("apply %q: %w", pragma, err)
		}
	}

	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create like_flags table: %w", err)
	}

	logger.Info("Likes database ready", zap.String("path", path))
	return &SQLiteStore{db: db, logger: logger}, nil
}

func (s *SQLiteStore) Has(ctx context.Context, clientID, key string) (bool, error) {
	var exists int
	err := s.db.QueryRowContext(ctx,
		`SELECT EXISTS(SELECT 1 FROM like_flags WHERE client_id = ? AND flag_key = ?)`,
		clientID, key,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("query like flag: %w", err)
	}
	return exists == 1, nil
}

func (s *SQLiteStore) Set(ctx context.Context, clientID, key string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT OR IGNORE INTO like_flags (client_id, flag_key) VALUES (?, ?)`,
		clientID, key,
	)
	if err != nil {
		return fmt.Errorf("insert like flag: %w", err)
	}
	return nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
