// Package state persists per-document build state (content fingerprint
// and output path) in SQLite, enabling incremental builds that skip
// unchanged documents.
package state

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"time"

	_ "modernc.org/sqlite"
)

// Store is a SQLite-backed build state store.
type Store struct {
	db *sql.DB
	mu sync.RWMutex
}

// NewStore opens (or creates) the build state database.
// Use ":memory:" for an in-memory database, or a file path for
// persistent storage.
func NewStore(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open state database: %w", err)
	}

	store := &Store{db: db}
	if err := store.initialize(); err != nil {
		_ = db.Close() // Best effort cleanup on initialization error
		return nil, fmt.Errorf("initialize schema: %w", err)
	}

	return store, nil
}

func (s *Store) initialize() error {
	schema := `
	CREATE TABLE IF NOT EXISTS documents (
		path TEXT PRIMARY KEY,
		fingerprint TEXT NOT NULL,
		output TEXT NOT NULL,
		built_at INTEGER NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_built_at ON documents(built_at);
	`
	_, err := s.db.Exec(schema)
	return err
}

// Lookup returns the recorded fingerprint and output path for a source
// path; ok is false when the document has never been built.
func (s *Store) Lookup(ctx context.Context, path string) (fingerprint, output string, ok bool, err error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	row := s.db.QueryRowContext(ctx,
		"SELECT fingerprint, output FROM documents WHERE path = ?", path)
	switch err := row.Scan(&fingerprint, &output); err {
	case nil:
		return fingerprint, output, true, nil
	case sql.ErrNoRows:
		return "", "", false, nil
	default:
		return "", "", false, fmt.Errorf("query document state: %w", err)
	}
}

// Record upserts the build state for a source path.
func (s *Store) Record(ctx context.Context, path, fingerprint, output string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO documents (path, fingerprint, output, built_at) VALUES (?, ?, ?, ?)
		 ON CONFLICT(path) DO UPDATE SET fingerprint = excluded.fingerprint,
		 output = excluded.output, built_at = excluded.built_at`,
		path, fingerprint, output, time.Now().Unix(),
	)
	if err != nil {
		return fmt.Errorf("record document state: %w", err)
	}
	return nil
}

// Forget removes the state for a source path (document deleted).
func (s *Store) Forget(ctx context.Context, path string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.db.ExecContext(ctx, "DELETE FROM documents WHERE path = ?", path); err != nil {
		return fmt.Errorf("forget document state: %w", err)
	}
	return nil
}

// Close closes the underlying database.
func (s *Store) Close() error { return s.db.Close() }
