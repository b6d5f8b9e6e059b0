// Package sqlite implements core.Store on a single-table SQLite database
// (pure Go driver, no cgo).
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/aretw0/introspection"
	_ "modernc.org/sqlite"

	"github.com/aretw0/agenda/pkg/core"
)

// DefaultFilename is the database file created inside the store directory.
const DefaultFilename = "agenda.sqlite"

// Config holds the configuration for the SQLite store.
type Config struct {
	Path     string // database file
	ReadOnly bool
	Logger   *slog.Logger
}

// Store implements core.Store with one row per key.
type Store struct {
	config Config

	mu sync.Mutex
	db *sql.DB
}

// NewStore creates a SQLite-backed store. The database is opened by Initialize.
func NewStore(config Config) *Store {
	return &Store{config: config}
}

// Initialize opens the database and applies the schema.
func (s *Store) Initialize(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.db != nil {
		return nil
	}

	if s.config.ReadOnly {
		if _, err := os.Stat(s.config.Path); err != nil {
			return fmt.Errorf("sqlite store not found: %w", err)
		}
	} else if err := os.MkdirAll(filepath.Dir(s.config.Path), 0755); err != nil {
		return fmt.Errorf("failed to create store directory: %w", err)
	}

	// modernc.org/sqlite driver name is "sqlite".
	db, err := sql.Open("sqlite", s.config.Path)
	if err != nil {
		return err
	}
	// WAL lets a second tracker read while this one writes; busy_timeout absorbs short lock waits.
	pragmas := []string{
		"PRAGMA journal_mode=WAL;",
		"PRAGMA synchronous=NORMAL;",
		"PRAGMA busy_timeout=5000;",
	}
	if s.config.ReadOnly {
		pragmas = append(pragmas, "PRAGMA query_only=ON;")
	}
	for _, p := range pragmas {
		if _, err := db.ExecContext(ctx, p); err != nil {
			_ = db.Close()
			return err
		}
	}
	if !s.config.ReadOnly {
		if _, err := db.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS records (
			k TEXT PRIMARY KEY,
			v BLOB NOT NULL,
			updated_at INTEGER NOT NULL
		);`); err != nil {
			_ = db.Close()
			return fmt.Errorf("failed to migrate sqlite store: %w", err)
		}
	}
	s.db = db
	return nil
}

// Close releases the database handle.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}

func (s *Store) handle() (*sql.DB, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.db == nil {
		return nil, errors.New("sqlite store is not initialized")
	}
	return s.db, nil
}

func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	db, err := s.handle()
	if err != nil {
		return nil, err
	}
	var v []byte
	err = db.QueryRowContext(ctx, `SELECT v FROM records WHERE k = ?`, key).Scan(&v)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, core.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read record %s: %w", key, err)
	}
	return v, nil
}

func (s *Store) Put(ctx context.Context, key string, value []byte) error {
	if s.config.ReadOnly {
		return core.ErrReadOnly
	}
	db, err := s.handle()
	if err != nil {
		return err
	}
	if _, err := db.ExecContext(ctx,
		`INSERT OR REPLACE INTO records(k, v, updated_at) VALUES(?, ?, ?)`,
		key, value, time.Now().UnixMilli(),
	); err != nil {
		return fmt.Errorf("failed to write record %s: %w", key, err)
	}
	if s.config.Logger != nil {
		s.config.Logger.Debug("record written", "key", key, "bytes", len(value))
	}
	return nil
}

func (s *Store) Delete(ctx context.Context, key string) error {
	if s.config.ReadOnly {
		return core.ErrReadOnly
	}
	db, err := s.handle()
	if err != nil {
		return err
	}
	if _, err := db.ExecContext(ctx, `DELETE FROM records WHERE k = ?`, key); err != nil {
		return fmt.Errorf("failed to delete record %s: %w", key, err)
	}
	return nil
}

// StoreState exposes internal state for observability.
type StoreState struct {
	Path     string `json:"path"`
	ReadOnly bool   `json:"read_only"`
	Open     bool   `json:"open"`
}

// State implements introspection.Introspectable.
func (s *Store) State() any {
	s.mu.Lock()
	defer s.mu.Unlock()
	return StoreState{Path: s.config.Path, ReadOnly: s.config.ReadOnly, Open: s.db != nil}
}

// ComponentType implements introspection.Component.
func (s *Store) ComponentType() string {
	return "sqlite-store"
}

var _ core.Store = (*Store)(nil)
var _ introspection.Introspectable = (*Store)(nil)
var _ introspection.Component = (*Store)(nil)
