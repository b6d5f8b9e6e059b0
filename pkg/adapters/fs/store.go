// Package fs implements core.Store on top of the local filesystem: one JSON file per key.
package fs

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/aretw0/agenda/pkg/core"
)

// RecordExt is the extension of record files.
const RecordExt = ".json"

// Config holds the configuration for the filesystem store.
type Config struct {
	Path         string
	MustExist    bool
	ReadOnly     bool
	Logger       *slog.Logger
	ErrorHandler func(error)   // receives watcher failures; they are logged otherwise
	Debounce     time.Duration // coalescing window for watch events; zero means 50ms
}

// Store implements core.Store using the filesystem.
type Store struct {
	Path   string
	config Config

	mu            sync.RWMutex
	watcherActive bool
	writes        int
	lastWrite     *time.Time
}

// NewStore creates a new filesystem-backed store. No I/O happens until Initialize.
func NewStore(config Config) *Store {
	if config.Debounce <= 0 {
		config.Debounce = 50 * time.Millisecond
	}
	return &Store{
		Path:   config.Path,
		config: config,
	}
}

// Initialize makes sure the store directory is usable.
func (s *Store) Initialize(ctx context.Context) error {
	if s.config.MustExist || s.config.ReadOnly {
		info, err := os.Stat(s.Path)
		if os.IsNotExist(err) {
			return fmt.Errorf("store path does not exist: %s", s.Path)
		}
		if err != nil {
			return err
		}
		if !info.IsDir() {
			return fmt.Errorf("store path is not a directory: %s", s.Path)
		}
		return nil
	}
	if err := os.MkdirAll(s.Path, 0755); err != nil {
		return fmt.Errorf("failed to create store directory: %w", err)
	}
	return nil
}

// Get reads the record stored under key.
func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	path, err := s.pathFor(key)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, core.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read record %s: %w", key, err)
	}
	return data, nil
}

// Put writes the record atomically.
func (s *Store) Put(ctx context.Context, key string, value []byte) error {
	if s.config.ReadOnly {
		return core.ErrReadOnly
	}
	path, err := s.pathFor(key)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(s.Path, 0755); err != nil {
		return fmt.Errorf("failed to create store directory: %w", err)
	}
	if err := replaceFile(path, value, 0644); err != nil {
		return err
	}

	s.mu.Lock()
	now := time.Now()
	s.writes++
	s.lastWrite = &now
	s.mu.Unlock()

	if s.config.Logger != nil {
		s.config.Logger.Debug("record written", "key", key, "bytes", len(value))
	}
	return nil
}

// Delete removes the record file. A missing file is not an error.
func (s *Store) Delete(ctx context.Context, key string) error {
	if s.config.ReadOnly {
		return core.ErrReadOnly
	}
	path, err := s.pathFor(key)
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to delete record %s: %w", key, err)
	}
	return nil
}

func (s *Store) pathFor(key string) (string, error) {
	if !validKey(key) {
		return "", fmt.Errorf("invalid record key %q", key)
	}
	return filepath.Join(s.Path, key+RecordExt), nil
}

// validKey keeps keys to plain file names inside the store directory.
func validKey(key string) bool {
	if key == "" || strings.HasPrefix(key, ".") || strings.HasPrefix(key, TempFilePrefix) {
		return false
	}
	return !strings.ContainsAny(key, `/\`+"\x00")
}

// keyFromPath maps a file in the store directory back to its key.
func keyFromPath(path string) (string, bool) {
	base := filepath.Base(path)
	if !strings.HasSuffix(base, RecordExt) {
		return "", false
	}
	key := strings.TrimSuffix(base, RecordExt)
	return key, validKey(key)
}

var _ core.Store = (*Store)(nil)
var _ core.Watchable = (*Store)(nil)
