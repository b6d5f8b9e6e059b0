package agenda

import (
	"context"
	"log/slog"
	"time"

	"github.com/aretw0/agenda/internal/platform"
	"github.com/aretw0/agenda/pkg/core"
	"github.com/aretw0/agenda/pkg/tracker"
)

// --- Types ---

// Tracker owns a session and persists it on every change.
type Tracker = tracker.Tracker

// Session is the full tracked state.
type Session = core.Session

// Collection names one of the row lists of a session.
type Collection = tracker.Collection

// Field is one field assignment for a row added with Tracker.Add.
type Field = tracker.Field

// Collections.
const (
	Agenda     = tracker.Agenda
	Activities = tracker.Activities
	Todos      = tracker.Todos
	Actions    = tracker.Actions
)

// --- Configuration ---

// Option defines a functional option for opening a tracker.
type Option = platform.Option

// WithLogger sets the logger for the tracker and its store.
func WithLogger(logger *slog.Logger) Option {
	return platform.WithLogger(logger)
}

// WithAdapter selects the storage adapter by name ("fs", "sqlite" or "memory").
func WithAdapter(name string) Option {
	return platform.WithAdapter(name)
}

// WithStore injects a custom store.
func WithStore(store core.Store) Option {
	return platform.WithStore(store)
}

// WithKey overrides the record key.
func WithKey(key string) Option {
	return platform.WithKey(key)
}

// WithSystemDir sets the project marker directory (e.g. ".agenda").
func WithSystemDir(name string) Option {
	return platform.WithSystemDir(name)
}

// WithReadOnly opens the store without write access.
func WithReadOnly(enabled bool) Option {
	return platform.WithReadOnly(enabled)
}

// WithMustExist refuses to create a missing data directory.
func WithMustExist(must bool) Option {
	return platform.WithMustExist(must)
}

// WithDevSafety toggles the temp-dir sandbox used under `go run` and `go test`.
func WithDevSafety(enabled bool) Option {
	return platform.WithDevSafety(enabled)
}

// WithClock sets the clock used for default dates.
func WithClock(now func() time.Time) Option {
	return platform.WithClock(now)
}

// WithWatcherErrorHandler receives failures from the fs watch loop.
func WithWatcherErrorHandler(fn func(error)) Option {
	return platform.WithWatcherErrorHandler(fn)
}

// --- Factory ---

// Open returns a tracker backed by the selected store, holding the restored session.
func Open(ctx context.Context, dir string, opts ...Option) (*Tracker, error) {
	return platform.Open(ctx, dir, opts...)
}

// --- Utils ---

// ResolveDir picks the data directory: explicit path, nearest project marker, or the
// per-user config directory.
func ResolveDir(explicit, startDir, systemDir string) (string, error) {
	return platform.ResolveDir(explicit, startDir, systemDir)
}

// FindRoot looks upwards from startDir for a directory holding the marker.
func FindRoot(startDir, systemDir string) (string, error) {
	return platform.FindRoot(startDir, systemDir)
}
