package platform

import (
	"log/slog"
	"time"

	"github.com/aretw0/agenda/pkg/core"
)

// Adapter names accepted by WithAdapter.
const (
	AdapterFS     = "fs"
	AdapterSQLite = "sqlite"
	AdapterMemory = "memory"
)

// DefaultSystemDir is the directory that marks a project-local agenda.
const DefaultSystemDir = ".agenda"

// options holds the internal configuration for opening a tracker.
type options struct {
	store        core.Store
	logger       *slog.Logger
	adapter      string
	key          string
	systemDir    string
	readOnly     bool
	mustExist    bool
	devSafety    bool
	now          func() time.Time
	errorHandler func(error)
}

// Option defines a functional option for configuring a tracker.
type Option func(*options)

// defaultOptions returns the default configuration.
func defaultOptions() *options {
	return &options{
		adapter:   AdapterFS,
		systemDir: DefaultSystemDir,
		devSafety: true,
	}
}

// WithLogger sets the logger shared by the tracker and its store.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithAdapter selects the storage adapter by name ("fs", "sqlite" or "memory").
// Defaults to "fs".
func WithAdapter(name string) Option {
	return func(o *options) {
		o.adapter = name
	}
}

// WithStore injects a ready store. The adapter option is ignored when set.
func WithStore(store core.Store) Option {
	return func(o *options) {
		o.store = store
	}
}

// WithKey overrides the record key the session is stored under.
func WithKey(key string) Option {
	return func(o *options) {
		o.key = key
	}
}

// WithSystemDir sets the marker directory looked up by ResolveDir (e.g. ".agenda").
func WithSystemDir(name string) Option {
	return func(o *options) {
		o.systemDir = name
	}
}

// WithReadOnly opens the store without write access. Every edit then fails to save
// with core.ErrReadOnly while still applying in memory.
func WithReadOnly(enabled bool) Option {
	return func(o *options) {
		o.readOnly = enabled
	}
}

// WithMustExist refuses to create a missing data directory.
func WithMustExist(must bool) Option {
	return func(o *options) {
		o.mustExist = must
	}
}

// WithDevSafety controls the sandbox used under `go run` and `go test`: by default
// the data directory is re-rooted below the system temp dir in those runs.
func WithDevSafety(enabled bool) Option {
	return func(o *options) {
		o.devSafety = enabled
	}
}

// WithClock sets the clock used for default meeting dates.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		o.now = now
	}
}

// WithWatcherErrorHandler registers a callback for failures inside the fs watch loop,
// which are otherwise only logged.
func WithWatcherErrorHandler(fn func(error)) Option {
	return func(o *options) {
		o.errorHandler = fn
	}
}
