package platform

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/aretw0/agenda/pkg/adapters/fs"
	"github.com/aretw0/agenda/pkg/adapters/memory"
	"github.com/aretw0/agenda/pkg/adapters/sqlite"
	"github.com/aretw0/agenda/pkg/core"
	"github.com/aretw0/agenda/pkg/tracker"
)

// Open builds the store selected by the options, initializes it and returns a tracker
// holding the restored session (or the cold-start one when nothing usable is stored).
//
// dir is the data directory for the fs and sqlite adapters and is ignored by memory.
func Open(ctx context.Context, dir string, opts ...Option) (*tracker.Tracker, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	store := o.store
	if store == nil {
		var err error
		store, err = newStore(dir, o)
		if err != nil {
			return nil, err
		}
	}

	if err := store.Initialize(ctx); err != nil {
		return nil, fmt.Errorf("failed to initialize store: %w", err)
	}

	t := tracker.New(store, tracker.Config{
		Key:    o.key,
		Logger: o.logger,
		Now:    o.now,
	})
	if t.Load(ctx) && o.logger != nil {
		o.logger.Debug("session restored", "key", t.Key())
	}
	return t, nil
}

func newStore(dir string, o *options) (core.Store, error) {
	switch o.adapter {
	case AdapterMemory:
		if o.readOnly {
			return memory.NewReadOnlyStore(nil), nil
		}
		return memory.NewStore(), nil
	case AdapterFS, AdapterSQLite:
	default:
		return nil, fmt.Errorf("unknown adapter: %s", o.adapter)
	}

	if dir == "" {
		return nil, fmt.Errorf("adapter %s needs a data directory", o.adapter)
	}
	useTemp := o.devSafety && !o.readOnly && IsDevRun()
	resolved := ResolveDataDir(dir, useTemp)
	if o.logger != nil && resolved != filepath.Clean(dir) {
		o.logger.Warn("running in SAFE MODE (dev sandbox)", "original_path", dir, "resolved_path", resolved)
	}

	if o.adapter == AdapterSQLite {
		return sqlite.NewStore(sqlite.Config{
			Path:     filepath.Join(resolved, sqlite.DefaultFilename),
			ReadOnly: o.readOnly,
			Logger:   o.logger,
		}), nil
	}
	return fs.NewStore(fs.Config{
		Path:         resolved,
		MustExist:    o.mustExist,
		ReadOnly:     o.readOnly,
		Logger:       o.logger,
		ErrorHandler: o.errorHandler,
	}), nil
}
