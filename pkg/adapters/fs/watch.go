package fs

import (
	"context"
	"fmt"
	"time"

	"github.com/aretw0/lifecycle"
	"github.com/bmatcuk/doublestar/v4"
	"github.com/fsnotify/fsnotify"

	"github.com/aretw0/agenda/pkg/core"
)

// Watch reports changes to records whose key matches pattern (doublestar syntax, "" means all).
// Writes from this process are reported too: the store cannot tell writers apart.
func (s *Store) Watch(ctx context.Context, pattern string) (<-chan core.Event, error) {
	if pattern == "" {
		pattern = "*"
	}
	if !doublestar.ValidatePattern(pattern) {
		return nil, fmt.Errorf("invalid watch pattern %q", pattern)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}
	if err := watcher.Add(s.Path); err != nil {
		_ = watcher.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", s.Path, err)
	}

	events := make(chan core.Event)
	s.setWatcherActive(true)

	lifecycle.Go(ctx, func(ctx context.Context) error {
		return s.watchLoop(ctx, watcher, pattern, events)
	}, lifecycle.WithErrorHandler(func(err error) {
		s.reportWatchError(fmt.Errorf("watcher stopped: %w", err))
	}))

	return events, nil
}

func (s *Store) watchLoop(ctx context.Context, watcher *fsnotify.Watcher, pattern string, events chan<- core.Event) error {
	deb := newDebouncer(s.config.Debounce)
	release := make(chan struct{})

	// events is closed only after every debounced send has returned; release unblocks
	// sends nobody will read.
	defer func() {
		close(release)
		deb.stop()
		_ = watcher.Close()
		s.setWatcherActive(false)
		close(events)
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-watcher.Events:
			if !ok {
				if ctx.Err() != nil {
					return nil
				}
				return fmt.Errorf("watcher events channel closed")
			}
			e, ok := s.translate(ev, pattern)
			if !ok {
				continue
			}
			deb.add(e, func(e core.Event) {
				select {
				case events <- e:
				case <-ctx.Done():
				case <-release:
				}
			})

		case wErr, ok := <-watcher.Errors:
			if !ok {
				if ctx.Err() != nil {
					return nil
				}
				return fmt.Errorf("watcher errors channel closed")
			}
			s.reportWatchError(wErr)
		}
	}
}

// translate maps a filesystem notification to a store event, filtering temp files,
// foreign files and keys outside pattern.
func (s *Store) translate(ev fsnotify.Event, pattern string) (core.Event, bool) {
	key, ok := keyFromPath(ev.Name)
	if !ok {
		return core.Event{}, false
	}
	if match, err := doublestar.Match(pattern, key); err != nil || !match {
		return core.Event{}, false
	}

	var t core.EventType
	switch {
	case ev.Has(fsnotify.Create):
		t = core.EventCreate
	case ev.Has(fsnotify.Write):
		t = core.EventModify
	case ev.Has(fsnotify.Remove), ev.Has(fsnotify.Rename):
		t = core.EventDelete
	default:
		return core.Event{}, false
	}

	if s.config.Logger != nil {
		s.config.Logger.Debug("record changed", "key", key, "op", ev.Op.String())
	}
	return core.Event{Type: t, Key: key, Timestamp: time.Now().Unix()}, true
}

func (s *Store) reportWatchError(err error) {
	if s.config.ErrorHandler != nil {
		s.config.ErrorHandler(err)
		return
	}
	if s.config.Logger != nil {
		s.config.Logger.Error("watch error", "error", err)
	}
}
