// Package lifecycle bridges store change notifications into lifecycle event sources.
package lifecycle

import (
	"context"
	"fmt"

	"github.com/aretw0/lifecycle"

	"github.com/aretw0/agenda/pkg/core"
)

// Change is emitted for every store event that concerns the watched record.
type Change struct {
	Seq   int
	Event core.Event
}

func (c Change) String() string {
	return fmt.Sprintf("#%d %s", c.Seq, c.Event)
}

type recordSource struct {
	key    string
	events <-chan core.Event
	out    chan lifecycle.Event
}

// NewSource creates a lifecycle.Source emitting a Change for each event about key.
// An empty key forwards every event.
func NewSource(events <-chan core.Event, key string) lifecycle.Source {
	return &recordSource{
		key:    key,
		events: events,
		out:    make(chan lifecycle.Event),
	}
}

func (s *recordSource) Events() <-chan lifecycle.Event {
	return s.out
}

func (s *recordSource) Start(ctx context.Context) error {
	lifecycle.Go(ctx, func(ctx context.Context) error {
		defer close(s.out)
		seq := 0
		for {
			select {
			case <-ctx.Done():
				return nil
			case e, ok := <-s.events:
				if !ok {
					return nil
				}
				if s.key != "" && e.Key != s.key {
					continue
				}
				seq++
				select {
				case s.out <- Change{Seq: seq, Event: e}:
				case <-ctx.Done():
					return nil
				}
			}
		}
	})
	return nil
}
