package fs

import (
	"sync"
	"time"

	"github.com/aretw0/agenda/pkg/core"
)

// debouncer coalesces bursts of events per key; only the last event of a burst fires.
type debouncer struct {
	wait time.Duration

	mu      sync.Mutex
	timers  map[string]*time.Timer
	gens    map[string]uint64
	seq     uint64
	stopped bool
	wg      sync.WaitGroup
}

func newDebouncer(wait time.Duration) *debouncer {
	return &debouncer{
		wait:   wait,
		timers: make(map[string]*time.Timer),
		gens:   make(map[string]uint64),
	}
}

func (d *debouncer) add(e core.Event, fire func(core.Event)) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.stopped {
		return
	}

	if t, ok := d.timers[e.Key]; ok && t.Stop() {
		d.wg.Done()
	}

	d.seq++
	gen := d.seq
	d.gens[e.Key] = gen
	d.wg.Add(1)
	d.timers[e.Key] = time.AfterFunc(d.wait, func() {
		defer d.wg.Done()

		d.mu.Lock()
		// A newer event for the same key superseded this one.
		if d.stopped || d.gens[e.Key] != gen {
			d.mu.Unlock()
			return
		}
		delete(d.timers, e.Key)
		delete(d.gens, e.Key)
		d.mu.Unlock()

		fire(e)
	})
}

// stop drops pending events and waits for callbacks already running.
// Callbacks must not block indefinitely once the caller has begun shutting down.
func (d *debouncer) stop() {
	d.mu.Lock()
	d.stopped = true
	for key, t := range d.timers {
		if t.Stop() {
			d.wg.Done()
		}
		delete(d.timers, key)
	}
	d.mu.Unlock()

	d.wg.Wait()
}
