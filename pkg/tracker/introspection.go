package tracker

import (
	"time"

	"github.com/aretw0/introspection"

	"github.com/aretw0/agenda/pkg/core"
)

// TrackerState exposes internal state for observability.
type TrackerState struct {
	Key          string         `json:"key"`
	StoreType    string         `json:"store_type"`
	Restored     bool           `json:"restored"`
	Saves        int            `json:"saves"`
	LastSave     *time.Time     `json:"last_save,omitempty"`
	Rows         map[string]int `json:"rows"`
	TotalMinutes int            `json:"total_minutes"`
}

// State implements introspection.Introspectable.
func (t *Tracker) State() any {
	storeType := "store"
	if comp, ok := t.store.(introspection.Component); ok {
		storeType = comp.ComponentType()
	}

	t.mu.RLock()
	defer t.mu.RUnlock()
	return TrackerState{
		Key:       t.config.Key,
		StoreType: storeType,
		Restored:  t.restored,
		Saves:     t.saves,
		LastSave:  t.lastSave,
		Rows: map[string]int{
			string(Agenda):     len(t.session.AgendaItems),
			string(Activities): len(t.session.Activities),
			string(Todos):      len(t.session.Todos),
			string(Actions):    len(t.session.ActionItems),
		},
		TotalMinutes: core.TotalAllocatedMinutes(t.session.AgendaItems),
	}
}

// ComponentType implements introspection.Component.
func (t *Tracker) ComponentType() string {
	return "tracker"
}

var _ introspection.Introspectable = (*Tracker)(nil)
var _ introspection.Component = (*Tracker)(nil)
