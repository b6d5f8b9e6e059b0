// Package tracker owns the live Session: it applies edits through the row operations,
// persists the whole session after every change and restores it at startup.
package tracker

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/aretw0/agenda/pkg/core"
	"github.com/aretw0/agenda/pkg/rows"
	"github.com/aretw0/agenda/pkg/typed"
)

// DefaultKey is the fixed key the session record is stored under.
const DefaultKey = "meeting-agenda-tracker"

// Config holds the tracker configuration.
type Config struct {
	Key    string           // defaults to DefaultKey
	Logger *slog.Logger     // optional
	Now    func() time.Time // clock used for default dates; defaults to time.Now
}

// Tracker is the single owner of a Session.
type Tracker struct {
	store  core.Store
	repo   *typed.Repository[record]
	config Config

	// saveMu orders edits and their writes: a snapshot is stored before the next edit applies.
	saveMu sync.Mutex

	mu       sync.RWMutex
	session  core.Session
	restored bool
	saves    int
	lastSave *time.Time
}

// New creates a tracker holding the cold-start session. Call Load to restore the stored one.
func New(store core.Store, config Config) *Tracker {
	if config.Key == "" {
		config.Key = DefaultKey
	}
	if config.Now == nil {
		config.Now = time.Now
	}
	return &Tracker{
		store:   store,
		repo:    typed.NewRepository[record](store),
		config:  config,
		session: core.NewSession(config.Now()),
	}
}

// Key returns the record key the session is stored under.
func (t *Tracker) Key() string { return t.config.Key }

// Store returns the underlying durable store.
func (t *Tracker) Store() core.Store { return t.store }

// Close releases the store when it holds resources, such as a database handle.
func (t *Tracker) Close() error {
	if c, ok := t.store.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

// Load restores the stored session, if any, and reports whether one was adopted.
// Missing, unreadable or undecodable records leave the current session in place and
// it is written back, so the ids shown to the user are the stored ones. Failures are
// logged, never returned.
func (t *Tracker) Load(ctx context.Context) bool {
	t.saveMu.Lock()
	defer t.saveMu.Unlock()

	s, ok := t.read(ctx)
	if !ok {
		t.persistDefaults(ctx)
		return false
	}
	t.mu.Lock()
	t.session = s
	t.restored = true
	t.mu.Unlock()
	return true
}

// Reload re-reads the record after another writer changed it.
// A deleted record resets the session to its cold-start value, which is stored again;
// an unreadable one is ignored.
func (t *Tracker) Reload(ctx context.Context) bool {
	_, err := t.store.Get(ctx, t.config.Key)
	if !errors.Is(err, core.ErrNotFound) {
		return t.Load(ctx)
	}

	t.saveMu.Lock()
	defer t.saveMu.Unlock()
	t.mu.Lock()
	t.session = core.NewSession(t.config.Now())
	t.restored = false
	t.mu.Unlock()
	t.persistDefaults(ctx)
	return true
}

// persistDefaults stores the session Load did not replace. A read-only store is expected
// to refuse. Callers hold saveMu.
func (t *Tracker) persistDefaults(ctx context.Context) {
	err := t.save(ctx)
	switch {
	case err == nil:
		t.debug("default session stored", "key", t.config.Key)
	case errors.Is(err, core.ErrReadOnly):
		t.debug("read-only store, default session kept in memory", "key", t.config.Key)
	case t.config.Logger != nil:
		t.config.Logger.Warn("failed to store default session", "key", t.config.Key, "error", err)
	}
}

func (t *Tracker) read(ctx context.Context) (core.Session, bool) {
	rec, err := t.repo.Get(ctx, t.config.Key)
	switch {
	case errors.Is(err, core.ErrNotFound):
		t.debug("no stored session, using defaults", "key", t.config.Key)
		return core.Session{}, false
	case err != nil:
		if t.config.Logger != nil {
			t.config.Logger.Warn("discarding unreadable session", "key", t.config.Key, "error", err)
		}
		return core.Session{}, false
	}
	return rec.Data.repair(t.config.Now()), true
}

// Save writes the full session under the tracker key.
func (t *Tracker) Save(ctx context.Context) error {
	t.saveMu.Lock()
	defer t.saveMu.Unlock()
	return t.save(ctx)
}

// save snapshots the session and writes it. Callers hold saveMu.
func (t *Tracker) save(ctx context.Context) error {
	t.mu.RLock()
	rec := &typed.Record[record]{Key: t.config.Key, Data: toRecord(t.session.Clone()), Saver: t.repo}
	t.mu.RUnlock()

	if err := rec.Save(ctx); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}

	t.mu.Lock()
	now := time.Now()
	t.saves++
	t.lastSave = &now
	t.mu.Unlock()
	return nil
}

// Session returns a copy of the current session.
func (t *Tracker) Session() core.Session {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.session.Clone()
}

// TotalMinutes is the time allocated across the agenda.
func (t *Tracker) TotalMinutes() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return core.TotalAllocatedMinutes(t.session.AgendaItems)
}

// mutate applies fn to the session and persists the result when fn reports a change.
// Edits and their writes are serialized, so the stored record never goes back in time.
// The in-memory edit stands even when saving fails.
func (t *Tracker) mutate(ctx context.Context, fn func(s *core.Session) (bool, error)) error {
	t.saveMu.Lock()
	defer t.saveMu.Unlock()

	t.mu.Lock()
	changed, err := fn(&t.session)
	t.mu.Unlock()
	if err != nil || !changed {
		return err
	}
	return t.save(ctx)
}

// Field is one field assignment for a new row.
type Field struct {
	Name  string
	Value string
}

// Add appends a row built from the collection's template, with fields applied in order,
// and returns its identifier. An invalid field adds nothing.
func (t *Tracker) Add(ctx context.Context, c Collection, fields ...Field) (core.ID, error) {
	var id core.ID
	err := t.mutate(ctx, func(s *core.Session) (bool, error) {
		var err error
		switch c {
		case Agenda:
			id, err = addRow(&s.AgendaItems, core.AgendaTemplate(), fields)
		case Activities:
			id, err = addRow(&s.Activities, core.ActivityTemplate(), fields)
		case Todos:
			id, err = addRow(&s.Todos, core.TodoTemplate(), fields)
		case Actions:
			id, err = addRow(&s.ActionItems, core.ActionTemplate(), fields)
		default:
			return false, unknownCollection(c)
		}
		return err == nil, err
	})
	return id, err
}

// Update sets one field of one row. An unknown id is silently ignored.
func (t *Tracker) Update(ctx context.Context, c Collection, id core.ID, field, value string) error {
	return t.mutate(ctx, func(s *core.Session) (bool, error) {
		switch c {
		case Agenda:
			return updateRow(&s.AgendaItems, id, field, value)
		case Activities:
			return updateRow(&s.Activities, id, field, value)
		case Todos:
			return updateRow(&s.Todos, id, field, value)
		case Actions:
			return updateRow(&s.ActionItems, id, field, value)
		}
		return false, unknownCollection(c)
	})
}

// Remove drops a row and reports whether it did. The last row of a collection is never removed.
func (t *Tracker) Remove(ctx context.Context, c Collection, id core.ID) (bool, error) {
	var removed bool
	err := t.mutate(ctx, func(s *core.Session) (bool, error) {
		switch c {
		case Agenda:
			removed = removeRow(&s.AgendaItems, id)
		case Activities:
			removed = removeRow(&s.Activities, id)
		case Todos:
			removed = removeRow(&s.Todos, id)
		case Actions:
			removed = removeRow(&s.ActionItems, id)
		default:
			return false, unknownCollection(c)
		}
		return removed, nil
	})
	return removed, err
}

// Has reports whether the collection holds a row with the given id.
func (t *Tracker) Has(c Collection, id core.ID) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	switch c {
	case Agenda:
		return rows.Index(t.session.AgendaItems, id) >= 0
	case Activities:
		return rows.Index(t.session.Activities, id) >= 0
	case Todos:
		return rows.Index(t.session.Todos, id) >= 0
	case Actions:
		return rows.Index(t.session.ActionItems, id) >= 0
	}
	return false
}

// SetMeetingField edits one meeting info field.
func (t *Tracker) SetMeetingField(ctx context.Context, field, value string) error {
	return t.mutate(ctx, func(s *core.Session) (bool, error) {
		mi, err := s.MeetingInfo.WithField(field, value)
		if err != nil {
			return false, err
		}
		changed := mi != s.MeetingInfo
		s.MeetingInfo = mi
		return changed, nil
	})
}

// SetNotes replaces the free-text notes block.
func (t *Tracker) SetNotes(ctx context.Context, notes string) error {
	return t.mutate(ctx, func(s *core.Session) (bool, error) {
		if s.Notes == notes {
			return false, nil
		}
		s.Notes = notes
		return true, nil
	})
}

// Reset asks for confirmation, then deletes the stored record and returns the session
// to its cold-start value, which is stored in its place. Declining changes nothing.
func (t *Tracker) Reset(ctx context.Context, confirm Confirmer) (bool, error) {
	if confirm == nil {
		return false, errors.New("reset requires a confirmer")
	}
	ok, err := confirm.Confirm(ResetQuestion)
	if err != nil {
		return false, fmt.Errorf("confirmation failed: %w", err)
	}
	if !ok {
		t.debug("reset declined")
		return false, nil
	}

	t.saveMu.Lock()
	defer t.saveMu.Unlock()

	if err := t.repo.Delete(ctx, t.config.Key); err != nil {
		return false, fmt.Errorf("failed to delete stored session: %w", err)
	}

	t.mu.Lock()
	t.session = core.NewSession(t.config.Now())
	t.restored = false
	t.mu.Unlock()

	if t.config.Logger != nil {
		t.config.Logger.Info("session cleared", "key", t.config.Key)
	}
	return true, t.save(ctx)
}

func (t *Tracker) debug(msg string, args ...any) {
	if t.config.Logger != nil {
		t.config.Logger.Debug(msg, args...)
	}
}

func addRow[T core.Row[T]](list *[]T, template T, fields []Field) (core.ID, error) {
	row := template
	for _, f := range fields {
		var err error
		if row, err = row.WithField(f.Name, f.Value); err != nil {
			return 0, err
		}
	}
	*list = rows.Add(*list, row, nil)
	return (*list)[len(*list)-1].RowID(), nil
}

func updateRow[T core.Row[T]](list *[]T, id core.ID, field, value string) (bool, error) {
	out, err := rows.Update(*list, id, field, value)
	if err != nil {
		return false, err
	}
	changed := !rows.Same(*list, out)
	*list = out
	return changed, nil
}

func removeRow[T core.Row[T]](list *[]T, id core.ID) bool {
	out := rows.Remove(*list, id)
	changed := !rows.Same(*list, out)
	*list = out
	return changed
}

func unknownCollection(c Collection) error {
	return fmt.Errorf("%w: %q", core.ErrUnknownCollection, string(c))
}
