package tracker

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/agenda/pkg/adapters/fs"
	"github.com/aretw0/agenda/pkg/adapters/memory"
	"github.com/aretw0/agenda/pkg/core"
)

var fixedNow = time.Date(2026, 10, 18, 9, 0, 0, 0, time.UTC)

func newTracker(store core.Store) *Tracker {
	return New(store, Config{Now: func() time.Time { return fixedNow }})
}

func storedSession(t *testing.T, store core.Store) map[string]any {
	t.Helper()
	raw, err := store.Get(context.Background(), DefaultKey)
	require.NoError(t, err)
	var out map[string]any
	require.NoError(t, json.Unmarshal(raw, &out))
	return out
}

func TestTracker_ColdStart(t *testing.T) {
	store := memory.NewStore()
	tr := newTracker(store)
	assert.False(t, tr.Load(context.Background()), "nothing stored yet")

	s := tr.Session()
	stored := storedSession(t, store)
	assert.Equal(t, float64(s.AgendaItems[0].ID), stored["agendaItems"].([]any)[0].(map[string]any)["id"],
		"the cold-start session is stored as shown")
	assert.Equal(t, "2026-10-18", s.MeetingInfo.Date)
	assert.Equal(t, "10:00", s.MeetingInfo.Time)
	assert.Len(t, s.AgendaItems, 1)
	assert.Equal(t, 10, tr.TotalMinutes())
}

func TestTracker_RoundTrip(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	tr := newTracker(store)

	require.NoError(t, tr.SetMeetingField(ctx, "attendees", "Ana, Bo"))
	require.NoError(t, tr.SetMeetingField(ctx, "location", "Zoom"))
	id, err := tr.Add(ctx, Agenda)
	require.NoError(t, err)
	require.NoError(t, tr.Update(ctx, Agenda, id, "topic", "Roadmap"))
	actID, err := tr.Add(ctx, Activities)
	require.NoError(t, err)
	require.NoError(t, tr.Update(ctx, Activities, actID, "priority", "high"))
	require.NoError(t, tr.SetNotes(ctx, "bring coffee"))

	want := tr.Session()

	other := newTracker(store)
	require.True(t, other.Load(ctx))
	assert.Equal(t, want, other.Session())
}

func TestTracker_PersistsOnEveryChange(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	tr := newTracker(store)

	id, err := tr.Add(ctx, Todos)
	require.NoError(t, err)
	todos := storedSession(t, store)["todos"].([]any)
	assert.Len(t, todos, 2)

	require.NoError(t, tr.Update(ctx, Todos, id, "status", "done"))
	last := storedSession(t, store)["todos"].([]any)[1].(map[string]any)
	assert.Equal(t, "done", last["status"])
	assert.Equal(t, float64(id), last["id"])

	saves := tr.State().(TrackerState).Saves
	require.NoError(t, tr.Update(ctx, Todos, 12345, "status", "done"), "unknown id is a silent no-op")
	assert.Equal(t, saves, tr.State().(TrackerState).Saves, "no change, no save")
}

func TestTracker_LoadRepairsEmptyCollections(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	require.NoError(t, store.Put(ctx, DefaultKey, []byte(`{
		"meetingInfo": {"date": "2025-01-02", "time": "09:30", "attendees": "", "location": ""},
		"agendaItems": [],
		"dailyActivities": [{"id": 7, "activity": "deploy", "status": "someday", "priority": "urgent", "dueDate": ""}],
		"todos": [],
		"actionItems": []
	}`)))

	tr := newTracker(store)
	require.True(t, tr.Load(ctx))
	s := tr.Session()

	require.Len(t, s.AgendaItems, 1)
	assert.Equal(t, "", s.AgendaItems[0].Topic)
	assert.Equal(t, core.TemplateTimeAlloc, s.AgendaItems[0].TimeAlloc)
	assert.Equal(t, "", s.AgendaItems[0].Notes)

	// Unknown enum values from older records are adopted as-is.
	require.Len(t, s.Activities, 1)
	assert.Equal(t, core.Status("someday"), s.Activities[0].Status)
	assert.Equal(t, core.Priority("urgent"), s.Activities[0].Priority)

	assert.Len(t, s.Todos, 1)
	assert.Len(t, s.ActionItems, 1)
	assert.Equal(t, "2025-01-02", s.MeetingInfo.Date)
	assert.Equal(t, "", s.Notes, "absent notes default to empty")
}

func TestTracker_LoadWithoutMeetingInfo(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	require.NoError(t, store.Put(ctx, DefaultKey, []byte(`{"notes": "kept"}`)))

	tr := newTracker(store)
	require.True(t, tr.Load(ctx))
	s := tr.Session()
	assert.Equal(t, core.DefaultMeetingInfo(fixedNow), s.MeetingInfo)
	assert.Equal(t, "kept", s.Notes)

	// Absent lists are repaired like empty ones.
	require.Len(t, s.AgendaItems, 1)
	assert.Equal(t, core.TemplateTimeAlloc, s.AgendaItems[0].TimeAlloc)
	require.Len(t, s.Activities, 1)
	assert.Equal(t, core.DefaultActivityStatus, s.Activities[0].Status)
	assert.Equal(t, core.DefaultPriority, s.Activities[0].Priority)
	require.Len(t, s.Todos, 1)
	assert.Equal(t, core.DefaultTodoStatus, s.Todos[0].Status)
	require.Len(t, s.ActionItems, 1)
	assert.Equal(t, core.DefaultActionStatus, s.ActionItems[0].Status)
}

func TestTracker_CorruptStoreRecovery(t *testing.T) {
	ctx := context.Background()
	for name, raw := range map[string]string{
		"Not JSON":    "{agenda",
		"Wrong Shape": `{"agendaItems": "nope"}`,
	} {
		t.Run(name, func(t *testing.T) {
			store := memory.NewStore()
			require.NoError(t, store.Put(ctx, DefaultKey, []byte(raw)))

			tr := newTracker(store)
			assert.NotPanics(t, func() { tr.Load(ctx) })

			s := tr.Session()
			assert.Equal(t, core.DefaultMeetingInfo(fixedNow), s.MeetingInfo)
			assert.Len(t, s.AgendaItems, 1)
			assert.Equal(t, core.SeedTimeAlloc, s.AgendaItems[0].TimeAlloc)
			assert.Len(t, s.Activities, 1)
			assert.Len(t, s.Todos, 1)
			assert.Len(t, s.ActionItems, 1)
			assert.Equal(t, "", s.Notes)

			// The unreadable record is replaced by the defaults.
			other := newTracker(store)
			require.True(t, other.Load(ctx))
			assert.Equal(t, s, other.Session())
		})
	}
}

func TestTracker_Remove(t *testing.T) {
	ctx := context.Background()
	tr := newTracker(memory.NewStore())
	only := tr.Session().ActionItems[0].ID

	removed, err := tr.Remove(ctx, Actions, only)
	require.NoError(t, err)
	assert.False(t, removed, "last row stays")

	second, err := tr.Add(ctx, Actions)
	require.NoError(t, err)
	removed, err = tr.Remove(ctx, Actions, only)
	require.NoError(t, err)
	assert.True(t, removed)

	s := tr.Session()
	require.Len(t, s.ActionItems, 1)
	assert.Equal(t, second, s.ActionItems[0].ID)
	assert.False(t, tr.Has(Actions, only))
}

func TestTracker_UnknownCollection(t *testing.T) {
	tr := newTracker(memory.NewStore())
	_, err := tr.Add(context.Background(), Collection("minutes"))
	assert.ErrorIs(t, err, core.ErrUnknownCollection)
}

func TestTracker_SaveFailureKeepsEdit(t *testing.T) {
	ctx := context.Background()
	tr := newTracker(memory.NewReadOnlyStore(nil))

	err := tr.SetNotes(ctx, "draft")
	assert.ErrorIs(t, err, core.ErrReadOnly)
	assert.Equal(t, "draft", tr.Session().Notes)
}

func TestTracker_Reset(t *testing.T) {
	ctx := context.Background()

	setup := func(t *testing.T) (*Tracker, *memory.Store) {
		store := memory.NewStore()
		tr := newTracker(store)
		require.NoError(t, tr.SetNotes(ctx, "keep me"))
		_, err := tr.Add(ctx, Agenda)
		require.NoError(t, err)
		return tr, store
	}

	t.Run("Declined Changes Nothing", func(t *testing.T) {
		tr, store := setup(t)
		before := tr.Session()
		raw, _ := store.Get(ctx, DefaultKey)

		var asked string
		ok, err := tr.Reset(ctx, ConfirmFunc(func(q string) (bool, error) {
			asked = q
			return false, nil
		}))
		require.NoError(t, err)
		assert.False(t, ok)
		assert.Equal(t, ResetQuestion, asked)
		assert.Equal(t, before, tr.Session())

		after, err := store.Get(ctx, DefaultKey)
		require.NoError(t, err)
		assert.Equal(t, raw, after)
	})

	t.Run("Confirmed Replaces Record And State", func(t *testing.T) {
		tr, store := setup(t)

		ok, err := tr.Reset(ctx, Always(true))
		require.NoError(t, err)
		assert.True(t, ok)

		s := tr.Session()
		assert.Equal(t, "", s.Notes)
		assert.Len(t, s.AgendaItems, 1)
		assert.Equal(t, core.SeedTimeAlloc, s.AgendaItems[0].TimeAlloc)
		assert.Equal(t, "2026-10-18", s.MeetingInfo.Date)

		other := newTracker(store)
		require.True(t, other.Load(ctx), "the fresh session is stored")
		assert.Equal(t, s, other.Session())
	})

	t.Run("Confirmer Error Aborts", func(t *testing.T) {
		tr, store := setup(t)
		ok, err := tr.Reset(ctx, ConfirmFunc(func(string) (bool, error) {
			return false, errors.New("no tty")
		}))
		assert.Error(t, err)
		assert.False(t, ok)
		_, err = store.Get(ctx, DefaultKey)
		assert.NoError(t, err)
	})
}

// TestTracker_DefaultRowsEditableAcrossProcesses opens the same fs store from two trackers,
// the way consecutive CLI invocations do: rows shown by one must be editable by the next.
func TestTracker_DefaultRowsEditableAcrossProcesses(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	open := func() *Tracker {
		store := fs.NewStore(fs.Config{Path: dir})
		require.NoError(t, store.Initialize(ctx))
		tr := newTracker(store)
		tr.Load(ctx)
		return tr
	}

	shown := open().Session()
	next := open()
	require.NoError(t, next.Update(ctx, Agenda, shown.AgendaItems[0].ID, "topic", "Intro"))
	assert.Equal(t, "Intro", open().Session().AgendaItems[0].Topic)

	ok, err := next.Reset(ctx, Always(true))
	require.NoError(t, err)
	require.True(t, ok)
	cleared := next.Session()

	after := open().Session()
	assert.Equal(t, cleared.Todos[0].ID, after.Todos[0].ID)
	assert.Equal(t, cleared.AgendaItems[0].ID, after.AgendaItems[0].ID)
	assert.Equal(t, "", after.AgendaItems[0].Topic)
}

func TestTracker_LoadReadOnlyEmptyStore(t *testing.T) {
	ctx := context.Background()
	tr := newTracker(memory.NewReadOnlyStore(nil))

	assert.False(t, tr.Load(ctx))
	assert.Len(t, tr.Session().AgendaItems, 1)
	assert.Zero(t, tr.State().(TrackerState).Saves)
}

func TestTracker_AddWithFields(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	tr := newTracker(store)
	tr.Load(ctx)

	id, err := tr.Add(ctx, Todos, Field{"task", "Book room"}, Field{"status", "done"})
	require.NoError(t, err)
	s := tr.Session()
	require.Len(t, s.Todos, 2)
	assert.Equal(t, id, s.Todos[1].ID)
	assert.Equal(t, "Book room", s.Todos[1].Task)
	assert.Equal(t, core.StatusDone, s.Todos[1].Status)

	raw, err := store.Get(ctx, DefaultKey)
	require.NoError(t, err)
	for name, fields := range map[string][]Field{
		"Invalid Value": {{"task", "x"}, {"status", "bogus"}},
		"Unknown Field": {{"color", "red"}},
	} {
		t.Run(name, func(t *testing.T) {
			_, err := tr.Add(ctx, Todos, fields...)
			assert.Error(t, err)
			assert.Len(t, tr.Session().Todos, 2, "nothing added")
			after, err := store.Get(ctx, DefaultKey)
			require.NoError(t, err)
			assert.Equal(t, raw, after, "nothing saved")
		})
	}
}

func TestTracker_Reload(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	a := newTracker(store)
	b := newTracker(store)

	require.NoError(t, a.SetNotes(ctx, "from a"))
	require.True(t, b.Reload(ctx))
	assert.Equal(t, "from a", b.Session().Notes)

	// Last writer wins: b overwrites a's record wholesale.
	require.NoError(t, b.SetMeetingField(ctx, "location", "Room 4"))
	require.True(t, a.Reload(ctx))
	assert.Equal(t, "Room 4", a.Session().MeetingInfo.Location)

	require.NoError(t, store.Delete(ctx, DefaultKey))
	require.True(t, a.Reload(ctx))
	assert.Equal(t, "", a.Session().Notes)
}

func TestParseCollection(t *testing.T) {
	c, err := ParseCollection("dailyActivities")
	require.NoError(t, err)
	assert.Equal(t, Activities, c)

	_, err = ParseCollection("minutes")
	assert.ErrorIs(t, err, core.ErrUnknownCollection)
}
