package platform

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/agenda/pkg/adapters/fs"
	"github.com/aretw0/agenda/pkg/adapters/memory"
	"github.com/aretw0/agenda/pkg/adapters/sqlite"
	"github.com/aretw0/agenda/pkg/core"
	"github.com/aretw0/agenda/pkg/tracker"
)

func clock() time.Time { return time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC) }

func TestOpen_Adapters(t *testing.T) {
	ctx := context.Background()

	for _, adapter := range []string{AdapterFS, AdapterSQLite} {
		t.Run(adapter, func(t *testing.T) {
			dir := t.TempDir()

			first, err := Open(ctx, dir, WithAdapter(adapter), WithClock(clock))
			require.NoError(t, err)
			require.NoError(t, first.SetNotes(ctx, "persisted via "+adapter))
			require.NoError(t, first.Close())

			second, err := Open(ctx, dir, WithAdapter(adapter), WithClock(clock))
			require.NoError(t, err)
			defer second.Close()
			assert.Equal(t, "persisted via "+adapter, second.Session().Notes)
		})
	}

	t.Run("fs layout", func(t *testing.T) {
		dir := t.TempDir()
		tr, err := Open(ctx, dir)
		require.NoError(t, err)
		require.NoError(t, tr.Save(ctx))
		assert.IsType(t, &fs.Store{}, tr.Store())
		assert.FileExists(t, filepath.Join(dir, tracker.DefaultKey+fs.RecordExt))
	})

	t.Run("sqlite layout", func(t *testing.T) {
		dir := t.TempDir()
		tr, err := Open(ctx, dir, WithAdapter(AdapterSQLite))
		require.NoError(t, err)
		defer tr.Close()
		assert.IsType(t, &sqlite.Store{}, tr.Store())
		assert.FileExists(t, filepath.Join(dir, sqlite.DefaultFilename))
	})

	t.Run("memory", func(t *testing.T) {
		tr, err := Open(ctx, "", WithAdapter(AdapterMemory), WithClock(clock))
		require.NoError(t, err)
		assert.Equal(t, "2026-10-18", tr.Session().MeetingInfo.Date)
	})
}

func TestOpen_Errors(t *testing.T) {
	ctx := context.Background()

	_, err := Open(ctx, t.TempDir(), WithAdapter("s3"))
	assert.ErrorContains(t, err, "unknown adapter")

	_, err = Open(ctx, "", WithAdapter(AdapterFS))
	assert.Error(t, err)

	missing := filepath.Join(t.TempDir(), "missing")
	_, err = Open(ctx, missing, WithMustExist(true))
	assert.Error(t, err)
	assert.NoDirExists(t, missing)
}

func TestOpen_InjectedStoreAndKey(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	require.NoError(t, store.Put(ctx, "standup", []byte(`{"notes":"from store"}`)))

	tr, err := Open(ctx, "", WithStore(store), WithKey("standup"))
	require.NoError(t, err)
	assert.Equal(t, "standup", tr.Key())
	assert.Equal(t, "from store", tr.Session().Notes)
}

func TestOpen_ReadOnly(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	rw, err := Open(ctx, dir)
	require.NoError(t, err)
	require.NoError(t, rw.SetNotes(ctx, "original"))

	ro, err := Open(ctx, dir, WithReadOnly(true))
	require.NoError(t, err)
	assert.Equal(t, "original", ro.Session().Notes)

	err = ro.SetNotes(ctx, "changed")
	assert.ErrorIs(t, err, core.ErrReadOnly)

	raw, err := os.ReadFile(filepath.Join(dir, tracker.DefaultKey+fs.RecordExt))
	require.NoError(t, err)
	assert.Contains(t, string(raw), "original")
}
