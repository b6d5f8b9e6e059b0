package fs

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/agenda/pkg/core"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s := NewStore(Config{Path: filepath.Join(t.TempDir(), "store")})
	require.NoError(t, s.Initialize(context.Background()))
	return s
}

func TestStore_CRUD(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	_, err := s.Get(ctx, "meeting-agenda-tracker")
	assert.ErrorIs(t, err, core.ErrNotFound)

	require.NoError(t, s.Put(ctx, "meeting-agenda-tracker", []byte(`{"notes":"hi"}`)))

	data, err := s.Get(ctx, "meeting-agenda-tracker")
	require.NoError(t, err)
	assert.JSONEq(t, `{"notes":"hi"}`, string(data))

	_, err = os.Stat(filepath.Join(s.Path, "meeting-agenda-tracker.json"))
	assert.NoError(t, err, "record should live in <key>.json")

	require.NoError(t, s.Delete(ctx, "meeting-agenda-tracker"))
	require.NoError(t, s.Delete(ctx, "meeting-agenda-tracker"), "second delete is a no-op")

	_, err = s.Get(ctx, "meeting-agenda-tracker")
	assert.ErrorIs(t, err, core.ErrNotFound)

	st := s.State().(StoreState)
	assert.Equal(t, 1, st.Writes)
	assert.NotNil(t, st.LastWrite)
}

func TestStore_InvalidKeys(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	for _, key := range []string{"", "../escape", "a/b", ".hidden", TempFilePrefix + "x"} {
		err := s.Put(ctx, key, []byte("{}"))
		assert.Error(t, err, "key %q", key)
	}
}

func TestStore_ReadOnly(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "k.json"), []byte("{}"), 0644))

	s := NewStore(Config{Path: dir, ReadOnly: true})
	require.NoError(t, s.Initialize(ctx))

	data, err := s.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "{}", string(data))

	assert.True(t, errors.Is(s.Put(ctx, "k", []byte("[]")), core.ErrReadOnly))
	assert.True(t, errors.Is(s.Delete(ctx, "k"), core.ErrReadOnly))
}

func TestStore_MustExist(t *testing.T) {
	s := NewStore(Config{Path: filepath.Join(t.TempDir(), "nope"), MustExist: true})
	assert.Error(t, s.Initialize(context.Background()))
}

func TestKeyFromPath(t *testing.T) {
	key, ok := keyFromPath("/tmp/x/meeting-agenda-tracker.json")
	assert.True(t, ok)
	assert.Equal(t, "meeting-agenda-tracker", key)

	_, ok = keyFromPath("/tmp/x/" + TempFilePrefix + "123")
	assert.False(t, ok)
	_, ok = keyFromPath("/tmp/x/notes.txt")
	assert.False(t, ok)
}
