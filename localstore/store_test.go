package localstore

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "slots.db"))
	require.NoError(t, err)
	return s
}

func TestSetGetRoundTrip(t *testing.T) {
	s := openTestStore(t)

	require.NoError(t, s.SetItem("guestCart_v2", `[{"productId":"p1"}]`))

	v, ok, err := s.GetItem("guestCart_v2")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `[{"productId":"p1"}]`, v)
}

func TestGetMissingKey(t *testing.T) {
	s := openTestStore(t)

	_, ok, err := s.GetItem("nope")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSetOverwrites(t *testing.T) {
	s := openTestStore(t)
	require.NoError(t, s.SetItem("k", "one"))
	require.NoError(t, s.SetItem("k", "two"))

	v, ok, err := s.GetItem("k")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "two", v)
}

func TestRemoveItem(t *testing.T) {
	s := openTestStore(t)
	require.NoError(t, s.SetItem("k", "v"))

	require.NoError(t, s.RemoveItem("k"))

	_, ok, err := s.GetItem("k")
	require.NoError(t, err)
	assert.False(t, ok)

	// Removing a missing key is not an error.
	require.NoError(t, s.RemoveItem("k"))
}

func TestValuesSurviveReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "slots.db")
	s, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, s.SetItem("k", "persisted"))

	reopened, err := Open(path)
	require.NoError(t, err)
	v, ok, err := reopened.GetItem("k")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "persisted", v)
}
