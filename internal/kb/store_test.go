package kb

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "knowledge.db")

	built := buildTable(t, 2, 2)

	store, err := OpenStore(path)
	require.NoError(t, err)
	defer store.Close()

	require.NoError(t, store.Save(context.Background(), built))

	loaded, err := store.Load(context.Background())
	require.NoError(t, err)

	assert.Equal(t, built.Dimension(), loaded.Dimension())
	assert.Equal(t, built.MaxDepth(), loaded.MaxDepth())
	assert.Equal(t, built.Len(), loaded.Len())
	assert.Equal(t, built.CornerLen(), loaded.CornerLen())

	for s, want := range built.states {
		got, ok := loaded.Lookup(s)
		require.True(t, ok, "state %s lost in round trip", s.String())
		assert.Equal(t, int(want), got)
	}
	for pattern, want := range built.corners {
		got, ok := loaded.LookupCorner(pattern)
		require.True(t, ok, "pattern lost in round trip")
		assert.Equal(t, int(want), got)
	}
}

func TestStoreSaveReplacesPrevious(t *testing.T) {
	path := filepath.Join(t.TempDir(), "knowledge.db")

	store, err := OpenStore(path)
	require.NoError(t, err)
	defer store.Close()

	first := buildTable(t, 2, 2)
	require.NoError(t, store.Save(context.Background(), first))

	second := buildTable(t, 2, 1)
	require.NoError(t, store.Save(context.Background(), second))

	loaded, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, second.Len(), loaded.Len(), "save must replace, not merge")
	assert.Equal(t, 1, loaded.MaxDepth())
}

func TestStoreLoadEmptyDatabase(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.db")

	store, err := OpenStore(path)
	require.NoError(t, err)
	defer store.Close()

	_, err = store.Load(context.Background())
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestStoreLoadValidatesStates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "corrupt.db")

	store, err := OpenStore(path)
	require.NoError(t, err)
	defer store.Close()

	built := buildTable(t, 2, 1)
	require.NoError(t, store.Save(context.Background(), built))

	// Corrupt one state entry behind the store's back.
	_, err = store.db.Exec("UPDATE states SET state = 'XXXX' WHERE rowid = (SELECT rowid FROM states WHERE distance = 1 LIMIT 1)")
	require.NoError(t, err)

	_, err = store.Load(context.Background())
	assert.ErrorIs(t, err, ErrUnavailable)
}
