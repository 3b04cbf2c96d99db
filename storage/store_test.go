package storage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := NewStore(filepath.Join(t.TempDir(), "nested", "cache.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func sampleInfo(key string) SchemeInfo {
	return SchemeInfo{
		Key:    key,
		Source: "colors",
		Inputs: []string{"#808080", "#ff0000"},
		Colors: []string{"#111111", "#222222"},
		Score:  0.25,
	}
}

func TestPutAndGetByKey(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	saved, err := store.Put(ctx, sampleInfo("k1"))
	require.NoError(t, err)
	assert.NotEmpty(t, saved.ID)
	assert.False(t, saved.CreatedAt.IsZero())

	got, err := store.GetByKey(ctx, "k1")
	require.NoError(t, err)
	assert.Equal(t, saved.ID, got.ID)
	assert.Equal(t, "colors", got.Source)
	assert.Equal(t, []string{"#808080", "#ff0000"}, got.Inputs)
	assert.Equal(t, []string{"#111111", "#222222"}, got.Colors)
	assert.False(t, got.Full)
	assert.InDelta(t, 0.25, got.Score, 1e-12)
}

func TestGetByKeyMissing(t *testing.T) {
	store := newTestStore(t)

	_, err := store.GetByKey(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestPutReplacesSameKey(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	first, err := store.Put(ctx, sampleInfo("k1"))
	require.NoError(t, err)

	updated := sampleInfo("k1")
	updated.Colors = []string{"#333333"}
	updated.Full = true
	second, err := store.Put(ctx, updated)
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)

	all, err := store.List(ctx, 0)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, []string{"#333333"}, all[0].Colors)
	assert.True(t, all[0].Full)
}

func TestPutRequiresKey(t *testing.T) {
	store := newTestStore(t)

	_, err := store.Put(context.Background(), SchemeInfo{})
	assert.Error(t, err)
}

func TestPutNilSlices(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	_, err := store.Put(ctx, SchemeInfo{Key: "empty"})
	require.NoError(t, err)

	got, err := store.GetByKey(ctx, "empty")
	require.NoError(t, err)
	assert.Empty(t, got.Inputs)
	assert.Empty(t, got.Colors)
}

func TestLatestAndList(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	_, err := store.Latest(ctx)
	assert.ErrorIs(t, err, ErrNotFound)

	for _, key := range []string{"a", "b", "c"} {
		_, err := store.Put(ctx, sampleInfo(key))
		require.NoError(t, err)
	}

	latest, err := store.Latest(ctx)
	require.NoError(t, err)
	assert.Equal(t, "c", latest.Key)

	all, err := store.List(ctx, 0)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "c", all[0].Key)
	assert.Equal(t, "a", all[2].Key)

	limited, err := store.List(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, limited, 2)

	// Storing an existing key again makes it the latest
	_, err = store.Put(ctx, sampleInfo("a"))
	require.NoError(t, err)
	latest, err = store.Latest(ctx)
	require.NoError(t, err)
	assert.Equal(t, "a", latest.Key)
}

func TestGetByIDPrefix(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	saved, err := store.Put(ctx, sampleInfo("k1"))
	require.NoError(t, err)

	got, err := store.GetByID(ctx, saved.ID)
	require.NoError(t, err)
	assert.Equal(t, "k1", got.Key)

	got, err = store.GetByID(ctx, saved.ID[:8])
	require.NoError(t, err)
	assert.Equal(t, saved.ID, got.ID)

	_, err = store.GetByID(ctx, "")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = store.GetByID(ctx, "zzzz")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGetByIDAmbiguous(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	a := sampleInfo("a")
	a.ID = "abc-1"
	b := sampleInfo("b")
	b.ID = "abc-2"
	_, err := store.Put(ctx, a)
	require.NoError(t, err)
	_, err = store.Put(ctx, b)
	require.NoError(t, err)

	_, err = store.GetByID(ctx, "abc")
	assert.ErrorIs(t, err, ErrAmbiguousID)

	got, err := store.GetByID(ctx, "abc-2")
	require.NoError(t, err)
	assert.Equal(t, "b", got.Key)
}

func TestGetByIDTreatsWildcardsLiterally(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	for _, id := range []string{"ab_1", "abx1", "a%c", "abc"} {
		info := sampleInfo("key-" + id)
		info.ID = id
		_, err := store.Put(ctx, info)
		require.NoError(t, err)
	}

	tests := []struct {
		prefix string
		want   string
	}{
		{"ab_", "ab_1"},
		{"abx", "abx1"},
		{"a%", "a%c"},
	}
	for _, tt := range tests {
		t.Run(tt.prefix, func(t *testing.T) {
			got, err := store.GetByID(ctx, tt.prefix)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.ID)
		})
	}

	_, err := store.GetByID(ctx, "a_")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteAndClear(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	saved, err := store.Put(ctx, sampleInfo("a"))
	require.NoError(t, err)
	_, err = store.Put(ctx, sampleInfo("b"))
	require.NoError(t, err)

	require.NoError(t, store.Delete(ctx, saved.ID))
	assert.ErrorIs(t, store.Delete(ctx, saved.ID), ErrNotFound)

	_, err = store.GetByKey(ctx, "a")
	assert.ErrorIs(t, err, ErrNotFound)

	removed, err := store.Clear(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), removed)

	all, err := store.List(ctx, 0)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestReopenKeepsData(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "cache.db")
	ctx := context.Background()

	store, err := NewStore(dbPath)
	require.NoError(t, err)
	_, err = store.Put(ctx, sampleInfo("persisted"))
	require.NoError(t, err)
	require.NoError(t, store.Close())

	reopened, err := NewStore(dbPath)
	require.NoError(t, err)
	defer reopened.Close()

	got, err := reopened.GetByKey(ctx, "persisted")
	require.NoError(t, err)
	assert.Equal(t, "colors", got.Source)
}
