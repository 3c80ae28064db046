package state

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStore_LookupUnknownPath_NotFound(t *testing.T) {
	store, err := NewStore(":memory:")
	require.NoError(t, err)
	defer func() { _ = store.Close() }()

	_, _, ok, err := store.Lookup(context.Background(), "/content/posts/a.md")
	require.NoError(t, err)
	require.False(t, ok)
}

func TestStore_RecordThenLookup_RoundTrips(t *testing.T) {
	store, err := NewStore(":memory:")
	require.NoError(t, err)
	defer func() { _ = store.Close() }()

	ctx := context.Background()
	require.NoError(t, store.Record(ctx, "/content/posts/a.md", "fp1", "/out/a/index.html"))

	fp, out, ok, err := store.Lookup(ctx, "/content/posts/a.md")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "fp1", fp)
	require.Equal(t, "/out/a/index.html", out)
}

func TestStore_Record_UpsertsExistingPath(t *testing.T) {
	store, err := NewStore(":memory:")
	require.NoError(t, err)
	defer func() { _ = store.Close() }()

	ctx := context.Background()
	require.NoError(t, store.Record(ctx, "/content/posts/a.md", "fp1", "/out/a/index.html"))
	require.NoError(t, store.Record(ctx, "/content/posts/a.md", "fp2", "/out/a/index.html"))

	fp, _, ok, err := store.Lookup(ctx, "/content/posts/a.md")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "fp2", fp)
}

func TestStore_Forget_RemovesState(t *testing.T) {
	store, err := NewStore(":memory:")
	require.NoError(t, err)
	defer func() { _ = store.Close() }()

	ctx := context.Background()
	require.NoError(t, store.Record(ctx, "/content/posts/a.md", "fp1", "/out/a/index.html"))
	require.NoError(t, store.Forget(ctx, "/content/posts/a.md"))

	_, _, ok, err := store.Lookup(ctx, "/content/posts/a.md")
	require.NoError(t, err)
	require.False(t, ok)
}

func TestStore_FileBacked_PersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.db")
	ctx := context.Background()

	store, err := NewStore(path)
	require.NoError(t, err)
	require.NoError(t, store.Record(ctx, "/content/posts/a.md", "fp1", "/out/a/index.html"))
	require.NoError(t, store.Close())

	reopened, err := NewStore(path)
	require.NoError(t, err)
	defer func() { _ = reopened.Close() }()

	fp, _, ok, err := reopened.Lookup(ctx, "/content/posts/a.md")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "fp1", fp)
}
