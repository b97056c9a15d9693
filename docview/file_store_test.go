package docview

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "docview.json")
	store := NewFileStore(path)

	id := NewID()
	doc := []byte(`{"_id":"` + id + `","id":1,"title":"Hello"}`)

	require.NoError(t, store.Put(ctx, CollectionNews, id, doc))

	got, err := store.Get(ctx, CollectionNews, id)
	require.NoError(t, err)
	assert.JSONEq(t, string(doc), string(got))

	docs, err := store.List(ctx, CollectionNews)
	require.NoError(t, err)
	assert.Len(t, docs, 1)

	require.NoError(t, store.Delete(ctx, CollectionNews, id))
	_, err = store.Get(ctx, CollectionNews, id)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFileStoreMissingDocument(t *testing.T) {
	ctx := context.Background()
	store := NewFileStore(filepath.Join(t.TempDir(), "docview.json"))

	_, err := store.Get(ctx, CollectionPodcasts, NewID())
	assert.ErrorIs(t, err, ErrNotFound)

	err = store.Delete(ctx, CollectionPodcasts, NewID())
	assert.ErrorIs(t, err, ErrNotFound)

	docs, err := store.List(ctx, CollectionPodcasts)
	require.NoError(t, err)
	assert.Empty(t, docs)
}

func TestFileStorePersistsAcrossInstances(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "docview.json")

	id := NewID()
	first := NewFileStore(path)
	require.NoError(t, first.Put(ctx, CollectionMusic, id, []byte(`{"id":9}`)))

	// A fresh instance re-reads the file from disk.
	second := NewFileStore(path)
	got, err := second.Get(ctx, CollectionMusic, id)
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":9}`, string(got))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(raw), id)
}
