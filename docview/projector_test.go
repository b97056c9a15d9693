package docview

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeNews struct {
	ID    uint   `json:"id"`
	Title string `json:"title"`
}

func newTestProjector(t *testing.T) *Projector {
	t.Helper()
	store := NewFileStore(filepath.Join(t.TempDir(), "docview.json"))
	return NewProjector(store, zerolog.Nop())
}

func TestProjectorUpsertKeepsDocumentIDStable(t *testing.T) {
	ctx := context.Background()
	p := newTestProjector(t)

	p.Upsert(ctx, CollectionNews, 1, fakeNews{ID: 1, Title: "First"})

	docs, err := p.Store().List(ctx, CollectionNews)
	require.NoError(t, err)
	require.Len(t, docs, 1)

	var firstID string
	for id := range docs {
		firstID = id
	}
	assert.True(t, ValidID(firstID))

	p.Upsert(ctx, CollectionNews, 1, fakeNews{ID: 1, Title: "Updated"})

	docs, err = p.Store().List(ctx, CollectionNews)
	require.NoError(t, err)
	require.Len(t, docs, 1)

	var doc struct {
		DocID string `json:"_id"`
		Title string `json:"title"`
	}
	require.NoError(t, json.Unmarshal(docs[firstID], &doc))
	assert.Equal(t, firstID, doc.DocID)
	assert.Equal(t, "Updated", doc.Title)
}

func TestProjectorSeparatesRelationalIDs(t *testing.T) {
	ctx := context.Background()
	p := newTestProjector(t)

	p.Upsert(ctx, CollectionNews, 1, fakeNews{ID: 1, Title: "One"})
	p.Upsert(ctx, CollectionNews, 2, fakeNews{ID: 2, Title: "Two"})

	docs, err := p.Store().List(ctx, CollectionNews)
	require.NoError(t, err)
	assert.Len(t, docs, 2)
}

func TestProjectorRemove(t *testing.T) {
	ctx := context.Background()
	p := newTestProjector(t)

	p.Upsert(ctx, CollectionNews, 1, fakeNews{ID: 1, Title: "One"})
	p.Remove(ctx, CollectionNews, 1)

	docs, err := p.Store().List(ctx, CollectionNews)
	require.NoError(t, err)
	assert.Empty(t, docs)

	// Removing a never-projected entity is a no-op.
	p.Remove(ctx, CollectionNews, 42)
}
