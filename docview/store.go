// Package docview keeps a document-shaped read view of the content
// entities. The relational database is the system of record; documents
// here are written only by the Projector after a relational write
// succeeds, never by clients.
package docview

import (
	"context"
	"errors"
)

// Collections projected into the view.
const (
	CollectionNews          = "news"
	CollectionPodcasts      = "podcasts"
	CollectionEvents        = "events"
	CollectionGalleries     = "galleries"
	CollectionMusic         = "music"
	CollectionPersonalities = "personalities"
)

var ErrNotFound = errors.New("docview: document not found")

// KnownCollection reports whether name is one of the projected collections.
func KnownCollection(name string) bool {
	switch name {
	case CollectionNews, CollectionPodcasts, CollectionEvents,
		CollectionGalleries, CollectionMusic, CollectionPersonalities:
		return true
	}
	return false
}

// Store is the document view storage surface. Documents are JSON blobs
// keyed by (collection, 24-hex-char id).
type Store interface {
	Put(ctx context.Context, collection, id string, doc []byte) error
	Get(ctx context.Context, collection, id string) ([]byte, error)
	Delete(ctx context.Context, collection, id string) error
	// List returns every document in the collection, keyed by id.
	List(ctx context.Context, collection string) (map[string][]byte, error)
	Close() error
}

// Open picks the backend: Badger when badgerPath is set, otherwise the
// single-JSON-file store at filePath.
func Open(badgerPath, filePath string) (Store, error) {
	if badgerPath != "" {
		return OpenBadgerStore(badgerPath)
	}
	return NewFileStore(filePath), nil
}
