package docview

import (
	"context"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"
)

// Projector maps relational entities into the document view. Upsert and
// Remove locate the existing document by the relational id embedded in
// its "id" field, so projections stay stable across updates. Projection
// failures are logged, not surfaced: the system of record has already
// committed.
type Projector struct {
	store Store
	log   zerolog.Logger
}

func NewProjector(store Store, log zerolog.Logger) *Projector {
	return &Projector{store: store, log: log}
}

// Store exposes the underlying view store for read-only handlers.
func (p *Projector) Store() Store {
	return p.store
}

func (p *Projector) Upsert(ctx context.Context, collection string, rid uint, entity any) {
	raw, err := json.Marshal(entity)
	if err != nil {
		p.log.Error().Err(err).Str("collection", collection).Uint("rid", rid).Msg("docview: marshal entity")
		return
	}

	var doc map[string]any
	if err := json.Unmarshal(raw, &doc); err != nil {
		p.log.Error().Err(err).Str("collection", collection).Uint("rid", rid).Msg("docview: decode entity")
		return
	}

	id, err := p.findDocID(ctx, collection, rid)
	if err != nil {
		p.log.Error().Err(err).Str("collection", collection).Uint("rid", rid).Msg("docview: lookup document")
		return
	}
	if id == "" {
		id = NewID()
	}
	doc["_id"] = id

	raw, err = json.Marshal(doc)
	if err != nil {
		p.log.Error().Err(err).Str("collection", collection).Uint("rid", rid).Msg("docview: marshal document")
		return
	}
	if err := p.store.Put(ctx, collection, id, raw); err != nil {
		p.log.Error().Err(err).Str("collection", collection).Uint("rid", rid).Msg("docview: put document")
	}
}

func (p *Projector) Remove(ctx context.Context, collection string, rid uint) {
	id, err := p.findDocID(ctx, collection, rid)
	if err != nil {
		p.log.Error().Err(err).Str("collection", collection).Uint("rid", rid).Msg("docview: lookup document")
		return
	}
	if id == "" {
		return
	}
	if err := p.store.Delete(ctx, collection, id); err != nil {
		p.log.Error().Err(err).Str("collection", collection).Uint("rid", rid).Msg("docview: delete document")
	}
}

// findDocID scans the collection for the document whose "id" field holds
// the relational id. Collections are small (one radio station's content),
// so a linear scan is fine.
func (p *Projector) findDocID(ctx context.Context, collection string, rid uint) (string, error) {
	docs, err := p.store.List(ctx, collection)
	if err != nil {
		return "", err
	}
	for id, raw := range docs {
		var doc struct {
			ID uint `json:"id"`
		}
		if err := json.Unmarshal(raw, &doc); err != nil {
			continue
		}
		if doc.ID == rid {
			return id, nil
		}
	}
	return "", nil
}
