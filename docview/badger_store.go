package docview

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dgraph-io/badger/v4"
)

// BadgerStore keeps the document view in BadgerDB, durable across
// restarts. Keys are "collection:id".
type BadgerStore struct {
	db *badger.DB
}

func OpenBadgerStore(path string) (*BadgerStore, error) {
	opts := badger.DefaultOptions(path).WithLogger(nil)
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open badger: %w", err)
	}
	return &BadgerStore{db: db}, nil
}

func key(collection, id string) []byte {
	return []byte(collection + ":" + id)
}

func (s *BadgerStore) Put(ctx context.Context, collection, id string, doc []byte) error {
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(key(collection, id), doc)
	})
}

func (s *BadgerStore) Get(ctx context.Context, collection, id string) ([]byte, error) {
	var doc []byte
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(key(collection, id))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return ErrNotFound
		}
		if err != nil {
			return err
		}
		doc, err = item.ValueCopy(nil)
		return err
	})
	if err != nil {
		return nil, err
	}
	return doc, nil
}

func (s *BadgerStore) Delete(ctx context.Context, collection, id string) error {
	return s.db.Update(func(txn *badger.Txn) error {
		k := key(collection, id)
		if _, err := txn.Get(k); errors.Is(err, badger.ErrKeyNotFound) {
			return ErrNotFound
		} else if err != nil {
			return err
		}
		return txn.Delete(k)
	})
}

func (s *BadgerStore) List(ctx context.Context, collection string) (map[string][]byte, error) {
	docs := make(map[string][]byte)
	prefix := []byte(collection + ":")

	err := s.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			item := it.Item()
			id := strings.TrimPrefix(string(item.Key()), collection+":")
			doc, err := item.ValueCopy(nil)
			if err != nil {
				return err
			}
			docs[id] = doc
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return docs, nil
}

func (s *BadgerStore) Close() error {
	return s.db.Close()
}
