package docview

import (
	"context"
	"errors"
	"os"
	"sync"

	"github.com/goccy/go-json"
)

// FileStore backs the document view with a single JSON file, for
// deployments without a Badger path configured. The file is re-read
// before every operation and rewritten whole after mutations; a mutex
// serializes writers within the process.
type FileStore struct {
	path string
	mu   sync.Mutex
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

type fileData map[string]map[string]json.RawMessage

func (s *FileStore) load() (fileData, error) {
	raw, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return fileData{}, nil
	}
	if err != nil {
		return nil, err
	}
	if len(raw) == 0 {
		return fileData{}, nil
	}

	var data fileData
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, err
	}
	return data, nil
}

func (s *FileStore) save(data fileData) error {
	raw, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, raw, 0o644)
}

func (s *FileStore) Put(ctx context.Context, collection, id string, doc []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := s.load()
	if err != nil {
		return err
	}
	if data[collection] == nil {
		data[collection] = map[string]json.RawMessage{}
	}
	data[collection][id] = json.RawMessage(doc)
	return s.save(data)
}

func (s *FileStore) Get(ctx context.Context, collection, id string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := s.load()
	if err != nil {
		return nil, err
	}
	doc, ok := data[collection][id]
	if !ok {
		return nil, ErrNotFound
	}
	return doc, nil
}

func (s *FileStore) Delete(ctx context.Context, collection, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := s.load()
	if err != nil {
		return err
	}
	if _, ok := data[collection][id]; !ok {
		return ErrNotFound
	}
	delete(data[collection], id)
	return s.save(data)
}

func (s *FileStore) List(ctx context.Context, collection string) (map[string][]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := s.load()
	if err != nil {
		return nil, err
	}
	docs := make(map[string][]byte, len(data[collection]))
	for id, doc := range data[collection] {
		docs[id] = doc
	}
	return docs, nil
}

func (s *FileStore) Close() error {
	return nil
}
