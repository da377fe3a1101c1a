package store

import (
	"context"
	"sort"
	"sync"

	"github.com/wiremaphq/wiremap/pkg/document"
)

// MemoryStore is an in-memory document store for development and testing.
// Documents are deep-copied on the way in and out, so callers can mutate
// their copies freely.
type MemoryStore struct {
	mu   sync.RWMutex
	docs map[string]*document.Document
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{docs: make(map[string]*document.Document)}
}

func (s *MemoryStore) Save(ctx context.Context, doc *document.Document) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.docs[doc.ID] = doc.Clone()
	return nil
}

func (s *MemoryStore) Load(ctx context.Context, id string) (*document.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	doc, ok := s.docs[id]
	if !ok {
		return nil, notFound(id)
	}
	return doc.Clone(), nil
}

func (s *MemoryStore) List(ctx context.Context) ([]*document.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*document.Document, 0, len(s.docs))
	for _, doc := range s.docs {
		out = append(out, doc.Clone())
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (s *MemoryStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.docs, id)
	return nil
}

func (s *MemoryStore) Close() error { return nil }

var _ Store = (*MemoryStore)(nil)
