package mockapi

import (
	"context"
	"sync"

	"go-hris-admin/internal/domain"
	mockapierrors "go-hris-admin/internal/mockapi/errors"
)

type memoryStore struct {
	mu   sync.RWMutex
	data map[domain.Kind][]Document
}

// NewMemoryStore keeps every collection in process memory. New ids are one
// more than the highest id in the collection.
func NewMemoryStore() Store {
	data := make(map[domain.Kind][]Document, len(domain.Kinds))
	for _, k := range domain.Kinds {
		data[k] = []Document{}
	}
	return &memoryStore{data: data}
}

func (s *memoryStore) List(_ context.Context, resource domain.Kind) ([]Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	docs, ok := s.data[resource]
	if !ok {
		return nil, mockapierrors.ErrUnknownResource
	}
	out := make([]Document, len(docs))
	for i, d := range docs {
		out[i] = cloneDoc(d)
	}
	return out, nil
}

func (s *memoryStore) Get(_ context.Context, resource domain.Kind, id int64) (Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	docs, ok := s.data[resource]
	if !ok {
		return nil, mockapierrors.ErrUnknownResource
	}
	if i := indexOf(docs, id); i >= 0 {
		return cloneDoc(docs[i]), nil
	}
	return nil, mockapierrors.ErrRecordNotFound
}

func (s *memoryStore) Create(_ context.Context, resource domain.Kind, doc Document) (Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	docs, ok := s.data[resource]
	if !ok {
		return nil, mockapierrors.ErrUnknownResource
	}

	stored := cloneDoc(doc)
	stored["id"] = genID(docs)
	s.data[resource] = append(docs, stored)
	return cloneDoc(stored), nil
}

func (s *memoryStore) Update(_ context.Context, resource domain.Kind, id int64, doc Document) (Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	docs, ok := s.data[resource]
	if !ok {
		return nil, mockapierrors.ErrUnknownResource
	}
	i := indexOf(docs, id)
	if i < 0 {
		return nil, mockapierrors.ErrRecordNotFound
	}

	stored := cloneDoc(doc)
	stored["id"] = id
	docs[i] = stored
	return cloneDoc(stored), nil
}

func (s *memoryStore) Delete(_ context.Context, resource domain.Kind, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	docs, ok := s.data[resource]
	if !ok {
		return mockapierrors.ErrUnknownResource
	}
	if i := indexOf(docs, id); i >= 0 {
		s.data[resource] = append(docs[:i:i], docs[i+1:]...)
	}
	return nil
}

func indexOf(docs []Document, id int64) int {
	for i, d := range docs {
		if docID(d) == id {
			return i
		}
	}
	return -1
}

func genID(docs []Document) int64 {
	var max int64
	for _, d := range docs {
		if id := docID(d); id > max {
			max = id
		}
	}
	return max + 1
}
