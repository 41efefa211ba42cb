package store

import (
	"context"
	"sort"
	"sync"

	"github.com/shandysiswandi/intaker/internal/pkg/pkgerror"
	"github.com/shandysiswandi/intaker/internal/validator/entity"
)

// InMemoryStore keeps objects in process memory. A Put on an existing key
// replaces the previous object.
type InMemoryStore struct {
	mu      sync.RWMutex
	objects map[string]entity.Object
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{
		objects: make(map[string]entity.Object),
	}
}

func (s *InMemoryStore) Put(ctx context.Context, key string, body []byte, contentType string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.objects[key] = entity.Object{
		Key:         key,
		Body:        append([]byte(nil), body...),
		ContentType: contentType,
	}

	return nil
}

// Get returns the object stored under key, or pkgerror.ErrNotFound.
func (s *InMemoryStore) Get(ctx context.Context, key string) (entity.Object, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	obj, ok := s.objects[key]
	if !ok {
		return entity.Object{}, pkgerror.ErrNotFound
	}

	return obj, nil
}

// Keys returns the stored keys in lexical order.
func (s *InMemoryStore) Keys() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	keys := make([]string, 0, len(s.objects))
	for k := range s.objects {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	return keys
}
