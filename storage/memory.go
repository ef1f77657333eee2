package storage

import (
	"context"
	"sync"
)

// MemStore holds the snapshot in memory. It is used in tests and by
// callers that want the cache engine without durability.
type MemStore struct {
	mu    sync.Mutex
	data  []byte
	saves int
}

// NewMemStore creates an empty in-memory snapshot store.
func NewMemStore() *MemStore {
	return &MemStore{}
}

// Load returns the last saved snapshot.
func (s *MemStore) Load(ctx context.Context) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.data == nil {
		return nil, ErrNotFound
	}
	out := make([]byte, len(s.data))
	copy(out, s.data)
	return out, nil
}

// Save replaces the stored snapshot.
func (s *MemStore) Save(ctx context.Context, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.data = make([]byte, len(data))
	copy(s.data, data)
	s.saves++
	return nil
}

// Name identifies the backend for logging.
func (s *MemStore) Name() string {
	return "memory"
}

// SaveCount returns how many saves have completed.
func (s *MemStore) SaveCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saves
}

// Verify MemStore implements Store
var _ Store = (*MemStore)(nil)
