package session

import (
	"context"
	"sync"
)

// MemoryStore keeps session pointers in-process. Used by tests and
// credential-less development runs.
type MemoryStore struct {
	mu       sync.RWMutex
	pointers map[string]string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{pointers: make(map[string]string)}
}

func (s *MemoryStore) Get(ctx context.Context, sid string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	userID, ok := s.pointers[sid]
	if !ok {
		return "", ErrNoSession
	}
	return userID, nil
}

func (s *MemoryStore) Set(ctx context.Context, sid, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.pointers[sid] = userID
	return nil
}

func (s *MemoryStore) Delete(ctx context.Context, sid string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.pointers, sid)
	return nil
}
