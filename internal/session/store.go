package session

import (
	"context"
	"errors"
	"sync"
	"time"
)

// ErrNotFound is returned when no session exists for the given id
var ErrNotFound = errors.New("session not found")

// Store persists session data server-side, keyed by session id
type Store interface {
	Get(ctx context.Context, sessionID string) (Data, error)
	Save(ctx context.Context, sessionID string, data Data, ttl time.Duration) error
	Delete(ctx context.Context, sessionID string) error
}

// MemoryStore is an in-process Store used by tests and single-node
// development runs. Entries expire lazily on read.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]memoryEntry
}

type memoryEntry struct {
	data      Data
	expiresAt time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{sessions: make(map[string]memoryEntry)}
}

func (s *MemoryStore) Get(_ context.Context, sessionID string) (Data, error) {
	s.mu.RLock()
	entry, ok := s.sessions[sessionID]
	s.mu.RUnlock()

	if !ok {
		return Data{}, ErrNotFound
	}
	if !entry.expiresAt.IsZero() && time.Now().After(entry.expiresAt) {
		s.mu.Lock()
		delete(s.sessions, sessionID)
		s.mu.Unlock()
		return Data{}, ErrNotFound
	}
	return entry.data, nil
}

func (s *MemoryStore) Save(_ context.Context, sessionID string, data Data, ttl time.Duration) error {
	var expiresAt time.Time
	if ttl > 0 {
		expiresAt = time.Now().Add(ttl)
	}

	s.mu.Lock()
	s.sessions[sessionID] = memoryEntry{data: data, expiresAt: expiresAt}
	s.mu.Unlock()
	return nil
}

func (s *MemoryStore) Delete(_ context.Context, sessionID string) error {
	s.mu.Lock()
	delete(s.sessions, sessionID)
	s.mu.Unlock()
	return nil
}
