package session

import (
	"context"
	"registrar/pkg/domain"
	"sync"
	"time"
)

// MemoryStore keeps sessions in process memory. It is used when no Redis
// server is configured and only suits a single instance.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]domain.Session
	now      func() time.Time
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{sessions: make(map[string]domain.Session), now: time.Now}
}

func (m *MemoryStore) Create(_ context.Context, s domain.Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.sessions[s.ID] = s
	m.evictExpired()

	return nil
}

func (m *MemoryStore) Get(_ context.Context, ID string) (*domain.Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	s, ok := m.sessions[ID]
	if !ok || s.Expired(m.now()) {
		return nil, nil //nolint: nilnil
	}

	return &s, nil
}

func (m *MemoryStore) Delete(_ context.Context, ID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.sessions, ID)

	return nil
}

// evictExpired drops expired sessions. Callers must hold the write lock.
func (m *MemoryStore) evictExpired() {
	now := m.now()
	for id, s := range m.sessions {
		if s.Expired(now) {
			delete(m.sessions, id)
		}
	}
}
