package store

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-gated-site/models"
)

type memorySessionRepository struct {
	mu       sync.RWMutex
	sessions map[string]models.Session
	now      func() time.Time
}

func NewMemorySessionRepository() SessionRepository {
	return &memorySessionRepository{
		sessions: make(map[string]models.Session),
		now:      func() time.Time { return time.Now().UTC() },
	}
}

func (m *memorySessionRepository) CreateSession(_ context.Context, session models.Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.sessions[session.TokenHash]; ok {
		return ErrSessionAlreadyExists
	}

	session.Token = ""
	m.sessions[session.TokenHash] = session
	return nil
}

func (m *memorySessionRepository) FindSession(_ context.Context, tokenHash string) (models.Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	session, ok := m.sessions[tokenHash]
	if !ok || session.IsExpired(m.now()) {
		return models.Session{}, ErrSessionNotFound
	}
	return session, nil
}

func (m *memorySessionRepository) DeleteSession(_ context.Context, tokenHash string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.sessions, tokenHash)
	return nil
}

func (m *memorySessionRepository) DeleteExpiredSessions(_ context.Context) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	var removed int64
	for hash, session := range m.sessions {
		if session.IsExpired(now) {
			delete(m.sessions, hash)
			removed++
		}
	}
	return removed, nil
}
