package store

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-gated-site/models"
)

// memoryUserRepository is an in-process [UserRepository] used for local
// runs and tests. The mutex makes check-and-insert atomic, which gives the
// same uniqueness guarantees as the database constraints.
type memoryUserRepository struct {
	mu         sync.RWMutex
	nextID     int64
	byUsername map[string]models.User
	emails     map[string]struct{}
}

func NewMemoryUserRepository() UserRepository {
	return &memoryUserRepository{
		byUsername: make(map[string]models.User),
		emails:     make(map[string]struct{}),
	}
}

func (m *memoryUserRepository) CreateUser(_ context.Context, user models.User) (models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.byUsername[user.Username]; ok {
		return models.User{}, ErrUsernameAlreadyExists
	}
	if _, ok := m.emails[user.Email]; ok {
		return models.User{}, ErrEmailAlreadyExists
	}

	m.nextID++
	stored := models.User{
		UserID:       m.nextID,
		Username:     user.Username,
		Email:        user.Email,
		PasswordHash: user.PasswordHash,
		CreatedAt:    time.Now().UTC(),
	}
	m.byUsername[stored.Username] = stored
	m.emails[stored.Email] = struct{}{}

	return stored, nil
}

func (m *memoryUserRepository) FindUserByUsername(_ context.Context, username string) (models.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	user, ok := m.byUsername[username]
	if !ok {
		return models.User{}, ErrNoUserWasFound
	}
	return user, nil
}

func (m *memoryUserRepository) UsernameExists(_ context.Context, username string) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	_, ok := m.byUsername[username]
	return ok, nil
}

func (m *memoryUserRepository) EmailExists(_ context.Context, email string) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	_, ok := m.emails[email]
	return ok, nil
}
