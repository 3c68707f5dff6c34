package store

import (
	"context"
	"sync"

	"github.com/MKhiriev/go-auth-keeper/models"
)

// memoryUserDirectory keeps records in process memory. It enforces the same
// uniqueness rules as the persistent backends and is meant for local
// development and tests.
type memoryUserDirectory struct {
	mu      sync.RWMutex
	byID    map[string]models.User
	byEmail map[string]string
}

// NewMemoryUserDirectory returns an empty in-memory [UserDirectory].
func NewMemoryUserDirectory() UserDirectory {
	return &memoryUserDirectory{
		byID:    make(map[string]models.User),
		byEmail: make(map[string]string),
	}
}

func (m *memoryUserDirectory) CreateUser(_ context.Context, user models.User) (models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.byEmail[user.Email]; ok {
		return models.User{}, ErrEmailAlreadyExists
	}
	if _, ok := m.byID[user.UserID]; ok {
		return models.User{}, ErrEmailAlreadyExists
	}

	m.byID[user.UserID] = copyUser(user)
	m.byEmail[user.Email] = user.UserID

	return user, nil
}

func (m *memoryUserDirectory) FindUserByEmail(_ context.Context, email string) (models.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	id, ok := m.byEmail[email]
	if !ok {
		return models.User{}, ErrNoUserWasFound
	}

	return copyUser(m.byID[id]), nil
}

func (m *memoryUserDirectory) FindUserByID(_ context.Context, userID string) (models.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	user, ok := m.byID[userID]
	if !ok {
		return models.User{}, ErrNoUserWasFound
	}

	return copyUser(user), nil
}

func (m *memoryUserDirectory) Ping(context.Context) error { return nil }

func (m *memoryUserDirectory) Close(context.Context) error { return nil }

// copyUser detaches the optional age pointer from the caller's copy.
func copyUser(u models.User) models.User {
	if u.Age != nil {
		age := *u.Age
		u.Age = &age
	}

	return u
}
