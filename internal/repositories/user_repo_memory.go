package repositories

import (
	"context"
	"fmt"
	"sync"

	"catalog/internal/models"
)

// MemoryUserRepository is an in-memory implementation of UserRepository.
type MemoryUserRepository struct {
	users  map[string]models.User
	nextID int64
	mu     sync.RWMutex
}

// NewMemoryUserRepository creates a new instance of MemoryUserRepository.
func NewMemoryUserRepository() *MemoryUserRepository {
	return &MemoryUserRepository{
		users:  make(map[string]models.User),
		nextID: 1,
	}
}

// Create adds a user. Emails are unique.
func (r *MemoryUserRepository) Create(_ context.Context, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[user.Email]; ok {
		return models.NewPersistenceError("create user", fmt.Errorf("email %q already exists", user.Email))
	}
	user.ID = r.nextID
	r.nextID++
	r.users[user.Email] = *user
	return nil
}

// GetByEmail returns the user with the exact email, or nil.
func (r *MemoryUserRepository) GetByEmail(_ context.Context, email string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[email]
	if !ok {
		return nil, nil
	}
	return &user, nil
}
