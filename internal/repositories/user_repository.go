package repositories

import (
	"context"

	"catalog/internal/models"
)

// UserRepository defines the interface for user data access.
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	// GetByEmail returns nil when no user has the exact email.
	GetByEmail(ctx context.Context, email string) (*models.User, error)
}
