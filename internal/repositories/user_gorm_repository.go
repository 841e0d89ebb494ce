package repositories

import (
	"context"
	"errors"

	"catalog/internal/models"

	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

// GORMUserRepository is a GORM implementation of UserRepository.
type GORMUserRepository struct {
	db     *gorm.DB
	logger zerolog.Logger
}

// NewGORMUserRepository creates a new instance of GORMUserRepository.
func NewGORMUserRepository(db *gorm.DB, logger zerolog.Logger) *GORMUserRepository {
	return &GORMUserRepository{
		db:     db,
		logger: logger.With().Str("repository", "user").Logger(),
	}
}

// Create creates a new user in the database.
func (r *GORMUserRepository) Create(ctx context.Context, user *models.User) error {
	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		r.logger.Error().Err(err).Msg("failed to create user")
		return models.NewPersistenceError("create user", err)
	}
	return nil
}

// GetByEmail retrieves a user by exact email match.
func (r *GORMUserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).First(&user, "email = ?", email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Error().Err(err).Msg("failed to query user by email")
		return nil, models.NewPersistenceError("get user by email", err)
	}
	return &user, nil
}
