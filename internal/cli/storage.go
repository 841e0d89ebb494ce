package cli

import (
	"context"
	"fmt"

	"catalog/internal/config"
	"catalog/internal/database"
	"catalog/internal/repositories"
	"catalog/internal/seed"

	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

// storage bundles the repositories for the configured driver.
type storage struct {
	products repositories.ProductRepository
	users    repositories.UserRepository
	db       *gorm.DB
}

// openStorage opens the configured backend. Memory storage starts with the demo
// user and products; relational storage is migrated when migrate is set.
func openStorage(ctx context.Context, cfg *config.Config, logger zerolog.Logger, migrate bool) (*storage, error) {
	if cfg.Database.Driver == config.DriverMemory {
		s := &storage{
			products: repositories.NewMemoryProductRepository(),
			users:    repositories.NewMemoryUserRepository(),
		}
		_, err := seed.Demo(ctx, s.users, s.products, seed.Options{
			Email:    cfg.Seed.Email,
			Name:     cfg.Seed.Name,
			Password: cfg.Seed.Password,
			Products: true,
		}, logger)
		if err != nil {
			return nil, fmt.Errorf("failed to seed memory storage: %w", err)
		}
		logger.Warn().Msg("using in-memory storage, data is lost on exit")
		return s, nil
	}

	db, err := database.Open(cfg.Database, logger)
	if err != nil {
		return nil, err
	}
	if migrate {
		if err := database.Migrate(db); err != nil {
			_ = database.Close(db)
			return nil, err
		}
		logger.Info().Msg("database schema migrated")
	}

	return &storage{
		products: repositories.NewGORMProductRepository(db, logger),
		users:    repositories.NewGORMUserRepository(db, logger),
		db:       db,
	}, nil
}

func (s *storage) Close() error {
	if s.db == nil {
		return nil
	}
	return database.Close(s.db)
}
