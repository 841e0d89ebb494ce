package seed

import (
	"context"
	"fmt"
	"time"

	"catalog/internal/models"
	"catalog/internal/repositories"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"
)

// Options controls what Demo creates.
type Options struct {
	Email    string
	Name     string
	Password string
	// Products adds the sample products when the catalog is empty.
	Products bool
}

// Result reports what Demo created.
type Result struct {
	User            *models.User
	UserCreated     bool
	ProductsCreated int
}

// Demo creates the demo user if no user has its email, and optionally the sample products.
// Running it again is a no-op.
func Demo(ctx context.Context, users repositories.UserRepository, products repositories.ProductRepository, opts Options, logger zerolog.Logger) (*Result, error) {
	if opts.Email == "" || opts.Password == "" {
		return nil, fmt.Errorf("seed email and password are required")
	}

	result := &Result{}

	user, err := users.GetByEmail(ctx, opts.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(opts.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		user = &models.User{
			Email:        opts.Email,
			Name:         opts.Name,
			PasswordHash: string(hashedPassword),
			CreatedAt:    models.Timestamp(time.Now()),
		}
		if err := users.Create(ctx, user); err != nil {
			return nil, err
		}
		result.UserCreated = true
		logger.Info().Int64("user_id", user.ID).Str("email", user.Email).Msg("seeded user")
	}
	result.User = user

	if !opts.Products || products == nil {
		return result, nil
	}

	existing, err := products.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	if len(existing) > 0 {
		logger.Debug().Int("count", len(existing)).Msg("catalog not empty, skipping sample products")
		return result, nil
	}

	now := models.Timestamp(time.Now())
	for _, input := range SampleProducts() {
		product := input.NewProduct(now)
		if err := products.Create(ctx, product); err != nil {
			return nil, err
		}
		result.ProductsCreated++
		logger.Info().Int64("product_id", product.ID).Str("name", product.Name).Msg("seeded product")
	}

	return result, nil
}

// SampleProducts returns the demo catalog.
func SampleProducts() []models.CreateProductInput {
	desc := func(s string) *string { return &s }
	return []models.CreateProductInput{
		{Name: "Laptop", Description: desc("High performance laptop"), Price: models.MustPrice("1200.00"), StockQuantity: 10},
		{Name: "Keyboard", Description: desc("Mechanical keyboard"), Price: models.MustPrice("75.00"), StockQuantity: 25},
		{Name: "Mouse", Description: desc("Ergonomic wireless mouse"), Price: models.MustPrice("25.00"), StockQuantity: 50},
		{Name: "USB-C Cable", Price: models.MustPrice("9.99"), StockQuantity: 0},
	}
}
