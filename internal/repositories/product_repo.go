package repositories

import (
	"context"

	"catalog/internal/models"
)

// ProductRepository defines the interface for product data access.
// Absent rows are reported as a nil product or false, never as an error.
type ProductRepository interface {
	GetAll(ctx context.Context) ([]models.Product, error)
	GetByID(ctx context.Context, id int64) (*models.Product, error)
	Create(ctx context.Context, product *models.Product) error
	// Update writes every mutable column of product and reports whether the row exists.
	Update(ctx context.Context, product *models.Product) (bool, error)
	Delete(ctx context.Context, id int64) (bool, error)
}
