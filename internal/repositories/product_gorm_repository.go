package repositories

import (
	"context"
	"errors"

	"catalog/internal/models"

	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

// GORMProductRepository is a GORM implementation of ProductRepository.
type GORMProductRepository struct {
	db     *gorm.DB
	logger zerolog.Logger
}

// NewGORMProductRepository creates a new instance of GORMProductRepository.
func NewGORMProductRepository(db *gorm.DB, logger zerolog.Logger) *GORMProductRepository {
	return &GORMProductRepository{
		db:     db,
		logger: logger.With().Str("repository", "product").Logger(),
	}
}

// GetAll retrieves all products ordered by id.
func (r *GORMProductRepository) GetAll(ctx context.Context) ([]models.Product, error) {
	products := make([]models.Product, 0)
	if err := r.db.WithContext(ctx).Order("id").Find(&products).Error; err != nil {
		r.logger.Error().Err(err).Msg("failed to query products")
		return nil, models.NewPersistenceError("get all products", err)
	}
	return products, nil
}

// GetByID retrieves a single product by its ID.
func (r *GORMProductRepository) GetByID(ctx context.Context, id int64) (*models.Product, error) {
	var product models.Product
	if err := r.db.WithContext(ctx).First(&product, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			r.logger.Debug().Int64("product_id", id).Msg("product not found")
			return nil, nil
		}
		r.logger.Error().Err(err).Int64("product_id", id).Msg("failed to query product")
		return nil, models.NewPersistenceError("get product", err)
	}
	return &product, nil
}

// Create inserts a new product. The database assigns the ID.
func (r *GORMProductRepository) Create(ctx context.Context, product *models.Product) error {
	product.ID = 0
	if err := r.db.WithContext(ctx).Create(product).Error; err != nil {
		r.logger.Error().Err(err).Str("name", product.Name).Msg("failed to create product")
		return models.NewPersistenceError("create product", err)
	}
	return nil
}

// Update writes all mutable columns, including a nil description.
func (r *GORMProductRepository) Update(ctx context.Context, product *models.Product) (bool, error) {
	res := r.db.WithContext(ctx).
		Model(&models.Product{ID: product.ID}).
		Select("name", "description", "price", "stock_quantity", "updated_at").
		Updates(product)
	if res.Error != nil {
		r.logger.Error().Err(res.Error).Int64("product_id", product.ID).Msg("failed to update product")
		return false, models.NewPersistenceError("update product", res.Error)
	}
	return res.RowsAffected > 0, nil
}

// Delete hard-deletes a product by its ID.
func (r *GORMProductRepository) Delete(ctx context.Context, id int64) (bool, error) {
	res := r.db.WithContext(ctx).Delete(&models.Product{}, "id = ?", id)
	if res.Error != nil {
		r.logger.Error().Err(res.Error).Int64("product_id", id).Msg("failed to delete product")
		return false, models.NewPersistenceError("delete product", res.Error)
	}
	return res.RowsAffected > 0, nil
}
