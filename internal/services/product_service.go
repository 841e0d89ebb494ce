package services

import (
	"context"
	"time"

	"catalog/internal/models"
	"catalog/internal/repositories"
	"catalog/internal/validation"

	"github.com/rs/zerolog"
)

// EventPublisher receives product events after successful mutations.
type EventPublisher interface {
	PublishProductEvent(event models.ProductEvent) error
}

// ProductService handles business logic related to products.
type ProductService struct {
	repo     repositories.ProductRepository
	validate *validation.Validator
	events   EventPublisher
	logger   zerolog.Logger
	now      func() time.Time
}

// NewProductService creates a new ProductService. events may be nil.
func NewProductService(repo repositories.ProductRepository, validate *validation.Validator, events EventPublisher, logger zerolog.Logger) *ProductService {
	return &ProductService{
		repo:     repo,
		validate: validate,
		events:   events,
		logger:   logger.With().Str("service", "product").Logger(),
		now:      time.Now,
	}
}

// WithClock replaces the time source used for created_at and updated_at.
func (s *ProductService) WithClock(now func() time.Time) *ProductService {
	s.now = now
	return s
}

// GetProducts retrieves all products. An empty catalog yields an empty slice.
func (s *ProductService) GetProducts(ctx context.Context) ([]models.Product, error) {
	products, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	if products == nil {
		products = []models.Product{}
	}
	return products, nil
}

// GetProduct retrieves a single product. It returns nil, nil when the product does not exist.
func (s *ProductService) GetProduct(ctx context.Context, input models.GetProductInput) (*models.Product, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, input.ID)
}

// CreateProduct validates input and inserts a new product.
func (s *ProductService) CreateProduct(ctx context.Context, input models.CreateProductInput) (*models.Product, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, err
	}

	product := input.NewProduct(models.Timestamp(s.now()))
	if err := s.repo.Create(ctx, product); err != nil {
		return nil, err
	}

	s.publish(ctx, models.EventProductCreated, product.ID, product)
	return product, nil
}

// UpdateProduct merges the fields present in input into the stored product.
// updated_at moves forward even when no value changed. It returns nil, nil when
// the product does not exist.
func (s *ProductService) UpdateProduct(ctx context.Context, input models.UpdateProductInput) (*models.Product, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, err
	}

	product, err := s.repo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}

	input.ApplyTo(product)
	product.UpdatedAt = models.NextUpdatedAt(product.UpdatedAt, s.now())

	found, err := s.repo.Update(ctx, product)
	if err != nil {
		return nil, err
	}
	if !found {
		// Deleted between the read and the write.
		return nil, nil
	}

	s.publish(ctx, models.EventProductUpdated, product.ID, product)
	return product, nil
}

// DeleteProduct removes a product and reports whether it existed.
func (s *ProductService) DeleteProduct(ctx context.Context, input models.DeleteProductInput) (bool, error) {
	if err := s.validate.Struct(input); err != nil {
		return false, err
	}

	deleted, err := s.repo.Delete(ctx, input.ID)
	if err != nil {
		return false, err
	}
	if deleted {
		s.publish(ctx, models.EventProductDeleted, input.ID, nil)
	}
	return deleted, nil
}

func (s *ProductService) publish(ctx context.Context, eventType string, productID int64, product *models.Product) {
	if s.events == nil {
		return
	}

	event := models.ProductEvent{
		Type:       eventType,
		ProductID:  productID,
		Product:    product,
		OccurredAt: models.Timestamp(s.now()),
	}
	if session, ok := SessionFromContext(ctx); ok {
		event.ActorID = session.UserID
	}

	if err := s.events.PublishProductEvent(event); err != nil {
		s.logger.Warn().Err(err).Str("type", eventType).Int64("product_id", productID).Msg("failed to publish product event")
	}
}
