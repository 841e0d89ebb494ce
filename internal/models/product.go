package models

import (
	"time"
)

// Product represents a product in the catalog.
type Product struct {
	ID            int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	Name          string    `json:"name" gorm:"type:text;not null"`
	Description   *string   `json:"description" gorm:"type:text"`
	Price         Price     `json:"price" gorm:"type:numeric(10,2);not null"`
	StockQuantity int       `json:"stock_quantity" gorm:"not null"`
	CreatedAt     time.Time `json:"created_at" gorm:"not null;autoCreateTime:false"`
	UpdatedAt     time.Time `json:"updated_at" gorm:"not null;autoUpdateTime:false"`
}

// CreateProductInput is the payload for creating a product.
type CreateProductInput struct {
	Name          string  `json:"name" validate:"required,min=1"`
	Description   *string `json:"description"`
	Price         Price   `json:"price" validate:"required,gt=0,lte=99999999.99"`
	StockQuantity int     `json:"stock_quantity" validate:"gte=0"`
}

// NewProduct builds the row to insert. Timestamps are both set to now.
func (in CreateProductInput) NewProduct(now time.Time) *Product {
	return &Product{
		Name:          in.Name,
		Description:   in.Description,
		Price:         in.Price,
		StockQuantity: in.StockQuantity,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

// UpdateProductInput is the payload for a partial product update.
// Only Description may be explicitly null.
type UpdateProductInput struct {
	ID            int64            `json:"id" validate:"gt=0"`
	Name          Optional[string] `json:"name" validate:"omitempty,min=1"`
	Description   Optional[string] `json:"description"`
	Price         Optional[Price]  `json:"price" validate:"omitempty,gt=0,lte=99999999.99"`
	StockQuantity Optional[int]    `json:"stock_quantity" validate:"omitempty,gte=0"`
}

// ApplyTo merges the set fields of the update into p. Unset fields are left alone
// and a null description clears it.
func (in UpdateProductInput) ApplyTo(p *Product) {
	if v, ok := in.Name.Get(); ok {
		p.Name = v
	}
	if in.Description.IsNull() {
		p.Description = nil
	} else if v, ok := in.Description.Get(); ok {
		p.Description = &v
	}
	if v, ok := in.Price.Get(); ok {
		p.Price = v
	}
	if v, ok := in.StockQuantity.Get(); ok {
		p.StockQuantity = v
	}
}

// GetProductInput identifies a single product.
type GetProductInput struct {
	ID int64 `json:"id" validate:"gt=0"`
}

// DeleteProductInput identifies the product to delete.
type DeleteProductInput struct {
	ID int64 `json:"id" validate:"gt=0"`
}

// Timestamp normalizes t to the precision kept by storage.
func Timestamp(t time.Time) time.Time {
	return t.UTC().Truncate(time.Microsecond)
}

// NextUpdatedAt returns the updated_at value for a mutation happening at now.
// The result is always strictly after prev.
func NextUpdatedAt(prev, now time.Time) time.Time {
	next := Timestamp(now)
	if !next.After(prev) {
		next = Timestamp(prev).Add(time.Microsecond)
	}
	return next
}

// Product event types.
const (
	EventProductCreated = "product.created"
	EventProductUpdated = "product.updated"
	EventProductDeleted = "product.deleted"
)

// ProductEvent is published after every successful product mutation.
type ProductEvent struct {
	Type       string    `json:"type"`
	ProductID  int64     `json:"product_id"`
	ActorID    int64     `json:"actor_id,omitempty"`
	Product    *Product  `json:"product,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}
