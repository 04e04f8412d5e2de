package repository

import (
	"context"

	"marketplace/internal/domain/entity"

	"github.com/google/uuid"
)

// ProductListFilter narrows public product listings. The zero value lists
// every active product, newest first.
type ProductListFilter struct {
	CategoryIDs []uuid.UUID
	Tag         string
	MinPrice    *float64
	MaxPrice    *float64
	// Search matches product name or description (case-insensitive substring).
	Search string
	Sort   entity.ProductSort
	// Status restricts the listing; defaults to active when nil.
	Status *entity.ProductStatus
}

// ProductRepository defines persistence operations for listings.
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error

	// FindByID loads a product together with its owning storefront.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)

	// UpdateFields applies a whitelisted partial update and returns the
	// refreshed row.
	UpdateFields(ctx context.Context, id uuid.UUID, fields map[string]any) (*entity.Product, error)

	List(ctx context.Context, filter ProductListFilter, page Pagination) ([]*entity.Product, int64, error)

	// IncrementViews bumps the contact-view counter by one.
	IncrementViews(ctx context.Context, id uuid.UUID) error

	CountByStatus(ctx context.Context) ([]StatusCount[entity.ProductStatus], error)
}

// ContactViewRepository records contact-reveal analytics events.
type ContactViewRepository interface {
	Record(ctx context.Context, view *entity.ContactView) error
}
