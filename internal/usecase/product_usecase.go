package usecase

import (
	"context"

	"marketplace/internal/domain/entity"
	"marketplace/internal/domain/repository"

	"github.com/google/uuid"
)

// ListProductsInput carries the public listing filters.
type ListProductsInput struct {
	CategoryID *uuid.UUID
	Tag        string
	MinPrice   *float64 `validate:"omitempty,gte=0"`
	MaxPrice   *float64 `validate:"omitempty,gte=0"`
	Search     string
	Sort       entity.ProductSort `validate:"omitempty,oneof=newest price_asc price_desc popular"`
	Page       int
	Limit      int
}

// CreateProductInput defines the data required to publish a listing.
type CreateProductInput struct {
	Name        string  `validate:"required,max=255"`
	Description string  `validate:"omitempty,max=10000"`
	Price       float64 `validate:"required,gte=0"`
	Condition   string  `validate:"omitempty,max=32"`
	CategoryID  *uuid.UUID
	Images      []string `validate:"omitempty,dive,max=2048"`
	Tags        []string `validate:"omitempty,dive,max=64"`
}

// UpdateProductInput is the partial update for a listing. Nil fields are
// left untouched; at least one field must be set.
type UpdateProductInput struct {
	Name        *string  `validate:"omitempty,max=255"`
	Description *string  `validate:"omitempty,max=10000"`
	Price       *float64 `validate:"omitempty,gte=0"`
	Condition   *string  `validate:"omitempty,max=32"`
	CategoryID  *uuid.UUID
	Images      []string `validate:"omitempty,dive,max=2048"`
	Tags        []string `validate:"omitempty,dive,max=64"`
	Status      *entity.ProductStatus
}

// ProductListOutput is one page of listings plus pagination metadata.
type ProductListOutput struct {
	Products []*entity.Product
	PageInfo repository.PageInfo
}

// ContactViewOutput returns the vendor contact details revealed by a
// contact-view event.
type ContactViewOutput struct {
	ProductID      uuid.UUID
	BusinessName   string
	BusinessPhone  string
	WhatsappNumber string
	BusinessEmail  string
	Address        string
}

// ProductUsecase defines listing-related business operations.
type ProductUsecase interface {
	// List returns publicly visible (active) products.
	List(ctx context.Context, input *ListProductsInput) (*ProductListOutput, error)

	// ListByCategory returns active products in a category, or across its
	// direct children when the category has any.
	ListByCategory(ctx context.Context, categoryID uuid.UUID, page repository.Pagination) (*ProductListOutput, error)

	// Get returns one product with its vendor preview.
	Get(ctx context.Context, productID uuid.UUID) (*entity.Product, error)

	// Create publishes a listing under the caller's storefront. Callers
	// without a storefront are rejected; the listing starts active only
	// when the storefront is active, pending otherwise.
	Create(ctx context.Context, userID uuid.UUID, input *CreateProductInput) (*entity.Product, error)

	// Update applies a whitelisted partial update, enforcing ownership
	// through the owning storefront. Admin actors bypass ownership.
	Update(ctx context.Context, actorID uuid.UUID, productID uuid.UUID, input *UpdateProductInput) (*entity.Product, error)

	// Delete soft-deletes a listing, enforcing ownership as Update does.
	Delete(ctx context.Context, actorID uuid.UUID, productID uuid.UUID) error

	// RecordContactView records a contact-reveal event, bumps the view
	// counter and returns the vendor's contact details.
	RecordContactView(ctx context.Context, userID uuid.UUID, productID uuid.UUID) (*ContactViewOutput, error)
}
