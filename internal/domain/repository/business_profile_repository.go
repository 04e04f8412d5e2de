package repository

import (
	"context"

	"marketplace/internal/domain/entity"

	"github.com/google/uuid"
)

// BusinessListFilter narrows admin business profile listings.
type BusinessListFilter struct {
	Status *entity.BusinessStatus
	// Search matches business name or business email (case-insensitive substring).
	Search string
	// WithOwner joins the owning account onto each row.
	WithOwner bool
}

// StatusCount is one cell of a GROUP BY status aggregation.
type StatusCount[S ~string] struct {
	Status S
	Count  int
}

// BusinessProfileRepository defines persistence operations for storefronts.
type BusinessProfileRepository interface {
	Create(ctx context.Context, profile *entity.BusinessProfile) error

	FindByID(ctx context.Context, id uuid.UUID) (*entity.BusinessProfile, error)

	// FindByOwner returns the storefront owned by the given user, or
	// ErrBusinessProfileNotFound when the user never onboarded.
	FindByOwner(ctx context.Context, ownerID uuid.UUID) (*entity.BusinessProfile, error)

	// UpdateFields applies a whitelisted partial update and returns the
	// refreshed row.
	UpdateFields(ctx context.Context, id uuid.UUID, fields map[string]any) (*entity.BusinessProfile, error)

	List(ctx context.Context, filter BusinessListFilter, page Pagination) ([]*entity.BusinessProfile, int64, error)

	CountByStatus(ctx context.Context) ([]StatusCount[entity.BusinessStatus], error)
}
