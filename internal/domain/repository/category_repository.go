package repository

import (
	"context"

	"marketplace/internal/domain/entity"

	"github.com/google/uuid"
)

// CategoryListFilter narrows category listings.
type CategoryListFilter struct {
	// ParentID restricts the listing to direct children of one category.
	ParentID *uuid.UUID
	// TopLevelOnly restricts the listing to categories without a parent.
	TopLevelOnly bool
	// Search matches the category name (case-insensitive substring).
	Search string
	// IncludeDeleted lifts the default active-only restriction.
	IncludeDeleted bool
}

// CategoryRepository defines persistence operations for the category tree.
// Children are always derived from parent_category_id by query; no
// denormalized child list exists.
type CategoryRepository interface {
	Create(ctx context.Context, category *entity.Category) error

	// FindByID returns an active category, or ErrCategoryNotFound.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Category, error)

	// UpdateFields applies a whitelisted partial update and returns the
	// refreshed row. Soft deletion is a status flip through this method.
	UpdateFields(ctx context.Context, id uuid.UUID, fields map[string]any) (*entity.Category, error)

	List(ctx context.Context, filter CategoryListFilter, page Pagination) ([]*entity.Category, int64, error)

	// ListChildren returns the active direct children of a category.
	ListChildren(ctx context.Context, parentID uuid.UUID) ([]*entity.Category, error)
}
