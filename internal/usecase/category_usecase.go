package usecase

import (
	"context"

	"marketplace/internal/domain/entity"
	"marketplace/internal/domain/repository"

	"github.com/google/uuid"
)

// ListCategoriesInput carries the public category listing filters.
type ListCategoriesInput struct {
	ParentID     *uuid.UUID
	TopLevelOnly bool
	Search       string
	Page         int
	Limit        int
}

// CreateCategoryInput defines the data required to create a category. The
// slug is derived from the name.
type CreateCategoryInput struct {
	Name             string `validate:"required,max=100"`
	Description      string `validate:"omitempty,max=5000"`
	Icon             string `validate:"omitempty,max=2048"`
	Image            string `validate:"omitempty,max=2048"`
	ParentCategoryID *uuid.UUID
}

// UpdateCategoryInput is the partial update for a category. Nil fields are
// left untouched; at least one field must be set. SetParentNil moves the
// category to the top level.
type UpdateCategoryInput struct {
	Name             *string `validate:"omitempty,max=100"`
	Description      *string `validate:"omitempty,max=5000"`
	Icon             *string `validate:"omitempty,max=2048"`
	Image            *string `validate:"omitempty,max=2048"`
	ParentCategoryID *uuid.UUID
	SetParentNil     bool
}

// Fields maps the set fields onto their column names. A renamed category
// gets a freshly derived slug.
func (input *UpdateCategoryInput) Fields() map[string]any {
	fields := make(map[string]any)
	setField(fields, "description", input.Description)
	setField(fields, "icon", input.Icon)
	setField(fields, "image", input.Image)
	if input.Name != nil {
		fields["name"] = *input.Name
		fields["slug"] = entity.Slugify(*input.Name)
	}
	if input.SetParentNil {
		fields["parent_category_id"] = nil
	} else if input.ParentCategoryID != nil {
		fields["parent_category_id"] = *input.ParentCategoryID
	}

	return fields
}

// CategoryListOutput is one page of categories plus pagination metadata.
type CategoryListOutput struct {
	Categories []*entity.Category
	PageInfo   repository.PageInfo
}

// CategoryUsecase defines category-tree business operations.
type CategoryUsecase interface {
	List(ctx context.Context, input *ListCategoriesInput) (*CategoryListOutput, error)

	// ListTopLevel returns the active root categories.
	ListTopLevel(ctx context.Context, page repository.Pagination) (*CategoryListOutput, error)

	Get(ctx context.Context, categoryID uuid.UUID) (*entity.Category, error)

	// GetWithChildren returns a category with its direct children attached.
	GetWithChildren(ctx context.Context, categoryID uuid.UUID) (*entity.Category, error)

	// GetWithParents returns a category with its ancestor chain attached,
	// direct parent first.
	GetWithParents(ctx context.Context, categoryID uuid.UUID) (*entity.Category, error)

	// GetWithParentsAndChildren combines both traversals.
	GetWithParentsAndChildren(ctx context.Context, categoryID uuid.UUID) (*entity.Category, error)

	// Create adds a category node; admin actors only (enforced by the
	// delivery layer role gate). The activity log records the action.
	Create(ctx context.Context, adminID uuid.UUID, input *CreateCategoryInput) (*entity.Category, error)

	// Update applies a whitelisted partial update.
	Update(ctx context.Context, adminID uuid.UUID, categoryID uuid.UUID, input *UpdateCategoryInput) (*entity.Category, error)

	// Delete soft-deletes a category.
	Delete(ctx context.Context, adminID uuid.UUID, categoryID uuid.UUID) error
}
