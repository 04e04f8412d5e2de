package postgres

import (
	"context"

	"marketplace/internal/domain/entity"
	"marketplace/internal/domain/repository"
	"marketplace/internal/errors"
	"marketplace/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// categoryRepository implements repository.CategoryRepository using GORM.
type categoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository is the constructor for categoryRepository.
func NewCategoryRepository(db *gorm.DB) repository.CategoryRepository {
	return &categoryRepository{db: db}
}

// Create persists a new category node.
func (repo *categoryRepository) Create(ctx context.Context, category *entity.Category) error {
	categoryM := fromCategoryDomain(category)

	if err := repo.db.WithContext(ctx).Create(categoryM).Error; err != nil {
		return errors.Wrap(err, "failed to create category")
	}

	category.ID = categoryM.ID
	category.CreatedAt = categoryM.CreatedAt
	category.UpdatedAt = categoryM.UpdatedAt

	return nil
}

// FindByID returns an active category by ID.
func (repo *categoryRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Category, error) {
	var categoryM model.CategoryModel
	err := repo.db.WithContext(ctx).
		Where("id = ? AND status = ?", id, entity.CategoryStatusActive.String()).
		First(&categoryM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCategoryNotFound
		}

		return nil, errors.Wrap(err, "failed to find category by id")
	}

	return toCategoryDomain(&categoryM), nil
}

// UpdateFields applies a column-level partial update and returns the
// refreshed row. The refresh bypasses the active-only lookup so status
// flips (soft deletion) still return the row.
func (repo *categoryRepository) UpdateFields(ctx context.Context, id uuid.UUID, fields map[string]any) (*entity.Category, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.CategoryModel{}).
		Where("id = ?", id).
		Updates(fields)
	if result.Error != nil {
		return nil, errors.Wrap(result.Error, "failed to update category fields")
	}
	if result.RowsAffected == 0 {
		return nil, repository.ErrCategoryNotFound
	}

	var categoryM model.CategoryModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&categoryM).Error; err != nil {
		return nil, errors.Wrap(err, "failed to reload category")
	}

	return toCategoryDomain(&categoryM), nil
}

// List returns one page of categories matching the filter plus the total count.
func (repo *categoryRepository) List(ctx context.Context, filter repository.CategoryListFilter, page repository.Pagination) ([]*entity.Category, int64, error) {
	query := repo.db.WithContext(ctx).Model(&model.CategoryModel{})

	if !filter.IncludeDeleted {
		query = query.Where("status = ?", entity.CategoryStatusActive.String())
	}
	if filter.TopLevelOnly {
		query = query.Where("parent_category_id IS NULL")
	}
	if filter.ParentID != nil {
		query = query.Where("parent_category_id = ?", *filter.ParentID)
	}
	if filter.Search != "" {
		query = query.Where("name ILIKE ?", "%"+filter.Search+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count categories")
	}

	var categoryMs []*model.CategoryModel
	err := query.
		Order("name ASC").
		Limit(page.Limit).
		Offset(page.Offset()).
		Find(&categoryMs).Error
	if err != nil {
		return nil, 0, errors.Wrap(err, "failed to list categories")
	}

	categories := make([]*entity.Category, 0, len(categoryMs))
	for _, categoryM := range categoryMs {
		categories = append(categories, toCategoryDomain(categoryM))
	}

	return categories, total, nil
}

// ListChildren returns the active direct children of a category.
func (repo *categoryRepository) ListChildren(ctx context.Context, parentID uuid.UUID) ([]*entity.Category, error) {
	var categoryMs []*model.CategoryModel
	err := repo.db.WithContext(ctx).
		Where("parent_category_id = ? AND status = ?", parentID, entity.CategoryStatusActive.String()).
		Order("name ASC").
		Find(&categoryMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list child categories")
	}

	categories := make([]*entity.Category, 0, len(categoryMs))
	for _, categoryM := range categoryMs {
		categories = append(categories, toCategoryDomain(categoryM))
	}

	return categories, nil
}

func toCategoryDomain(categoryM *model.CategoryModel) *entity.Category {
	if categoryM == nil {
		return nil
	}

	return &entity.Category{
		ID:               categoryM.ID,
		Name:             categoryM.Name,
		Slug:             categoryM.Slug,
		Description:      categoryM.Description,
		Icon:             categoryM.Icon,
		Image:            categoryM.Image,
		ParentCategoryID: categoryM.ParentCategoryID,
		Status:           entity.CategoryStatus(categoryM.Status),
		CreatedAt:        categoryM.CreatedAt,
		UpdatedAt:        categoryM.UpdatedAt,
	}
}

func fromCategoryDomain(category *entity.Category) *model.CategoryModel {
	return &model.CategoryModel{
		ID:               category.ID,
		Name:             category.Name,
		Slug:             category.Slug,
		Description:      category.Description,
		Icon:             category.Icon,
		Image:            category.Image,
		ParentCategoryID: category.ParentCategoryID,
		Status:           category.Status.String(),
		CreatedAt:        category.CreatedAt,
		UpdatedAt:        category.UpdatedAt,
	}
}
