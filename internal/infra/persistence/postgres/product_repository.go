package postgres

import (
	"context"

	"marketplace/internal/domain/entity"
	"marketplace/internal/domain/repository"
	"marketplace/internal/errors"
	"marketplace/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// productRepository implements repository.ProductRepository using GORM.
type productRepository struct {
	db *gorm.DB
}

// NewProductRepository is the constructor for productRepository.
func NewProductRepository(db *gorm.DB) repository.ProductRepository {
	return &productRepository{db: db}
}

// Create persists a new listing.
func (repo *productRepository) Create(ctx context.Context, product *entity.Product) error {
	productM := fromProductDomain(product)

	if err := repo.db.WithContext(ctx).Create(productM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrCategoryNotFound
		}

		return errors.Wrap(err, "failed to create product")
	}

	product.ID = productM.ID
	product.CreatedAt = productM.CreatedAt
	product.UpdatedAt = productM.UpdatedAt

	return nil
}

// FindByID retrieves a single product together with its owning storefront.
func (repo *productRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	var productM model.ProductModel
	err := repo.db.WithContext(ctx).
		Preload("Vendor").
		Where("id = ?", id).
		First(&productM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product by id")
	}

	return toProductDomain(&productM), nil
}

// UpdateFields applies a column-level partial update and returns the
// refreshed row. Plain string slices are converted so the driver encodes
// them as PostgreSQL arrays.
func (repo *productRepository) UpdateFields(ctx context.Context, id uuid.UUID, fields map[string]any) (*entity.Product, error) {
	for key, value := range fields {
		if strs, ok := value.([]string); ok {
			fields[key] = pq.StringArray(strs)
		}
	}

	result := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("id = ?", id).
		Updates(fields)
	if result.Error != nil {
		return nil, errors.Wrap(result.Error, "failed to update product fields")
	}
	if result.RowsAffected == 0 {
		return nil, repository.ErrProductNotFound
	}

	return repo.FindByID(ctx, id)
}

// List returns one page of products matching the filter plus the total count.
func (repo *productRepository) List(ctx context.Context, filter repository.ProductListFilter, page repository.Pagination) ([]*entity.Product, int64, error) {
	query := repo.db.WithContext(ctx).Model(&model.ProductModel{})

	status := entity.ProductStatusActive
	if filter.Status != nil {
		status = *filter.Status
	}
	query = query.Where("status = ?", status.String())

	if len(filter.CategoryIDs) > 0 {
		query = query.Where("category_id IN ?", filter.CategoryIDs)
	}
	if filter.Tag != "" {
		query = query.Where("? = ANY(tags)", filter.Tag)
	}
	if filter.MinPrice != nil {
		query = query.Where("price >= ?", *filter.MinPrice)
	}
	if filter.MaxPrice != nil {
		query = query.Where("price <= ?", *filter.MaxPrice)
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("name ILIKE ? OR description ILIKE ?", pattern, pattern)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count products")
	}

	var productMs []*model.ProductModel
	err := query.
		Preload("Vendor").
		Order(orderClause(filter.Sort)).
		Limit(page.Limit).
		Offset(page.Offset()).
		Find(&productMs).Error
	if err != nil {
		return nil, 0, errors.Wrap(err, "failed to list products")
	}

	products := make([]*entity.Product, 0, len(productMs))
	for _, productM := range productMs {
		products = append(products, toProductDomain(productM))
	}

	return products, total, nil
}

// IncrementViews bumps the contact-view counter atomically in SQL.
func (repo *productRepository) IncrementViews(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("id = ?", id).
		UpdateColumn("views_count", gorm.Expr("views_count + 1"))
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to increment product views")
	}
	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	return nil
}

// CountByStatus aggregates listings grouped by status.
func (repo *productRepository) CountByStatus(ctx context.Context) ([]repository.StatusCount[entity.ProductStatus], error) {
	var rows []struct {
		Status string
		Count  int
	}
	err := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Select("status, COUNT(*) AS count").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to count products by status")
	}

	counts := make([]repository.StatusCount[entity.ProductStatus], 0, len(rows))
	for _, row := range rows {
		counts = append(counts, repository.StatusCount[entity.ProductStatus]{
			Status: entity.ProductStatus(row.Status),
			Count:  row.Count,
		})
	}

	return counts, nil
}

func orderClause(sort entity.ProductSort) clause.OrderByColumn {
	switch sort {
	case entity.ProductSortPriceAsc:
		return clause.OrderByColumn{Column: clause.Column{Name: "price"}}
	case entity.ProductSortPriceDesc:
		return clause.OrderByColumn{Column: clause.Column{Name: "price"}, Desc: true}
	case entity.ProductSortPopular:
		return clause.OrderByColumn{Column: clause.Column{Name: "views_count"}, Desc: true}
	default:
		return clause.OrderByColumn{Column: clause.Column{Name: "created_at"}, Desc: true}
	}
}

// contactViewRepository implements repository.ContactViewRepository using GORM.
type contactViewRepository struct {
	db *gorm.DB
}

// NewContactViewRepository is the constructor for contactViewRepository.
func NewContactViewRepository(db *gorm.DB) repository.ContactViewRepository {
	return &contactViewRepository{db: db}
}

// Record appends one contact-reveal analytics event.
func (repo *contactViewRepository) Record(ctx context.Context, view *entity.ContactView) error {
	viewM := &model.ContactViewModel{
		ID:                view.ID,
		ProductID:         view.ProductID,
		UserID:            view.UserID,
		BusinessProfileID: view.BusinessProfileID,
		CreatedAt:         view.CreatedAt,
	}

	if err := repo.db.WithContext(ctx).Create(viewM).Error; err != nil {
		return errors.Wrap(err, "failed to record contact view")
	}

	view.ID = viewM.ID
	view.CreatedAt = viewM.CreatedAt

	return nil
}

func toProductDomain(productM *model.ProductModel) *entity.Product {
	if productM == nil {
		return nil
	}

	product := &entity.Product{
		ID:          productM.ID,
		OwnerID:     productM.ProductOwnerID,
		Name:        productM.Name,
		Description: productM.Description,
		Price:       productM.Price,
		Condition:   productM.Condition,
		CategoryID:  productM.CategoryID,
		Images:      productM.Images,
		Tags:        productM.Tags,
		Status:      entity.ProductStatus(productM.Status),
		ViewsCount:  productM.ViewsCount,
		CreatedAt:   productM.CreatedAt,
		UpdatedAt:   productM.UpdatedAt,
	}
	if productM.Vendor != nil {
		product.Vendor = toBusinessProfileDomain(productM.Vendor)
	}

	return product
}

func fromProductDomain(product *entity.Product) *model.ProductModel {
	return &model.ProductModel{
		ID:             product.ID,
		ProductOwnerID: product.OwnerID,
		Name:           product.Name,
		Description:    product.Description,
		Price:          product.Price,
		Condition:      product.Condition,
		CategoryID:     product.CategoryID,
		Images:         product.Images,
		Tags:           product.Tags,
		Status:         product.Status.String(),
		ViewsCount:     product.ViewsCount,
		CreatedAt:      product.CreatedAt,
		UpdatedAt:      product.UpdatedAt,
	}
}
