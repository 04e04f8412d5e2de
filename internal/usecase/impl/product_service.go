package impl

import (
	"context"
	"log/slog"

	"marketplace/config"
	deliverycontext "marketplace/internal/delivery/context"
	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/repository"
	"marketplace/internal/errors"
	"marketplace/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// productService implements the ProductUsecase interface.
type productService struct {
	productRepo     repository.ProductRepository
	contactViewRepo repository.ContactViewRepository
	businessRepo    repository.BusinessProfileRepository
	categoryRepo    repository.CategoryRepository
	userRepo        repository.UserRepository
	defaultLimit    int
	maxLimit        int
	logger          *slog.Logger
}

// ProductServiceParams holds dependencies for productService, injected by Fx.
type ProductServiceParams struct {
	fx.In

	ProductRepo     repository.ProductRepository
	ContactViewRepo repository.ContactViewRepository
	BusinessRepo    repository.BusinessProfileRepository
	CategoryRepo    repository.CategoryRepository
	UserRepo        repository.UserRepository
	Config          *config.Config
	Logger          *slog.Logger
}

// NewProductService is the constructor for productService.
func NewProductService(params ProductServiceParams) usecase.ProductUsecase {
	defaultLimit, maxLimit := 12, 100
	if params.Config != nil && params.Config.Listing != nil {
		defaultLimit = params.Config.Listing.DefaultLimit
		maxLimit = params.Config.Listing.MaxLimit
	}

	return &productService{
		productRepo:     params.ProductRepo,
		contactViewRepo: params.ContactViewRepo,
		businessRepo:    params.BusinessRepo,
		categoryRepo:    params.CategoryRepo,
		userRepo:        params.UserRepo,
		defaultLimit:    defaultLimit,
		maxLimit:        maxLimit,
		logger:          params.Logger,
	}
}

func (srv *productService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// List returns publicly visible (active) products.
func (srv *productService) List(ctx context.Context, input *usecase.ListProductsInput) (*usecase.ProductListOutput, error) {
	filter := repository.ProductListFilter{
		Tag:      input.Tag,
		MinPrice: input.MinPrice,
		MaxPrice: input.MaxPrice,
		Search:   input.Search,
		Sort:     input.Sort,
	}
	if input.CategoryID != nil {
		filter.CategoryIDs = []uuid.UUID{*input.CategoryID}
	}

	page := repository.Pagination{Page: input.Page, Limit: input.Limit}.Normalize(srv.defaultLimit, srv.maxLimit)

	products, total, err := srv.productRepo.List(ctx, filter, page)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	return &usecase.ProductListOutput{
		Products: products,
		PageInfo: repository.NewPageInfo(page, total),
	}, nil
}

// ListByCategory returns active products in one category, or across its
// direct children when the category has any.
func (srv *productService) ListByCategory(ctx context.Context, categoryID uuid.UUID, page repository.Pagination) (*usecase.ProductListOutput, error) {
	category, err := srv.categoryRepo.FindByID(ctx, categoryID)
	if err != nil {
		return nil, translateRepoError(err)
	}

	children, err := srv.categoryRepo.ListChildren(ctx, category.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list child categories")
	}

	categoryIDs := []uuid.UUID{category.ID}
	if len(children) > 0 {
		categoryIDs = make([]uuid.UUID, 0, len(children))
		for _, child := range children {
			categoryIDs = append(categoryIDs, child.ID)
		}
	}

	page = page.Normalize(srv.defaultLimit, srv.maxLimit)

	products, total, err := srv.productRepo.List(ctx, repository.ProductListFilter{CategoryIDs: categoryIDs}, page)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products by category")
	}

	return &usecase.ProductListOutput{
		Products: products,
		PageInfo: repository.NewPageInfo(page, total),
	}, nil
}

// Get returns one product with its vendor preview. Soft-deleted listings
// stay fetchable by ID; only listings filter them out.
func (srv *productService) Get(ctx context.Context, productID uuid.UUID) (*entity.Product, error) {
	product, err := srv.productRepo.FindByID(ctx, productID)
	if err != nil {
		return nil, translateRepoError(err)
	}

	return product, nil
}

// Create publishes a listing under the caller's storefront.
func (srv *productService) Create(ctx context.Context, userID uuid.UUID, input *usecase.CreateProductInput) (*entity.Product, error) {
	profile, err := srv.businessRepo.FindByOwner(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrBusinessProfileNotFound) {
			return nil, domainerrors.ErrVendorProfileRequired
		}

		return nil, errors.Wrap(err, "failed to load business profile")
	}

	// Listings from unverified storefronts stay pending until the profile
	// is approved.
	status := entity.ProductStatusPending
	if profile.Status == entity.BusinessStatusActive {
		status = entity.ProductStatusActive
	}

	product := &entity.Product{
		OwnerID:     profile.ID,
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		Condition:   input.Condition,
		CategoryID:  input.CategoryID,
		Images:      input.Images,
		Tags:        input.Tags,
		Status:      status,
	}
	if err := srv.productRepo.Create(ctx, product); err != nil {
		return nil, translateRepoError(err)
	}

	srv.log(ctx).Info("Product created",
		slog.Any("productID", product.ID),
		slog.Any("profileID", profile.ID),
		slog.String("status", status.String()),
	)

	return product, nil
}

// Update applies a whitelisted partial update, enforcing ownership through
// the owning storefront.
func (srv *productService) Update(ctx context.Context, actorID uuid.UUID, productID uuid.UUID, input *usecase.UpdateProductInput) (*entity.Product, error) {
	fields := buildProductFields(input)
	if len(fields) == 0 {
		return nil, domainerrors.ErrNoFieldsToUpdate
	}
	if input.Status != nil && (!input.Status.IsValid() || *input.Status == entity.ProductStatusDeleted) {
		return nil, domainerrors.ErrInvalidStatus
	}

	if err := srv.authorizeProductMutation(ctx, actorID, productID); err != nil {
		return nil, err
	}

	updated, err := srv.productRepo.UpdateFields(ctx, productID, fields)
	if err != nil {
		return nil, translateRepoError(err)
	}

	srv.log(ctx).Debug("Product updated", slog.Any("productID", productID), slog.Int("fields", len(fields)))

	return updated, nil
}

// Delete soft-deletes a listing, enforcing ownership as Update does.
func (srv *productService) Delete(ctx context.Context, actorID uuid.UUID, productID uuid.UUID) error {
	if err := srv.authorizeProductMutation(ctx, actorID, productID); err != nil {
		return err
	}

	if _, err := srv.productRepo.UpdateFields(ctx, productID, map[string]any{
		"status": entity.ProductStatusDeleted.String(),
	}); err != nil {
		return translateRepoError(err)
	}

	srv.log(ctx).Info("Product deleted", slog.Any("productID", productID), slog.Any("actorID", actorID))

	return nil
}

// RecordContactView records a contact-reveal event, bumps the view counter
// and returns the vendor's contact details. The event and counter are best
// effort; the contact payload only depends on the product fetch.
func (srv *productService) RecordContactView(ctx context.Context, userID uuid.UUID, productID uuid.UUID) (*usecase.ContactViewOutput, error) {
	product, err := srv.Get(ctx, productID)
	if err != nil {
		return nil, err
	}
	if product.Vendor == nil {
		return nil, domainerrors.ErrBusinessProfileNotFound
	}

	view := &entity.ContactView{
		ProductID:         product.ID,
		UserID:            userID,
		BusinessProfileID: product.OwnerID,
	}
	if recordErr := srv.contactViewRepo.Record(ctx, view); recordErr != nil {
		srv.log(ctx).Warn("Failed to record contact view", slog.Any("productID", productID), slog.Any("error", recordErr))
	}
	if incErr := srv.productRepo.IncrementViews(ctx, product.ID); incErr != nil {
		srv.log(ctx).Warn("Failed to increment product views", slog.Any("productID", productID), slog.Any("error", incErr))
	}

	return &usecase.ContactViewOutput{
		ProductID:      product.ID,
		BusinessName:   product.Vendor.BusinessName,
		BusinessPhone:  product.Vendor.BusinessPhone,
		WhatsappNumber: product.Vendor.WhatsappNumber,
		BusinessEmail:  product.Vendor.BusinessEmail,
		Address:        product.Vendor.Address,
	}, nil
}

// authorizeProductMutation allows the storefront owner or an admin actor.
func (srv *productService) authorizeProductMutation(ctx context.Context, actorID uuid.UUID, productID uuid.UUID) error {
	product, err := srv.productRepo.FindByID(ctx, productID)
	if err != nil {
		return translateRepoError(err)
	}
	if product.Status == entity.ProductStatusDeleted {
		return domainerrors.ErrProductNotFound
	}

	if product.Vendor != nil && product.Vendor.OwnerID == actorID {
		return nil
	}

	actor, err := srv.userRepo.FindByID(ctx, actorID)
	if err != nil {
		return translateRepoError(err)
	}
	if actor.Role != entity.RoleAdmin {
		srv.log(ctx).Warn("Product mutation denied", slog.Any("actorID", actorID), slog.Any("productID", productID))

		return domainerrors.ErrNotOwner
	}

	return nil
}

func buildProductFields(input *usecase.UpdateProductInput) map[string]any {
	fields := make(map[string]any)
	if input.Name != nil {
		fields["name"] = *input.Name
	}
	if input.Description != nil {
		fields["description"] = *input.Description
	}
	if input.Condition != nil {
		fields["condition"] = *input.Condition
	}
	if input.Price != nil {
		fields["price"] = *input.Price
	}
	if input.CategoryID != nil {
		fields["category_id"] = *input.CategoryID
	}
	if input.Images != nil {
		fields["images"] = input.Images
	}
	if input.Tags != nil {
		fields["tags"] = input.Tags
	}
	if input.Status != nil {
		fields["status"] = input.Status.String()
	}

	return fields
}
