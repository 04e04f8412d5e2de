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

// maxCategoryDepth bounds the ancestor walk so a corrupted parent cycle
// cannot loop forever.
const maxCategoryDepth = 32

// categoryService implements the CategoryUsecase interface.
type categoryService struct {
	categoryRepo   repository.CategoryRepository
	activityLogger usecase.ActivityLogger
	defaultLimit   int
	maxLimit       int
	logger         *slog.Logger
}

// CategoryServiceParams holds dependencies for categoryService, injected by Fx.
type CategoryServiceParams struct {
	fx.In

	CategoryRepo   repository.CategoryRepository
	ActivityLogger usecase.ActivityLogger
	Config         *config.Config
	Logger         *slog.Logger
}

// NewCategoryService is the constructor for categoryService.
func NewCategoryService(params CategoryServiceParams) usecase.CategoryUsecase {
	defaultLimit, maxLimit := 12, 100
	if params.Config != nil && params.Config.Listing != nil {
		defaultLimit = params.Config.Listing.DefaultLimit
		maxLimit = params.Config.Listing.MaxLimit
	}

	return &categoryService{
		categoryRepo:   params.CategoryRepo,
		activityLogger: params.ActivityLogger,
		defaultLimit:   defaultLimit,
		maxLimit:       maxLimit,
		logger:         params.Logger,
	}
}

func (srv *categoryService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *categoryService) List(ctx context.Context, input *usecase.ListCategoriesInput) (*usecase.CategoryListOutput, error) {
	filter := repository.CategoryListFilter{
		ParentID:     input.ParentID,
		TopLevelOnly: input.TopLevelOnly,
		Search:       input.Search,
	}
	page := repository.Pagination{Page: input.Page, Limit: input.Limit}.Normalize(srv.defaultLimit, srv.maxLimit)

	categories, total, err := srv.categoryRepo.List(ctx, filter, page)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list categories")
	}

	return &usecase.CategoryListOutput{
		Categories: categories,
		PageInfo:   repository.NewPageInfo(page, total),
	}, nil
}

// ListTopLevel returns the active root categories.
func (srv *categoryService) ListTopLevel(ctx context.Context, page repository.Pagination) (*usecase.CategoryListOutput, error) {
	return srv.List(ctx, &usecase.ListCategoriesInput{
		TopLevelOnly: true,
		Page:         page.Page,
		Limit:        page.Limit,
	})
}

func (srv *categoryService) Get(ctx context.Context, categoryID uuid.UUID) (*entity.Category, error) {
	category, err := srv.categoryRepo.FindByID(ctx, categoryID)
	if err != nil {
		return nil, translateRepoError(err)
	}

	return category, nil
}

// GetWithChildren returns a category with its direct children attached.
func (srv *categoryService) GetWithChildren(ctx context.Context, categoryID uuid.UUID) (*entity.Category, error) {
	category, err := srv.Get(ctx, categoryID)
	if err != nil {
		return nil, err
	}

	if err := srv.attachChildren(ctx, category); err != nil {
		return nil, err
	}

	return category, nil
}

// GetWithParents returns a category with its ancestor chain attached.
func (srv *categoryService) GetWithParents(ctx context.Context, categoryID uuid.UUID) (*entity.Category, error) {
	category, err := srv.Get(ctx, categoryID)
	if err != nil {
		return nil, err
	}

	if err := srv.attachParents(ctx, category); err != nil {
		return nil, err
	}

	return category, nil
}

// GetWithParentsAndChildren combines both traversals.
func (srv *categoryService) GetWithParentsAndChildren(ctx context.Context, categoryID uuid.UUID) (*entity.Category, error) {
	category, err := srv.Get(ctx, categoryID)
	if err != nil {
		return nil, err
	}

	if err := srv.attachParents(ctx, category); err != nil {
		return nil, err
	}
	if err := srv.attachChildren(ctx, category); err != nil {
		return nil, err
	}

	return category, nil
}

// Create adds a category node and records the action in the activity log.
func (srv *categoryService) Create(ctx context.Context, adminID uuid.UUID, input *usecase.CreateCategoryInput) (*entity.Category, error) {
	if input.ParentCategoryID != nil {
		if _, err := srv.categoryRepo.FindByID(ctx, *input.ParentCategoryID); err != nil {
			return nil, translateRepoError(err)
		}
	}

	category := &entity.Category{
		Name:             input.Name,
		Slug:             entity.Slugify(input.Name),
		Description:      input.Description,
		Icon:             input.Icon,
		Image:            input.Image,
		ParentCategoryID: input.ParentCategoryID,
		Status:           entity.CategoryStatusActive,
	}
	if err := srv.categoryRepo.Create(ctx, category); err != nil {
		return nil, translateRepoError(err)
	}

	srv.activityLogger.Log(ctx, &entity.AdminLog{
		AdminID:    adminID,
		Action:     entity.ActionCreateCategory,
		TargetID:   category.ID.String(),
		TargetType: entity.TargetTypeCategory,
		Details:    map[string]any{"name": category.Name, "slug": category.Slug},
	})

	srv.log(ctx).Info("Category created", slog.Any("categoryID", category.ID), slog.String("slug", category.Slug))

	return category, nil
}

// Update applies a whitelisted partial update.
func (srv *categoryService) Update(ctx context.Context, adminID uuid.UUID, categoryID uuid.UUID, input *usecase.UpdateCategoryInput) (*entity.Category, error) {
	fields := input.Fields()
	if len(fields) == 0 {
		return nil, domainerrors.ErrNoFieldsToUpdate
	}

	if input.ParentCategoryID != nil {
		if *input.ParentCategoryID == categoryID {
			return nil, domainerrors.ErrValidationFailed.WithDetails("a category cannot be its own parent")
		}
		if _, err := srv.categoryRepo.FindByID(ctx, *input.ParentCategoryID); err != nil {
			return nil, translateRepoError(err)
		}
	}

	updated, err := srv.categoryRepo.UpdateFields(ctx, categoryID, fields)
	if err != nil {
		return nil, translateRepoError(err)
	}

	srv.activityLogger.Log(ctx, &entity.AdminLog{
		AdminID:    adminID,
		Action:     entity.ActionUpdateCategory,
		TargetID:   categoryID.String(),
		TargetType: entity.TargetTypeCategory,
		Details:    map[string]any{"fields": fieldNames(fields)},
	})

	return updated, nil
}

// Delete soft-deletes a category.
func (srv *categoryService) Delete(ctx context.Context, adminID uuid.UUID, categoryID uuid.UUID) error {
	deleted, err := srv.categoryRepo.UpdateFields(ctx, categoryID, map[string]any{
		"status": entity.CategoryStatusDeleted.String(),
	})
	if err != nil {
		return translateRepoError(err)
	}

	srv.activityLogger.Log(ctx, &entity.AdminLog{
		AdminID:    adminID,
		Action:     entity.ActionDeleteCategory,
		TargetID:   categoryID.String(),
		TargetType: entity.TargetTypeCategory,
		Details:    map[string]any{"name": deleted.Name},
	})

	srv.log(ctx).Info("Category deleted", slog.Any("categoryID", categoryID))

	return nil
}

func (srv *categoryService) attachChildren(ctx context.Context, category *entity.Category) error {
	children, err := srv.categoryRepo.ListChildren(ctx, category.ID)
	if err != nil {
		return errors.Wrap(err, "failed to list child categories")
	}
	category.Children = children

	return nil
}

// attachParents walks parent_category_id up to the root, direct parent first.
func (srv *categoryService) attachParents(ctx context.Context, category *entity.Category) error {
	parentID := category.ParentCategoryID
	for depth := 0; parentID != nil && depth < maxCategoryDepth; depth++ {
		parent, err := srv.categoryRepo.FindByID(ctx, *parentID)
		if err != nil {
			if errors.Is(err, repository.ErrCategoryNotFound) {
				// Deleted ancestor ends the chain.
				break
			}

			return errors.Wrap(err, "failed to walk category ancestors")
		}

		category.Parents = append(category.Parents, parent)
		parentID = parent.ParentCategoryID
	}

	return nil
}

func fieldNames(fields map[string]any) []string {
	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}

	return names
}
