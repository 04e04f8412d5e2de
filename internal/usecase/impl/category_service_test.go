package impl

import (
	"context"
	"testing"

	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/repository"
	mockRepo "marketplace/internal/mocks/repository"
	"marketplace/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type categoryServiceFixture struct {
	categoryRepo   *mockRepo.MockCategoryRepository
	activityLogger *recordingActivityLogger
	service        usecase.CategoryUsecase
}

func newCategoryServiceFixture(t *testing.T) *categoryServiceFixture {
	f := &categoryServiceFixture{
		categoryRepo:   mockRepo.NewMockCategoryRepository(t),
		activityLogger: &recordingActivityLogger{},
	}
	f.service = NewCategoryService(CategoryServiceParams{
		CategoryRepo:   f.categoryRepo,
		ActivityLogger: f.activityLogger,
		Logger:         newDiscardLogger(),
	})

	return f
}

func TestCategoryService_ListTopLevel_RestrictsToRoots(t *testing.T) {
	f := newCategoryServiceFixture(t)
	ctx := context.Background()

	f.categoryRepo.On("List", ctx, mock.MatchedBy(func(filter repository.CategoryListFilter) bool {
		return filter.TopLevelOnly
	}), mock.Anything).Return([]*entity.Category{}, int64(0), nil)

	_, err := f.service.ListTopLevel(ctx, repository.Pagination{})
	require.NoError(t, err)
}

func TestCategoryService_GetWithParents_WalksAncestorChain(t *testing.T) {
	f := newCategoryServiceFixture(t)
	ctx := context.Background()
	rootID := uuid.New()
	midID := uuid.New()
	leafID := uuid.New()

	f.categoryRepo.On("FindByID", ctx, leafID).
		Return(&entity.Category{ID: leafID, Name: "Desks", ParentCategoryID: &midID}, nil)
	f.categoryRepo.On("FindByID", ctx, midID).
		Return(&entity.Category{ID: midID, Name: "Office", ParentCategoryID: &rootID}, nil)
	f.categoryRepo.On("FindByID", ctx, rootID).
		Return(&entity.Category{ID: rootID, Name: "Furniture"}, nil)

	category, err := f.service.GetWithParents(ctx, leafID)
	require.NoError(t, err)
	require.Len(t, category.Parents, 2)
	assert.Equal(t, "Office", category.Parents[0].Name)
	assert.Equal(t, "Furniture", category.Parents[1].Name)
}

func TestCategoryService_GetWithParents_DeletedAncestorEndsChain(t *testing.T) {
	f := newCategoryServiceFixture(t)
	ctx := context.Background()
	goneID := uuid.New()
	leafID := uuid.New()

	f.categoryRepo.On("FindByID", ctx, leafID).
		Return(&entity.Category{ID: leafID, ParentCategoryID: &goneID}, nil)
	f.categoryRepo.On("FindByID", ctx, goneID).
		Return(nil, repository.ErrCategoryNotFound)

	category, err := f.service.GetWithParents(ctx, leafID)
	require.NoError(t, err)
	assert.Empty(t, category.Parents)
}

func TestCategoryService_GetWithParents_BoundedAgainstCycles(t *testing.T) {
	f := newCategoryServiceFixture(t)
	ctx := context.Background()
	aID := uuid.New()
	bID := uuid.New()

	f.categoryRepo.On("FindByID", ctx, aID).
		Return(&entity.Category{ID: aID, ParentCategoryID: &bID}, nil)
	f.categoryRepo.On("FindByID", ctx, bID).
		Return(&entity.Category{ID: bID, ParentCategoryID: &aID}, nil)

	category, err := f.service.GetWithParents(ctx, aID)
	require.NoError(t, err)
	assert.Len(t, category.Parents, maxCategoryDepth)
}

func TestCategoryService_GetWithChildren_QueriesChildren(t *testing.T) {
	f := newCategoryServiceFixture(t)
	ctx := context.Background()
	parentID := uuid.New()

	f.categoryRepo.On("FindByID", ctx, parentID).
		Return(&entity.Category{ID: parentID}, nil)
	f.categoryRepo.On("ListChildren", ctx, parentID).
		Return([]*entity.Category{{ID: uuid.New(), Name: "Desks"}}, nil)

	category, err := f.service.GetWithChildren(ctx, parentID)
	require.NoError(t, err)
	require.Len(t, category.Children, 1)
	assert.Equal(t, "Desks", category.Children[0].Name)
}

func TestCategoryService_Create_DerivesSlugAndLogsActivity(t *testing.T) {
	f := newCategoryServiceFixture(t)
	ctx := context.Background()
	adminID := uuid.New()

	f.categoryRepo.On("Create", ctx, mock.AnythingOfType("*entity.Category")).
		Run(func(args mock.Arguments) {
			args.Get(1).(*entity.Category).ID = uuid.New()
		}).
		Return(nil)

	category, err := f.service.Create(ctx, adminID, &usecase.CreateCategoryInput{Name: "Home Office"})
	require.NoError(t, err)
	assert.Equal(t, "home-office", category.Slug)
	assert.Equal(t, entity.CategoryStatusActive, category.Status)

	entries := f.activityLogger.recorded()
	require.Len(t, entries, 1)
	assert.Equal(t, entity.ActionCreateCategory, entries[0].Action)
	assert.Equal(t, adminID, entries[0].AdminID)
}

func TestCategoryService_Create_RejectsMissingParent(t *testing.T) {
	f := newCategoryServiceFixture(t)
	ctx := context.Background()
	parentID := uuid.New()

	f.categoryRepo.On("FindByID", ctx, parentID).
		Return(nil, repository.ErrCategoryNotFound)

	_, err := f.service.Create(ctx, uuid.New(), &usecase.CreateCategoryInput{
		Name:             "Orphan",
		ParentCategoryID: &parentID,
	})
	assert.ErrorIs(t, err, domainerrors.ErrCategoryNotFound)
	assert.Empty(t, f.activityLogger.recorded())
}

func TestCategoryService_Update_RejectsSelfParent(t *testing.T) {
	f := newCategoryServiceFixture(t)
	ctx := context.Background()
	categoryID := uuid.New()

	_, err := f.service.Update(ctx, uuid.New(), categoryID, &usecase.UpdateCategoryInput{
		ParentCategoryID: &categoryID,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestCategoryService_Update_RenameRegeneratesSlug(t *testing.T) {
	f := newCategoryServiceFixture(t)
	ctx := context.Background()
	categoryID := uuid.New()
	name := "Office Chairs"

	f.categoryRepo.On("UpdateFields", ctx, categoryID, map[string]any{
		"name": name,
		"slug": "office-chairs",
	}).Return(&entity.Category{ID: categoryID, Name: name, Slug: "office-chairs"}, nil)

	updated, err := f.service.Update(ctx, uuid.New(), categoryID, &usecase.UpdateCategoryInput{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "office-chairs", updated.Slug)
	assert.Len(t, f.activityLogger.recorded(), 1)
}

func TestCategoryService_Delete_SoftDeletesAndLogs(t *testing.T) {
	f := newCategoryServiceFixture(t)
	ctx := context.Background()
	categoryID := uuid.New()

	f.categoryRepo.On("UpdateFields", ctx, categoryID, map[string]any{"status": "deleted"}).
		Return(&entity.Category{ID: categoryID, Name: "Desks", Status: entity.CategoryStatusDeleted}, nil)

	err := f.service.Delete(ctx, uuid.New(), categoryID)
	require.NoError(t, err)

	entries := f.activityLogger.recorded()
	require.Len(t, entries, 1)
	assert.Equal(t, entity.ActionDeleteCategory, entries[0].Action)
}
