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

type productServiceFixture struct {
	productRepo     *mockRepo.MockProductRepository
	contactViewRepo *mockRepo.MockContactViewRepository
	businessRepo    *mockRepo.MockBusinessProfileRepository
	categoryRepo    *mockRepo.MockCategoryRepository
	userRepo        *mockRepo.MockUserRepository
	service         usecase.ProductUsecase
}

func newProductServiceFixture(t *testing.T) *productServiceFixture {
	f := &productServiceFixture{
		productRepo:     mockRepo.NewMockProductRepository(t),
		contactViewRepo: mockRepo.NewMockContactViewRepository(t),
		businessRepo:    mockRepo.NewMockBusinessProfileRepository(t),
		categoryRepo:    mockRepo.NewMockCategoryRepository(t),
		userRepo:        mockRepo.NewMockUserRepository(t),
	}
	f.service = NewProductService(ProductServiceParams{
		ProductRepo:     f.productRepo,
		ContactViewRepo: f.contactViewRepo,
		BusinessRepo:    f.businessRepo,
		CategoryRepo:    f.categoryRepo,
		UserRepo:        f.userRepo,
		Logger:          newDiscardLogger(),
	})

	return f
}

func TestProductService_List_NormalizesPagination(t *testing.T) {
	f := newProductServiceFixture(t)
	ctx := context.Background()

	f.productRepo.On("List", ctx, mock.Anything, repository.Pagination{Page: 1, Limit: 12}).
		Return([]*entity.Product{}, int64(0), nil)

	output, err := f.service.List(ctx, &usecase.ListProductsInput{Page: 0, Limit: 0})
	require.NoError(t, err)
	assert.Equal(t, 1, output.PageInfo.Page)
	assert.Equal(t, 12, output.PageInfo.Limit)
}

func TestProductService_ListByCategory_UsesChildrenWhenPresent(t *testing.T) {
	f := newProductServiceFixture(t)
	ctx := context.Background()
	parentID := uuid.New()
	childA := &entity.Category{ID: uuid.New()}
	childB := &entity.Category{ID: uuid.New()}

	f.categoryRepo.On("FindByID", ctx, parentID).
		Return(&entity.Category{ID: parentID}, nil)
	f.categoryRepo.On("ListChildren", ctx, parentID).
		Return([]*entity.Category{childA, childB}, nil)
	f.productRepo.On("List", ctx, mock.MatchedBy(func(filter repository.ProductListFilter) bool {
		return len(filter.CategoryIDs) == 2 &&
			filter.CategoryIDs[0] == childA.ID &&
			filter.CategoryIDs[1] == childB.ID
	}), mock.Anything).Return([]*entity.Product{}, int64(0), nil)

	_, err := f.service.ListByCategory(ctx, parentID, repository.Pagination{})
	require.NoError(t, err)
}

func TestProductService_ListByCategory_LeafQueriesItself(t *testing.T) {
	f := newProductServiceFixture(t)
	ctx := context.Background()
	leafID := uuid.New()

	f.categoryRepo.On("FindByID", ctx, leafID).
		Return(&entity.Category{ID: leafID}, nil)
	f.categoryRepo.On("ListChildren", ctx, leafID).
		Return([]*entity.Category{}, nil)
	f.productRepo.On("List", ctx, mock.MatchedBy(func(filter repository.ProductListFilter) bool {
		return len(filter.CategoryIDs) == 1 && filter.CategoryIDs[0] == leafID
	}), mock.Anything).Return([]*entity.Product{}, int64(0), nil)

	_, err := f.service.ListByCategory(ctx, leafID, repository.Pagination{})
	require.NoError(t, err)
}

func TestProductService_Get_DeletedListingStaysFetchableByID(t *testing.T) {
	f := newProductServiceFixture(t)
	ctx := context.Background()
	productID := uuid.New()

	f.productRepo.On("FindByID", ctx, productID).
		Return(&entity.Product{ID: productID, Status: entity.ProductStatusDeleted}, nil)

	product, err := f.service.Get(ctx, productID)
	require.NoError(t, err)
	assert.Equal(t, productID, product.ID)
	assert.Equal(t, entity.ProductStatusDeleted, product.Status)
}

func TestProductService_Create_RequiresVendorProfile(t *testing.T) {
	f := newProductServiceFixture(t)
	ctx := context.Background()
	userID := uuid.New()

	f.businessRepo.On("FindByOwner", ctx, userID).
		Return(nil, repository.ErrBusinessProfileNotFound)

	_, err := f.service.Create(ctx, userID, &usecase.CreateProductInput{Name: "Desk"})
	assert.ErrorIs(t, err, domainerrors.ErrVendorProfileRequired)
}

func TestProductService_Create_PendingProfileYieldsPendingProduct(t *testing.T) {
	f := newProductServiceFixture(t)
	ctx := context.Background()
	userID := uuid.New()
	profileID := uuid.New()

	f.businessRepo.On("FindByOwner", ctx, userID).
		Return(&entity.BusinessProfile{ID: profileID, OwnerID: userID, Status: entity.BusinessStatusPending}, nil)
	f.productRepo.On("Create", ctx, mock.AnythingOfType("*entity.Product")).Return(nil)

	product, err := f.service.Create(ctx, userID, &usecase.CreateProductInput{Name: "Desk", Price: 120})
	require.NoError(t, err)
	assert.Equal(t, entity.ProductStatusPending, product.Status)
	assert.Equal(t, profileID, product.OwnerID)
}

func TestProductService_Create_ActiveProfileYieldsActiveProduct(t *testing.T) {
	f := newProductServiceFixture(t)
	ctx := context.Background()
	userID := uuid.New()

	f.businessRepo.On("FindByOwner", ctx, userID).
		Return(&entity.BusinessProfile{ID: uuid.New(), OwnerID: userID, Status: entity.BusinessStatusActive}, nil)
	f.productRepo.On("Create", ctx, mock.AnythingOfType("*entity.Product")).Return(nil)

	product, err := f.service.Create(ctx, userID, &usecase.CreateProductInput{Name: "Desk", Price: 120})
	require.NoError(t, err)
	assert.Equal(t, entity.ProductStatusActive, product.Status)
}

func TestProductService_Update_DeniedForStrangers(t *testing.T) {
	f := newProductServiceFixture(t)
	ctx := context.Background()
	actorID := uuid.New()
	productID := uuid.New()
	name := "Renamed"

	f.productRepo.On("FindByID", ctx, productID).
		Return(&entity.Product{
			ID:     productID,
			Status: entity.ProductStatusActive,
			Vendor: &entity.BusinessProfile{OwnerID: uuid.New()},
		}, nil)
	f.userRepo.On("FindByID", ctx, actorID).
		Return(&entity.User{ID: actorID, Role: entity.RoleUser}, nil)

	_, err := f.service.Update(ctx, actorID, productID, &usecase.UpdateProductInput{Name: &name})
	assert.ErrorIs(t, err, domainerrors.ErrNotOwner)
}

func TestProductService_Update_AdminMayEditAnyListing(t *testing.T) {
	f := newProductServiceFixture(t)
	ctx := context.Background()
	adminID := uuid.New()
	productID := uuid.New()
	name := "Renamed"

	f.productRepo.On("FindByID", ctx, productID).
		Return(&entity.Product{
			ID:     productID,
			Status: entity.ProductStatusActive,
			Vendor: &entity.BusinessProfile{OwnerID: uuid.New()},
		}, nil)
	f.userRepo.On("FindByID", ctx, adminID).
		Return(&entity.User{ID: adminID, Role: entity.RoleAdmin}, nil)
	f.productRepo.On("UpdateFields", ctx, productID, map[string]any{"name": "Renamed"}).
		Return(&entity.Product{ID: productID, Name: "Renamed"}, nil)

	updated, err := f.service.Update(ctx, adminID, productID, &usecase.UpdateProductInput{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "Renamed", updated.Name)
}

func TestProductService_Update_RejectsDeletedStatus(t *testing.T) {
	f := newProductServiceFixture(t)
	ctx := context.Background()
	status := entity.ProductStatusDeleted

	_, err := f.service.Update(ctx, uuid.New(), uuid.New(), &usecase.UpdateProductInput{Status: &status})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidStatus)
}

func TestProductService_Update_EmptyPatch(t *testing.T) {
	f := newProductServiceFixture(t)
	ctx := context.Background()

	_, err := f.service.Update(ctx, uuid.New(), uuid.New(), &usecase.UpdateProductInput{})
	assert.ErrorIs(t, err, domainerrors.ErrNoFieldsToUpdate)
}

func TestProductService_Delete_SoftDeletes(t *testing.T) {
	f := newProductServiceFixture(t)
	ctx := context.Background()
	ownerID := uuid.New()
	productID := uuid.New()

	f.productRepo.On("FindByID", ctx, productID).
		Return(&entity.Product{
			ID:     productID,
			Status: entity.ProductStatusActive,
			Vendor: &entity.BusinessProfile{OwnerID: ownerID},
		}, nil)
	f.productRepo.On("UpdateFields", ctx, productID, map[string]any{"status": "deleted"}).
		Return(&entity.Product{ID: productID, Status: entity.ProductStatusDeleted}, nil)

	err := f.service.Delete(ctx, ownerID, productID)
	assert.NoError(t, err)
}

func TestProductService_RecordContactView_ReturnsVendorContact(t *testing.T) {
	f := newProductServiceFixture(t)
	ctx := context.Background()
	userID := uuid.New()
	productID := uuid.New()
	profileID := uuid.New()

	f.productRepo.On("FindByID", ctx, productID).
		Return(&entity.Product{
			ID:      productID,
			OwnerID: profileID,
			Status:  entity.ProductStatusActive,
			Vendor: &entity.BusinessProfile{
				ID:             profileID,
				BusinessName:   "Oak & Co",
				BusinessPhone:  "+15550100",
				WhatsappNumber: "+15550101",
				BusinessEmail:  "sales@oak.example",
				Address:        "12 Main St",
			},
		}, nil)
	f.contactViewRepo.On("Record", ctx, mock.MatchedBy(func(view *entity.ContactView) bool {
		return view.ProductID == productID && view.UserID == userID && view.BusinessProfileID == profileID
	})).Return(nil)
	f.productRepo.On("IncrementViews", ctx, productID).Return(nil)

	output, err := f.service.RecordContactView(ctx, userID, productID)
	require.NoError(t, err)
	assert.Equal(t, "Oak & Co", output.BusinessName)
	assert.Equal(t, "+15550100", output.BusinessPhone)
	assert.Equal(t, "12 Main St", output.Address)
}

func TestProductService_RecordContactView_AnalyticsFailureIsSwallowed(t *testing.T) {
	f := newProductServiceFixture(t)
	ctx := context.Background()
	userID := uuid.New()
	productID := uuid.New()

	f.productRepo.On("FindByID", ctx, productID).
		Return(&entity.Product{
			ID:      productID,
			OwnerID: uuid.New(),
			Status:  entity.ProductStatusActive,
			Vendor:  &entity.BusinessProfile{BusinessName: "Oak & Co"},
		}, nil)
	f.contactViewRepo.On("Record", ctx, mock.Anything).Return(assert.AnError)
	f.productRepo.On("IncrementViews", ctx, productID).Return(assert.AnError)

	output, err := f.service.RecordContactView(ctx, userID, productID)
	require.NoError(t, err)
	assert.Equal(t, "Oak & Co", output.BusinessName)
}
