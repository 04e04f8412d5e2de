package impl

import (
	"context"
	"strings"
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

type businessServiceFixture struct {
	userRepo     *mockRepo.MockUserRepository
	businessRepo *mockRepo.MockBusinessProfileRepository
	service      usecase.BusinessUsecase
}

func newBusinessServiceFixture(t *testing.T) *businessServiceFixture {
	f := &businessServiceFixture{
		userRepo:     mockRepo.NewMockUserRepository(t),
		businessRepo: mockRepo.NewMockBusinessProfileRepository(t),
	}
	txManager := &mockRepo.StubTransactionManager{
		Factory: &mockRepo.StubRepositoryFactory{
			Users:      f.userRepo,
			Businesses: f.businessRepo,
		},
	}
	f.service = NewBusinessService(BusinessServiceParams{
		TxManager:    txManager,
		UserRepo:     f.userRepo,
		BusinessRepo: f.businessRepo,
		Logger:       newDiscardLogger(),
	})

	return f
}

func TestBusinessService_Create_StartsPendingWithDerivedSlug(t *testing.T) {
	f := newBusinessServiceFixture(t)
	ctx := context.Background()
	ownerID := uuid.New()

	f.businessRepo.On("FindByOwner", ctx, ownerID).
		Return(nil, repository.ErrBusinessProfileNotFound)
	f.businessRepo.On("Create", ctx, mock.AnythingOfType("*entity.BusinessProfile")).Return(nil)

	profile, err := f.service.Create(ctx, ownerID, &usecase.CreateBusinessProfileInput{
		BusinessName: "Oak & Co Furniture",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.BusinessStatusPending, profile.Status)
	assert.Equal(t, "oak-co-furniture", profile.Slug)
	assert.Equal(t, ownerID, profile.OwnerID)
}

func TestBusinessService_Create_OnePerUser(t *testing.T) {
	f := newBusinessServiceFixture(t)
	ctx := context.Background()
	ownerID := uuid.New()

	f.businessRepo.On("FindByOwner", ctx, ownerID).
		Return(&entity.BusinessProfile{ID: uuid.New(), OwnerID: ownerID}, nil)

	_, err := f.service.Create(ctx, ownerID, &usecase.CreateBusinessProfileInput{
		BusinessName: "Second Shop",
	})
	assert.ErrorIs(t, err, domainerrors.ErrBusinessProfileExists)
}

func TestBusinessService_Create_ConcurrentOwnerConflictYieldsExists(t *testing.T) {
	f := newBusinessServiceFixture(t)
	ctx := context.Background()
	ownerID := uuid.New()

	// A concurrent request inserts between the existence check and our
	// insert; the owner unique index rejects the second row.
	f.businessRepo.On("FindByOwner", ctx, ownerID).
		Return(nil, repository.ErrBusinessProfileNotFound)
	f.businessRepo.On("Create", ctx, mock.AnythingOfType("*entity.BusinessProfile")).
		Return(repository.ErrDuplicateBusinessOwner)

	_, err := f.service.Create(ctx, ownerID, &usecase.CreateBusinessProfileInput{
		BusinessName: "Oak Co",
	})
	assert.ErrorIs(t, err, domainerrors.ErrBusinessProfileExists)
}

func TestBusinessService_Create_SlugCollisionRetriesWithSuffix(t *testing.T) {
	f := newBusinessServiceFixture(t)
	ctx := context.Background()
	ownerID := uuid.New()

	f.businessRepo.On("FindByOwner", ctx, ownerID).
		Return(nil, repository.ErrBusinessProfileNotFound)
	f.businessRepo.On("Create", ctx, mock.MatchedBy(func(profile *entity.BusinessProfile) bool {
		return profile.Slug == "oak-co"
	})).Return(repository.ErrDuplicateBusinessSlug).Once()
	f.businessRepo.On("Create", ctx, mock.MatchedBy(func(profile *entity.BusinessProfile) bool {
		return strings.HasPrefix(profile.Slug, "oak-co-") && len(profile.Slug) > len("oak-co-")
	})).Return(nil).Once()

	profile, err := f.service.Create(ctx, ownerID, &usecase.CreateBusinessProfileInput{
		BusinessName: "Oak Co",
	})
	require.NoError(t, err)
	assert.NotEqual(t, "oak-co", profile.Slug)
}

func TestBusinessService_Update_OwnerMayEdit(t *testing.T) {
	f := newBusinessServiceFixture(t)
	ctx := context.Background()
	ownerID := uuid.New()
	profileID := uuid.New()
	description := "Handmade oak furniture"

	f.businessRepo.On("FindByID", ctx, profileID).
		Return(&entity.BusinessProfile{ID: profileID, OwnerID: ownerID}, nil)
	f.businessRepo.On("UpdateFields", ctx, profileID, map[string]any{"description": description}).
		Return(&entity.BusinessProfile{ID: profileID, OwnerID: ownerID, Description: description}, nil)

	updated, err := f.service.Update(ctx, ownerID, profileID, &usecase.UpdateBusinessProfileInput{
		Description: &description,
	})
	require.NoError(t, err)
	assert.Equal(t, description, updated.Description)
}

func TestBusinessService_Update_AdminMayEditAnyProfile(t *testing.T) {
	f := newBusinessServiceFixture(t)
	ctx := context.Background()
	adminID := uuid.New()
	profileID := uuid.New()
	address := "14 Elm St"

	f.businessRepo.On("FindByID", ctx, profileID).
		Return(&entity.BusinessProfile{ID: profileID, OwnerID: uuid.New()}, nil)
	f.userRepo.On("FindByID", ctx, adminID).
		Return(&entity.User{ID: adminID, Role: entity.RoleAdmin}, nil)
	f.businessRepo.On("UpdateFields", ctx, profileID, map[string]any{"address": address}).
		Return(&entity.BusinessProfile{ID: profileID, Address: address}, nil)

	_, err := f.service.Update(ctx, adminID, profileID, &usecase.UpdateBusinessProfileInput{
		Address: &address,
	})
	require.NoError(t, err)
}

func TestBusinessService_Update_DeniedForStrangers(t *testing.T) {
	f := newBusinessServiceFixture(t)
	ctx := context.Background()
	actorID := uuid.New()
	profileID := uuid.New()
	address := "14 Elm St"

	f.businessRepo.On("FindByID", ctx, profileID).
		Return(&entity.BusinessProfile{ID: profileID, OwnerID: uuid.New()}, nil)
	f.userRepo.On("FindByID", ctx, actorID).
		Return(&entity.User{ID: actorID, Role: entity.RoleUser}, nil)

	_, err := f.service.Update(ctx, actorID, profileID, &usecase.UpdateBusinessProfileInput{
		Address: &address,
	})
	assert.ErrorIs(t, err, domainerrors.ErrNotOwner)
}

func TestBusinessService_Update_EmptyPatch(t *testing.T) {
	f := newBusinessServiceFixture(t)
	ctx := context.Background()

	_, err := f.service.Update(ctx, uuid.New(), uuid.New(), &usecase.UpdateBusinessProfileInput{})
	assert.ErrorIs(t, err, domainerrors.ErrNoFieldsToUpdate)
}
