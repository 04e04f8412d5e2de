package impl

import (
	"context"
	"testing"
	"time"

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

type adminServiceFixture struct {
	userRepo       *mockRepo.MockUserRepository
	businessRepo   *mockRepo.MockBusinessProfileRepository
	productRepo    *mockRepo.MockProductRepository
	adminLogRepo   *mockRepo.MockAdminLogRepository
	activityLogger *recordingActivityLogger
	service        usecase.AdminUsecase
}

func newAdminServiceFixture(t *testing.T) *adminServiceFixture {
	f := &adminServiceFixture{
		userRepo:       mockRepo.NewMockUserRepository(t),
		businessRepo:   mockRepo.NewMockBusinessProfileRepository(t),
		productRepo:    mockRepo.NewMockProductRepository(t),
		adminLogRepo:   mockRepo.NewMockAdminLogRepository(t),
		activityLogger: &recordingActivityLogger{},
	}
	txManager := &mockRepo.StubTransactionManager{
		Factory: &mockRepo.StubRepositoryFactory{
			Users:      f.userRepo,
			Businesses: f.businessRepo,
		},
	}
	f.service = NewAdminService(AdminServiceParams{
		TxManager:      txManager,
		UserRepo:       f.userRepo,
		BusinessRepo:   f.businessRepo,
		ProductRepo:    f.productRepo,
		AdminLogRepo:   f.adminLogRepo,
		ActivityLogger: f.activityLogger,
		Logger:         newDiscardLogger(),
	})

	return f
}

func TestAdminService_UpdateUserStatus_RecordsActivity(t *testing.T) {
	f := newAdminServiceFixture(t)
	ctx := context.Background()
	adminID := uuid.New()
	userID := uuid.New()

	f.userRepo.On("UpdateFields", ctx, userID, map[string]any{
		"status":               "suspended",
		"status_update_reason": "spamming listings",
	}).Return(&entity.User{ID: userID, Status: entity.UserStatusSuspended}, nil)

	updated, err := f.service.UpdateUserStatus(ctx, adminID, userID, &usecase.UpdateUserStatusInput{
		Status: entity.UserStatusSuspended,
		Reason: "spamming listings",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.UserStatusSuspended, updated.Status)

	entries := f.activityLogger.recorded()
	require.Len(t, entries, 1)
	assert.Equal(t, entity.ActionUpdateUserStatus, entries[0].Action)
	assert.Equal(t, userID.String(), entries[0].TargetID)
}

func TestAdminService_UpdateUserStatus_RejectsUnknownStatus(t *testing.T) {
	f := newAdminServiceFixture(t)
	ctx := context.Background()

	_, err := f.service.UpdateUserStatus(ctx, uuid.New(), uuid.New(), &usecase.UpdateUserStatusInput{
		Status: entity.UserStatus("frozen"),
	})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidStatus)
	assert.Empty(t, f.activityLogger.recorded())
}

func TestAdminService_UpdateBusinessStatus_ActivationGrantsVendorRole(t *testing.T) {
	f := newAdminServiceFixture(t)
	ctx := context.Background()
	adminID := uuid.New()
	profileID := uuid.New()
	ownerID := uuid.New()

	f.businessRepo.On("UpdateFields", ctx, profileID, map[string]any{
		"status":               "active",
		"status_update_reason": "",
	}).Return(&entity.BusinessProfile{ID: profileID, OwnerID: ownerID, Status: entity.BusinessStatusActive}, nil)
	f.userRepo.On("UpdateRole", ctx, ownerID, entity.RoleVendor).Return(nil)

	updated, err := f.service.UpdateBusinessStatus(ctx, adminID, profileID, &usecase.UpdateBusinessStatusInput{
		Status: entity.BusinessStatusActive,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.BusinessStatusActive, updated.Status)

	entries := f.activityLogger.recorded()
	require.Len(t, entries, 1)
	assert.Equal(t, entity.ActionUpdateBusinessStatus, entries[0].Action)
}

func TestAdminService_UpdateBusinessStatus_RejectionRevertsOwnerRole(t *testing.T) {
	f := newAdminServiceFixture(t)
	ctx := context.Background()
	profileID := uuid.New()
	ownerID := uuid.New()

	f.businessRepo.On("UpdateFields", ctx, profileID, map[string]any{
		"status":               "rejected",
		"status_update_reason": "incomplete documents",
	}).Return(&entity.BusinessProfile{ID: profileID, OwnerID: ownerID, Status: entity.BusinessStatusRejected}, nil)
	f.userRepo.On("UpdateRole", ctx, ownerID, entity.RoleUser).Return(nil)

	_, err := f.service.UpdateBusinessStatus(ctx, uuid.New(), profileID, &usecase.UpdateBusinessStatusInput{
		Status: entity.BusinessStatusRejected,
		Reason: "incomplete documents",
	})
	require.NoError(t, err)
}

func TestAdminService_UpdateBusinessStatus_PendingKeepsOwnerRole(t *testing.T) {
	f := newAdminServiceFixture(t)
	ctx := context.Background()
	profileID := uuid.New()

	f.businessRepo.On("UpdateFields", ctx, profileID, mock.Anything).
		Return(&entity.BusinessProfile{ID: profileID, OwnerID: uuid.New(), Status: entity.BusinessStatusPending}, nil)

	_, err := f.service.UpdateBusinessStatus(ctx, uuid.New(), profileID, &usecase.UpdateBusinessStatusInput{
		Status: entity.BusinessStatusPending,
	})
	require.NoError(t, err)
	f.userRepo.AssertNotCalled(t, "UpdateRole", mock.Anything, mock.Anything, mock.Anything)
}

func TestAdminService_UpdateBusinessStatus_RoleFlipFailureAborts(t *testing.T) {
	f := newAdminServiceFixture(t)
	ctx := context.Background()
	profileID := uuid.New()
	ownerID := uuid.New()

	f.businessRepo.On("UpdateFields", ctx, profileID, mock.Anything).
		Return(&entity.BusinessProfile{ID: profileID, OwnerID: ownerID, Status: entity.BusinessStatusActive}, nil)
	f.userRepo.On("UpdateRole", ctx, ownerID, entity.RoleVendor).Return(assert.AnError)

	_, err := f.service.UpdateBusinessStatus(ctx, uuid.New(), profileID, &usecase.UpdateBusinessStatusInput{
		Status: entity.BusinessStatusActive,
	})
	assert.Error(t, err)
	assert.Empty(t, f.activityLogger.recorded())
}

func TestAdminService_ListPendingVerification_FixesStatusFilter(t *testing.T) {
	f := newAdminServiceFixture(t)
	ctx := context.Background()

	f.businessRepo.On("List", ctx, mock.MatchedBy(func(filter repository.BusinessListFilter) bool {
		return filter.Status != nil && *filter.Status == entity.BusinessStatusPending && filter.WithOwner
	}), mock.Anything).Return([]*entity.BusinessProfile{}, int64(0), nil)

	_, err := f.service.ListPendingVerification(ctx, repository.Pagination{})
	require.NoError(t, err)
}

func TestAdminService_Stats_AggregatesAllThreeDomains(t *testing.T) {
	f := newAdminServiceFixture(t)
	ctx := context.Background()

	f.userRepo.On("CountByRoleStatus", ctx).Return([]repository.RoleStatusCount{
		{Role: entity.RoleUser, Status: entity.UserStatusActive, Count: 10},
	}, nil)
	f.businessRepo.On("CountByStatus", ctx).Return([]repository.StatusCount[entity.BusinessStatus]{
		{Status: entity.BusinessStatusActive, Count: 3},
	}, nil)
	f.productRepo.On("CountByStatus", ctx).Return([]repository.StatusCount[entity.ProductStatus]{
		{Status: entity.ProductStatusActive, Count: 42},
	}, nil)

	stats, err := f.service.Stats(ctx)
	require.NoError(t, err)
	assert.Len(t, stats.Users, 1)
	assert.Len(t, stats.BusinessProfiles, 1)
	assert.Len(t, stats.Products, 1)
}

func TestAdminService_RecentActivity_AppliesDefaults(t *testing.T) {
	f := newAdminServiceFixture(t)
	ctx := context.Background()

	f.adminLogRepo.On("ListRecent", ctx, mock.MatchedBy(func(since time.Time) bool {
		expected := time.Now().AddDate(0, 0, -30)

		return since.Sub(expected).Abs() < time.Minute
	}), "", 50).Return([]*entity.AdminLog{}, nil)

	_, err := f.service.RecentActivity(ctx, &usecase.RecentActivityInput{})
	require.NoError(t, err)
}

func TestAdminService_RecentActivity_CapsLimit(t *testing.T) {
	f := newAdminServiceFixture(t)
	ctx := context.Background()

	f.adminLogRepo.On("ListRecent", ctx, mock.Anything, "", 100).
		Return([]*entity.AdminLog{}, nil)

	_, err := f.service.RecentActivity(ctx, &usecase.RecentActivityInput{Limit: 500})
	require.NoError(t, err)
}
