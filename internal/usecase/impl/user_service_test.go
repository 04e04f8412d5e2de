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
	"github.com/stretchr/testify/require"
)

type userServiceFixture struct {
	userRepo         *mockRepo.MockUserRepository
	refreshTokenRepo *mockRepo.MockRefreshTokenRepository
	service          usecase.UserUsecase
}

func newUserServiceFixture(t *testing.T) *userServiceFixture {
	f := &userServiceFixture{
		userRepo:         mockRepo.NewMockUserRepository(t),
		refreshTokenRepo: mockRepo.NewMockRefreshTokenRepository(t),
	}
	f.service = NewUserService(UserServiceParams{
		UserRepo:         f.userRepo,
		RefreshTokenRepo: f.refreshTokenRepo,
		Logger:           newDiscardLogger(),
	})

	return f
}

func TestUserService_GetMe_ReturnsOwnAccount(t *testing.T) {
	f := newUserServiceFixture(t)
	ctx := context.Background()
	userID := uuid.New()

	f.userRepo.On("FindByID", ctx, userID).
		Return(&entity.User{ID: userID, Email: "jane@example.com"}, nil)

	user, err := f.service.GetMe(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, "jane@example.com", user.Email)
}

func TestUserService_GetByID_HidesDeletedAccounts(t *testing.T) {
	f := newUserServiceFixture(t)
	ctx := context.Background()
	userID := uuid.New()

	f.userRepo.On("FindByID", ctx, userID).
		Return(&entity.User{ID: userID, Status: entity.UserStatusDeleted}, nil)

	_, err := f.service.GetByID(ctx, userID)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestUserService_GetByID_TranslatesMissingRow(t *testing.T) {
	f := newUserServiceFixture(t)
	ctx := context.Background()
	userID := uuid.New()

	f.userRepo.On("FindByID", ctx, userID).Return(nil, repository.ErrUserNotFound)

	_, err := f.service.GetByID(ctx, userID)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestUserService_UpdateMe_WhitelistsFields(t *testing.T) {
	f := newUserServiceFixture(t)
	ctx := context.Background()
	userID := uuid.New()
	firstName := "Janet"
	whatsapp := "+15550102"

	f.userRepo.On("UpdateFields", ctx, userID, map[string]any{
		"first_name":      firstName,
		"whatsapp_number": whatsapp,
	}).Return(&entity.User{ID: userID, FirstName: firstName, WhatsappNumber: whatsapp}, nil)

	updated, err := f.service.UpdateMe(ctx, userID, &usecase.UpdateUserInput{
		FirstName:      &firstName,
		WhatsappNumber: &whatsapp,
	})
	require.NoError(t, err)
	assert.Equal(t, firstName, updated.FirstName)
}

func TestUserService_UpdateMe_EmptyPatch(t *testing.T) {
	f := newUserServiceFixture(t)
	ctx := context.Background()

	_, err := f.service.UpdateMe(ctx, uuid.New(), &usecase.UpdateUserInput{})
	assert.ErrorIs(t, err, domainerrors.ErrNoFieldsToUpdate)
}

func TestUserService_DeleteMe_SoftDeletesAndRevokesSessions(t *testing.T) {
	f := newUserServiceFixture(t)
	ctx := context.Background()
	userID := uuid.New()

	f.userRepo.On("UpdateFields", ctx, userID, map[string]any{"status": "deleted"}).
		Return(&entity.User{ID: userID, Status: entity.UserStatusDeleted}, nil)
	f.refreshTokenRepo.On("DeleteByUser", ctx, userID).Return(nil)

	err := f.service.DeleteMe(ctx, userID)
	assert.NoError(t, err)
}
