package impl

import (
	"context"
	"testing"
	"time"

	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/repository"
	"marketplace/internal/domain/service"
	mockRepo "marketplace/internal/mocks/repository"
	mockSvc "marketplace/internal/mocks/service"
	"marketplace/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type authServiceFixture struct {
	userRepo         *mockRepo.MockUserRepository
	authRepo         *mockRepo.MockAuthRepository
	refreshTokenRepo *mockRepo.MockRefreshTokenRepository
	hasher           *mockSvc.MockPasswordHasher
	tokenService     *mockSvc.MockTokenService
	service          usecase.AuthUsecase
}

func newAuthServiceFixture(t *testing.T) *authServiceFixture {
	f := &authServiceFixture{
		userRepo:         mockRepo.NewMockUserRepository(t),
		authRepo:         mockRepo.NewMockAuthRepository(t),
		refreshTokenRepo: mockRepo.NewMockRefreshTokenRepository(t),
		hasher:           mockSvc.NewMockPasswordHasher(t),
		tokenService:     mockSvc.NewMockTokenService(t),
	}
	txManager := &mockRepo.StubTransactionManager{
		Factory: &mockRepo.StubRepositoryFactory{
			Users:         f.userRepo,
			Auths:         f.authRepo,
			RefreshTokens: f.refreshTokenRepo,
		},
	}
	f.service = NewAuthService(AuthServiceParams{
		TxManager:        txManager,
		UserRepo:         f.userRepo,
		AuthRepo:         f.authRepo,
		RefreshTokenRepo: f.refreshTokenRepo,
		Hasher:           f.hasher,
		TokenService:     f.tokenService,
		Logger:           newDiscardLogger(),
	})

	return f
}

func TestAuthService_Register_CreatesUserAndCredential(t *testing.T) {
	f := newAuthServiceFixture(t)
	ctx := context.Background()

	f.hasher.On("Hash", "secret123").Return("hashed", nil)
	f.authRepo.On("FindAuthentication", ctx, entity.ProviderTypeEmail, "jane@example.com").
		Return(nil, repository.ErrAuthNotFound)
	f.userRepo.On("Create", ctx, mock.AnythingOfType("*entity.User")).
		Run(func(args mock.Arguments) {
			args.Get(1).(*entity.User).ID = uuid.New()
		}).
		Return(nil)
	f.authRepo.On("CreateAuthentication", ctx, mock.MatchedBy(func(auth *entity.Authentication) bool {
		return auth.Provider == entity.ProviderTypeEmail &&
			auth.ProviderUserID == "jane@example.com" &&
			auth.PasswordHash == "hashed"
	})).Return(nil)

	output, err := f.service.Register(ctx, &usecase.RegisterInput{
		FirstName: "Jane",
		LastName:  "Doe",
		Email:     "jane@example.com",
		Password:  "secret123",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleUser, output.User.Role)
	assert.Equal(t, entity.UserStatusActive, output.User.Status)
	assert.NotEqual(t, uuid.Nil, output.User.ID)
}

func TestAuthService_Register_EmailAlreadyTaken(t *testing.T) {
	f := newAuthServiceFixture(t)
	ctx := context.Background()

	f.hasher.On("Hash", "secret123").Return("hashed", nil)
	f.authRepo.On("FindAuthentication", ctx, entity.ProviderTypeEmail, "jane@example.com").
		Return(&entity.Authentication{UserID: uuid.New()}, nil)

	_, err := f.service.Register(ctx, &usecase.RegisterInput{
		FirstName: "Jane",
		LastName:  "Doe",
		Email:     "jane@example.com",
		Password:  "secret123",
	})
	assert.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
}

func TestAuthService_Login_Success(t *testing.T) {
	f := newAuthServiceFixture(t)
	ctx := context.Background()
	userID := uuid.New()

	f.authRepo.On("FindAuthentication", ctx, entity.ProviderTypeEmail, "jane@example.com").
		Return(&entity.Authentication{UserID: userID, PasswordHash: "hashed"}, nil)
	f.hasher.On("Check", "secret123", "hashed").Return(true)
	f.userRepo.On("FindByID", ctx, userID).
		Return(&entity.User{ID: userID, Status: entity.UserStatusActive}, nil)
	f.tokenService.On("GenerateTokens", userID).Return("access", "refresh", nil)
	f.tokenService.On("HashToken", "refresh").Return("refresh-hash")
	f.tokenService.On("RefreshTokenDuration").Return(24 * time.Hour)
	f.refreshTokenRepo.On("Create", ctx, mock.MatchedBy(func(token *entity.RefreshToken) bool {
		return token.UserID == userID && token.TokenHash == "refresh-hash"
	})).Return(nil)

	output, err := f.service.Login(ctx, &usecase.LoginInput{Email: "jane@example.com", Password: "secret123"})
	require.NoError(t, err)
	assert.Equal(t, "access", output.AccessToken)
	assert.Equal(t, "refresh", output.RefreshToken)
	assert.Equal(t, userID, output.User.ID)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	f := newAuthServiceFixture(t)
	ctx := context.Background()

	f.authRepo.On("FindAuthentication", ctx, entity.ProviderTypeEmail, "jane@example.com").
		Return(&entity.Authentication{UserID: uuid.New(), PasswordHash: "hashed"}, nil)
	f.hasher.On("Check", "wrong", "hashed").Return(false)

	_, err := f.service.Login(ctx, &usecase.LoginInput{Email: "jane@example.com", Password: "wrong"})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	f := newAuthServiceFixture(t)
	ctx := context.Background()

	f.authRepo.On("FindAuthentication", ctx, entity.ProviderTypeEmail, "ghost@example.com").
		Return(nil, repository.ErrAuthNotFound)

	_, err := f.service.Login(ctx, &usecase.LoginInput{Email: "ghost@example.com", Password: "secret123"})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAuthService_Login_SuspendedAccount(t *testing.T) {
	f := newAuthServiceFixture(t)
	ctx := context.Background()
	userID := uuid.New()

	f.authRepo.On("FindAuthentication", ctx, entity.ProviderTypeEmail, "jane@example.com").
		Return(&entity.Authentication{UserID: userID, PasswordHash: "hashed"}, nil)
	f.hasher.On("Check", "secret123", "hashed").Return(true)
	f.userRepo.On("FindByID", ctx, userID).
		Return(&entity.User{ID: userID, Status: entity.UserStatusSuspended}, nil)

	_, err := f.service.Login(ctx, &usecase.LoginInput{Email: "jane@example.com", Password: "secret123"})
	assert.ErrorIs(t, err, domainerrors.ErrAccessDenied)
}

func TestAuthService_RefreshToken_IssuesNewAccessToken(t *testing.T) {
	f := newAuthServiceFixture(t)
	ctx := context.Background()
	userID := uuid.New()

	f.tokenService.On("ValidateRefreshToken", "refresh").
		Return(&service.Claims{UserID: userID, Type: "refresh"}, nil)
	f.tokenService.On("HashToken", "refresh").Return("refresh-hash")
	f.refreshTokenRepo.On("FindByTokenHash", ctx, "refresh-hash").
		Return(&entity.RefreshToken{UserID: userID, TokenHash: "refresh-hash", ExpiresAt: time.Now().Add(time.Hour)}, nil)
	f.userRepo.On("FindByID", ctx, userID).
		Return(&entity.User{ID: userID, Status: entity.UserStatusActive}, nil)
	f.tokenService.On("GenerateTokens", userID).Return("new-access", "unused", nil)

	output, err := f.service.RefreshToken(ctx, &usecase.RefreshTokenInput{RefreshToken: "refresh"})
	require.NoError(t, err)
	assert.Equal(t, "new-access", output.AccessToken)
}

func TestAuthService_RefreshToken_Expired(t *testing.T) {
	f := newAuthServiceFixture(t)
	ctx := context.Background()
	userID := uuid.New()

	f.tokenService.On("ValidateRefreshToken", "refresh").
		Return(&service.Claims{UserID: userID, Type: "refresh"}, nil)
	f.tokenService.On("HashToken", "refresh").Return("refresh-hash")
	f.refreshTokenRepo.On("FindByTokenHash", ctx, "refresh-hash").
		Return(&entity.RefreshToken{UserID: userID, TokenHash: "refresh-hash", ExpiresAt: time.Now().Add(-time.Minute)}, nil)

	_, err := f.service.RefreshToken(ctx, &usecase.RefreshTokenInput{RefreshToken: "refresh"})
	assert.ErrorIs(t, err, domainerrors.ErrRefreshTokenInvalid)
}

func TestAuthService_Logout_RevokedTokenIsIdempotent(t *testing.T) {
	f := newAuthServiceFixture(t)
	ctx := context.Background()

	f.tokenService.On("ValidateRefreshToken", "stale").
		Return(nil, domainerrors.ErrRefreshTokenInvalid)
	f.tokenService.On("HashToken", "stale").Return("stale-hash")
	f.refreshTokenRepo.On("DeleteByTokenHash", ctx, "stale-hash").Return(nil)

	err := f.service.Logout(ctx, &usecase.LogoutInput{RefreshToken: "stale"})
	assert.NoError(t, err)
}
