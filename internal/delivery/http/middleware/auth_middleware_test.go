package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	deliverycontext "marketplace/internal/delivery/context"
	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/service"
	mockRepo "marketplace/internal/mocks/repository"
	mockSvc "marketplace/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newAuthTestContext(authorization string) echo.Context {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}

	return e.NewContext(req, httptest.NewRecorder())
}

func okHandler(c echo.Context) error {
	return c.NoContent(http.StatusOK)
}

func TestAuthMiddleware_Authenticate_SetsCallerIdentity(t *testing.T) {
	tokenSvc := mockSvc.NewMockTokenService(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	m := NewAuthMiddleware(tokenSvc, userRepo)
	userID := uuid.New()

	tokenSvc.On("ValidateAccessToken", "valid-token").
		Return(&service.Claims{UserID: userID, Type: "access"}, nil)

	c := newAuthTestContext("Bearer valid-token")
	var seenID uuid.UUID
	err := m.Authenticate(func(c echo.Context) error {
		seenID, _ = deliverycontext.GetUserID(c)

		return nil
	})(c)

	require.NoError(t, err)
	assert.Equal(t, userID, seenID)
}

func TestAuthMiddleware_Authenticate_MissingHeader(t *testing.T) {
	m := NewAuthMiddleware(mockSvc.NewMockTokenService(t), mockRepo.NewMockUserRepository(t))

	err := m.Authenticate(okHandler)(newAuthTestContext(""))
	assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)
}

func TestAuthMiddleware_Authenticate_RejectsNonBearer(t *testing.T) {
	m := NewAuthMiddleware(mockSvc.NewMockTokenService(t), mockRepo.NewMockUserRepository(t))

	err := m.Authenticate(okHandler)(newAuthTestContext("Basic dXNlcjpwYXNz"))
	assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)
}

func TestAuthMiddleware_OptionalAuthenticate_ProceedsAnonymously(t *testing.T) {
	m := NewAuthMiddleware(mockSvc.NewMockTokenService(t), mockRepo.NewMockUserRepository(t))

	c := newAuthTestContext("")
	var authenticated bool
	err := m.OptionalAuthenticate(func(c echo.Context) error {
		_, authenticated = deliverycontext.GetUserID(c)

		return nil
	})(c)

	require.NoError(t, err)
	assert.False(t, authenticated)
}

func TestAuthMiddleware_RequireRole_ChecksStoredRole(t *testing.T) {
	tokenSvc := mockSvc.NewMockTokenService(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	m := NewAuthMiddleware(tokenSvc, userRepo)
	userID := uuid.New()

	userRepo.On("FindByID", mock.Anything, userID).
		Return(&entity.User{ID: userID, Role: entity.RoleAdmin, Status: entity.UserStatusActive}, nil)

	c := newAuthTestContext("")
	deliverycontext.SetUserID(c, userID)

	err := m.RequireRole(entity.RoleAdmin)(okHandler)(c)
	assert.NoError(t, err)
}

func TestAuthMiddleware_RequireRole_DeniesWrongRole(t *testing.T) {
	tokenSvc := mockSvc.NewMockTokenService(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	m := NewAuthMiddleware(tokenSvc, userRepo)
	userID := uuid.New()

	userRepo.On("FindByID", mock.Anything, userID).
		Return(&entity.User{ID: userID, Role: entity.RoleUser, Status: entity.UserStatusActive}, nil)

	c := newAuthTestContext("")
	deliverycontext.SetUserID(c, userID)

	err := m.RequireRole(entity.RoleAdmin)(okHandler)(c)
	assert.ErrorIs(t, err, domainerrors.ErrAccessDenied)
}

func TestAuthMiddleware_RequireRole_DeniesSuspendedAccounts(t *testing.T) {
	tokenSvc := mockSvc.NewMockTokenService(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	m := NewAuthMiddleware(tokenSvc, userRepo)
	userID := uuid.New()

	userRepo.On("FindByID", mock.Anything, userID).
		Return(&entity.User{ID: userID, Role: entity.RoleAdmin, Status: entity.UserStatusSuspended}, nil)

	c := newAuthTestContext("")
	deliverycontext.SetUserID(c, userID)

	err := m.RequireRole(entity.RoleAdmin)(okHandler)(c)
	assert.ErrorIs(t, err, domainerrors.ErrAccessDenied)
}

func TestAuthMiddleware_RequireRole_RequiresAuthentication(t *testing.T) {
	m := NewAuthMiddleware(mockSvc.NewMockTokenService(t), mockRepo.NewMockUserRepository(t))

	err := m.RequireRole(entity.RoleAdmin)(okHandler)(newAuthTestContext(""))
	assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)
}
