package middleware

import (
	"strings"

	deliverycontext "marketplace/internal/delivery/context"
	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/repository"
	"marketplace/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// AuthMiddleware provides JWT authentication and role authorization. Tokens
// only carry identity; the stored role is re-queried per request so a role
// change or suspension takes effect immediately.
type AuthMiddleware struct {
	tokenSvc service.TokenService
	userRepo repository.UserRepository
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService, userRepo repository.UserRepository) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc, userRepo: userRepo}
}

// Authenticate validates the bearer access token and records the caller's
// identity on the context. Missing or invalid tokens are rejected.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims, err := m.extractClaims(c)
		if err != nil {
			return err
		}

		deliverycontext.SetUserID(c, claims.UserID)

		return next(c)
	}
}

// OptionalAuthenticate records the caller's identity when a valid token is
// present and proceeds anonymously otherwise.
func (m *AuthMiddleware) OptionalAuthenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if claims, err := m.extractClaims(c); err == nil {
			deliverycontext.SetUserID(c, claims.UserID)
		}

		return next(c)
	}
}

// RequireRole allows only callers whose stored role is in the allow-list.
// Must run after Authenticate. Suspended and deleted accounts are denied
// regardless of role.
func (m *AuthMiddleware) RequireRole(allowed ...entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			userID, ok := deliverycontext.GetUserID(c)
			if !ok {
				return domainerrors.ErrUnauthorized
			}

			user, err := m.userRepo.FindByID(c.Request().Context(), userID)
			if err != nil {
				return domainerrors.ErrUnauthorized
			}
			if user.Status != entity.UserStatusActive {
				return domainerrors.ErrAccessDenied
			}
			if !entity.Roles(allowed).Contains(user.Role) {
				return domainerrors.ErrAccessDenied
			}

			return next(c)
		}
	}
}

func (m *AuthMiddleware) extractClaims(c echo.Context) (*service.Claims, error) {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		return nil, domainerrors.ErrUnauthorized.WithDetails("Authorization header is missing")
	}

	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	if tokenString == authHeader {
		return nil, domainerrors.ErrUnauthorized.WithDetails("Invalid token format, must be Bearer token")
	}

	claims, err := m.tokenSvc.ValidateAccessToken(tokenString)
	if err != nil {
		return nil, domainerrors.ErrUnauthorized.WithDetails("Invalid or expired token")
	}

	return claims, nil
}
