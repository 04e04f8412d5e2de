package repository

import (
	"context"

	"marketplace/internal/domain/entity"

	"github.com/google/uuid"
)

// AuthRepository defines persistence operations for login credentials.
type AuthRepository interface {
	CreateAuthentication(ctx context.Context, auth *entity.Authentication) error

	// FindAuthentication returns the credential for a provider-specific
	// identifier, or ErrAuthNotFound.
	FindAuthentication(ctx context.Context, provider entity.ProviderType, providerUserID string) (*entity.Authentication, error)
}

// RefreshTokenRepository defines persistence operations for sessions.
type RefreshTokenRepository interface {
	Create(ctx context.Context, token *entity.RefreshToken) error

	// FindByTokenHash returns the session matching a token hash, or
	// ErrRefreshTokenNotFound.
	FindByTokenHash(ctx context.Context, tokenHash string) (*entity.RefreshToken, error)

	DeleteByTokenHash(ctx context.Context, tokenHash string) error

	// DeleteByUser revokes every session of one account.
	DeleteByUser(ctx context.Context, userID uuid.UUID) error
}
