package service

import (
	"time"

	"github.com/google/uuid"
)

// Claims carries the identity extracted from a validated token. Only the
// subject is trusted; the stored role is always re-queried per request.
type Claims struct {
	UserID uuid.UUID
	Type   string // "access" or "refresh"
}

// TokenService defines the interface for issuing and validating JWTs.
// This abstracts the details of token creation from the use cases.
type TokenService interface {
	// GenerateTokens creates a new access token and refresh token for a given user.
	GenerateTokens(userID uuid.UUID) (accessToken string, refreshToken string, err error)

	// ValidateAccessToken checks an access token and returns its claims.
	ValidateAccessToken(tokenString string) (*Claims, error)

	// ValidateRefreshToken checks a refresh token and returns its claims.
	ValidateRefreshToken(tokenString string) (*Claims, error)

	// HashToken derives the storage hash for a raw refresh token. Only the
	// hash is ever persisted.
	HashToken(token string) string

	// RefreshTokenDuration returns the configured lifetime of refresh tokens.
	RefreshTokenDuration() time.Duration
}
