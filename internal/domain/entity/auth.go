package entity

import (
	"time"

	"github.com/google/uuid"
)

// ProviderType identifies how a credential was established.
type ProviderType = string

// ProviderTypeEmail is the email/password credential provider.
const ProviderTypeEmail ProviderType = "email"

// Authentication represents a single login credential for an account.
type Authentication struct {
	ID             uuid.UUID
	UserID         uuid.UUID
	Provider       ProviderType
	ProviderUserID string
	PasswordHash   string
	CreatedAt      time.Time
}

// RefreshToken represents a long-lived session, stored as a SHA-256 hash of
// the raw token so a database leak does not expose usable sessions.
type RefreshToken struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	TokenHash string
	ExpiresAt time.Time
	CreatedAt time.Time
}
