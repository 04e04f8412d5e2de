package repository

import (
	"context"

	"marketplace/internal/domain/entity"

	"github.com/google/uuid"
)

// UserListFilter narrows admin user listings.
type UserListFilter struct {
	Role   *entity.Role
	Status *entity.UserStatus
	// Search matches email, first name or last name (case-insensitive substring).
	Search string
}

// RoleStatusCount is one cell of the users GROUP BY role, status aggregation.
type RoleStatusCount struct {
	Role   entity.Role
	Status entity.UserStatus
	Count  int
}

// UserRepository defines persistence operations for accounts.
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error

	// FindByID loads a user together with their owned business profile.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	Update(ctx context.Context, user *entity.User) error

	// UpdateFields applies a whitelisted partial update and returns the
	// refreshed row. Returns ErrUserNotFound when no row matched.
	UpdateFields(ctx context.Context, id uuid.UUID, fields map[string]any) (*entity.User, error)

	// UpdateRole flips the role of the account owning the given ID.
	UpdateRole(ctx context.Context, id uuid.UUID, role entity.Role) error

	// List returns a page of users plus the total row count for the filter.
	List(ctx context.Context, filter UserListFilter, page Pagination) ([]*entity.User, int64, error)

	// CountByRoleStatus aggregates accounts grouped by (role, status).
	CountByRoleStatus(ctx context.Context) ([]RoleStatusCount, error)
}
