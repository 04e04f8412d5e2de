package usecase

import (
	"context"

	"marketplace/internal/domain/entity"
	"marketplace/internal/domain/repository"

	"github.com/google/uuid"
)

// ListUsersInput carries the admin user listing filters.
type ListUsersInput struct {
	Role   *entity.Role
	Status *entity.UserStatus
	Search string
	Page   int
	Limit  int
}

// ListBusinessProfilesInput carries the admin storefront listing filters.
type ListBusinessProfilesInput struct {
	Status *entity.BusinessStatus
	Search string
	Page   int
	Limit  int
}

// UpdateUserStatusInput flips an account's lifecycle status.
type UpdateUserStatusInput struct {
	Status entity.UserStatus `validate:"required"`
	Reason string            `validate:"omitempty,max=1000"`
}

// UpdateBusinessStatusInput flips a storefront's verification status.
type UpdateBusinessStatusInput struct {
	Status entity.BusinessStatus `validate:"required"`
	Reason string                `validate:"omitempty,max=1000"`
}

// UserListOutput is one page of accounts plus pagination metadata.
type UserListOutput struct {
	Users    []*entity.User
	PageInfo repository.PageInfo
}

// BusinessListOutput is one page of storefronts plus pagination metadata.
type BusinessListOutput struct {
	Profiles []*entity.BusinessProfile
	PageInfo repository.PageInfo
}

// DashboardStats aggregates marketplace-wide counts for the admin overview.
type DashboardStats struct {
	Users            []repository.RoleStatusCount
	BusinessProfiles []repository.StatusCount[entity.BusinessStatus]
	Products         []repository.StatusCount[entity.ProductStatus]
}

// RecentActivityInput bounds the dashboard activity feed.
type RecentActivityInput struct {
	Days   int `validate:"omitempty,gte=1,lte=365"`
	Action string
	Limit  int `validate:"omitempty,gte=1,lte=100"`
}

// AdminUsecase defines the admin dashboard business operations. Role
// enforcement happens in the delivery layer; these operations trust that
// the actor is an admin.
type AdminUsecase interface {
	ListUsers(ctx context.Context, input *ListUsersInput) (*UserListOutput, error)

	// UpdateUserStatus flips an account's status and records the action in
	// the activity log (best effort).
	UpdateUserStatus(ctx context.Context, adminID uuid.UUID, userID uuid.UUID, input *UpdateUserStatusInput) (*entity.User, error)

	ListBusinessProfiles(ctx context.Context, input *ListBusinessProfilesInput) (*BusinessListOutput, error)

	// ListPendingVerification returns storefronts awaiting review.
	ListPendingVerification(ctx context.Context, page repository.Pagination) (*BusinessListOutput, error)

	// UpdateBusinessStatus flips a storefront's status and, in the same
	// transaction, adjusts the owner's role: active grants vendor,
	// rejected or suspended reverts to user.
	UpdateBusinessStatus(ctx context.Context, adminID uuid.UUID, profileID uuid.UUID, input *UpdateBusinessStatusInput) (*entity.BusinessProfile, error)

	// Stats returns marketplace-wide status aggregations.
	Stats(ctx context.Context) (*DashboardStats, error)

	// RecentActivity returns the dashboard activity feed, default last 30
	// days, capped at 100 entries.
	RecentActivity(ctx context.Context, input *RecentActivityInput) ([]*entity.AdminLog, error)
}

// ActivityLogger records admin actions. Recording is best effort: failures
// are logged and swallowed, never surfaced to the caller.
type ActivityLogger interface {
	Log(ctx context.Context, entry *entity.AdminLog)
}
