package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "marketplace/internal/delivery/context"
	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/repository"
	"marketplace/internal/errors"
	"marketplace/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

const (
	defaultAdminListLimit = 50
	adminListMaxLimit     = 100

	defaultActivityDays  = 30
	defaultActivityLimit = 50
	maxActivityLimit     = 100
)

// adminService implements the AdminUsecase interface.
type adminService struct {
	txManager      repository.TransactionManager
	userRepo       repository.UserRepository
	businessRepo   repository.BusinessProfileRepository
	productRepo    repository.ProductRepository
	adminLogRepo   repository.AdminLogRepository
	activityLogger usecase.ActivityLogger
	logger         *slog.Logger
}

// AdminServiceParams holds dependencies for adminService, injected by Fx.
type AdminServiceParams struct {
	fx.In

	TxManager      repository.TransactionManager
	UserRepo       repository.UserRepository
	BusinessRepo   repository.BusinessProfileRepository
	ProductRepo    repository.ProductRepository
	AdminLogRepo   repository.AdminLogRepository
	ActivityLogger usecase.ActivityLogger
	Logger         *slog.Logger
}

// NewAdminService is the constructor for adminService.
func NewAdminService(params AdminServiceParams) usecase.AdminUsecase {
	return &adminService{
		txManager:      params.TxManager,
		userRepo:       params.UserRepo,
		businessRepo:   params.BusinessRepo,
		productRepo:    params.ProductRepo,
		adminLogRepo:   params.AdminLogRepo,
		activityLogger: params.ActivityLogger,
		logger:         params.Logger,
	}
}

func (srv *adminService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *adminService) ListUsers(ctx context.Context, input *usecase.ListUsersInput) (*usecase.UserListOutput, error) {
	filter := repository.UserListFilter{
		Role:   input.Role,
		Status: input.Status,
		Search: input.Search,
	}
	page := repository.Pagination{Page: input.Page, Limit: input.Limit}.Normalize(defaultAdminListLimit, adminListMaxLimit)

	users, total, err := srv.userRepo.List(ctx, filter, page)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	return &usecase.UserListOutput{
		Users:    users,
		PageInfo: repository.NewPageInfo(page, total),
	}, nil
}

// UpdateUserStatus flips an account's status and records the action.
func (srv *adminService) UpdateUserStatus(ctx context.Context, adminID uuid.UUID, userID uuid.UUID, input *usecase.UpdateUserStatusInput) (*entity.User, error) {
	if !input.Status.IsValid() {
		return nil, domainerrors.ErrInvalidStatus
	}

	updated, err := srv.userRepo.UpdateFields(ctx, userID, map[string]any{
		"status":               input.Status.String(),
		"status_update_reason": input.Reason,
	})
	if err != nil {
		return nil, translateRepoError(err)
	}

	srv.activityLogger.Log(ctx, &entity.AdminLog{
		AdminID:    adminID,
		Action:     entity.ActionUpdateUserStatus,
		TargetID:   userID.String(),
		TargetType: entity.TargetTypeUser,
		Details:    map[string]any{"status": input.Status.String(), "reason": input.Reason},
	})

	srv.log(ctx).Info("User status updated",
		slog.Any("adminID", adminID),
		slog.Any("userID", userID),
		slog.String("status", input.Status.String()),
	)

	return updated, nil
}

func (srv *adminService) ListBusinessProfiles(ctx context.Context, input *usecase.ListBusinessProfilesInput) (*usecase.BusinessListOutput, error) {
	filter := repository.BusinessListFilter{
		Status:    input.Status,
		Search:    input.Search,
		WithOwner: true,
	}
	page := repository.Pagination{Page: input.Page, Limit: input.Limit}.Normalize(defaultAdminListLimit, adminListMaxLimit)

	profiles, total, err := srv.businessRepo.List(ctx, filter, page)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list business profiles")
	}

	return &usecase.BusinessListOutput{
		Profiles: profiles,
		PageInfo: repository.NewPageInfo(page, total),
	}, nil
}

// ListPendingVerification returns storefronts awaiting review.
func (srv *adminService) ListPendingVerification(ctx context.Context, page repository.Pagination) (*usecase.BusinessListOutput, error) {
	pending := entity.BusinessStatusPending

	return srv.ListBusinessProfiles(ctx, &usecase.ListBusinessProfilesInput{
		Status: &pending,
		Page:   page.Page,
		Limit:  page.Limit,
	})
}

// UpdateBusinessStatus flips a storefront's status and adjusts the owner's
// role in the same transaction: active grants vendor, rejected or suspended
// reverts to user.
func (srv *adminService) UpdateBusinessStatus(ctx context.Context, adminID uuid.UUID, profileID uuid.UUID, input *usecase.UpdateBusinessStatusInput) (*entity.BusinessProfile, error) {
	if !input.Status.IsValid() {
		return nil, domainerrors.ErrInvalidStatus
	}

	var updated *entity.BusinessProfile
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		businessRepo := repoFactory.BusinessRepo()
		userRepo := repoFactory.UserRepo()

		profile, updateErr := businessRepo.UpdateFields(ctx, profileID, map[string]any{
			"status":               input.Status.String(),
			"status_update_reason": input.Reason,
		})
		if updateErr != nil {
			return translateRepoError(updateErr)
		}

		switch input.Status {
		case entity.BusinessStatusActive:
			if roleErr := userRepo.UpdateRole(ctx, profile.OwnerID, entity.RoleVendor); roleErr != nil {
				return translateRepoError(roleErr)
			}
		case entity.BusinessStatusRejected, entity.BusinessStatusSuspended:
			if roleErr := userRepo.UpdateRole(ctx, profile.OwnerID, entity.RoleUser); roleErr != nil {
				return translateRepoError(roleErr)
			}
		case entity.BusinessStatusPending:
			// Back to review; the owner keeps their current role.
		}

		updated = profile

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Business status update failed",
			slog.Any("adminID", adminID),
			slog.Any("profileID", profileID),
			slog.Any("error", err),
		)

		return nil, err
	}

	srv.activityLogger.Log(ctx, &entity.AdminLog{
		AdminID:    adminID,
		Action:     entity.ActionUpdateBusinessStatus,
		TargetID:   profileID.String(),
		TargetType: entity.TargetTypeBusinessProfile,
		Details:    map[string]any{"status": input.Status.String(), "reason": input.Reason},
	})

	srv.log(ctx).Info("Business status updated",
		slog.Any("adminID", adminID),
		slog.Any("profileID", profileID),
		slog.String("status", input.Status.String()),
	)

	return updated, nil
}

// Stats returns marketplace-wide status aggregations. The grouping happens
// in SQL, not in memory.
func (srv *adminService) Stats(ctx context.Context) (*usecase.DashboardStats, error) {
	userCounts, err := srv.userRepo.CountByRoleStatus(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to aggregate user stats")
	}

	businessCounts, err := srv.businessRepo.CountByStatus(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to aggregate business profile stats")
	}

	productCounts, err := srv.productRepo.CountByStatus(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to aggregate product stats")
	}

	return &usecase.DashboardStats{
		Users:            userCounts,
		BusinessProfiles: businessCounts,
		Products:         productCounts,
	}, nil
}

// RecentActivity returns the dashboard activity feed.
func (srv *adminService) RecentActivity(ctx context.Context, input *usecase.RecentActivityInput) ([]*entity.AdminLog, error) {
	days := input.Days
	if days <= 0 {
		days = defaultActivityDays
	}
	limit := input.Limit
	if limit <= 0 {
		limit = defaultActivityLimit
	}
	if limit > maxActivityLimit {
		limit = maxActivityLimit
	}

	since := time.Now().AddDate(0, 0, -days)
	logs, err := srv.adminLogRepo.ListRecent(ctx, since, input.Action, limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list recent activity")
	}

	return logs, nil
}
