package impl

import (
	"context"
	"log/slog"

	deliverycontext "marketplace/internal/delivery/context"
	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/repository"
	"marketplace/internal/errors"
	"marketplace/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// userService implements the UserUsecase interface.
type userService struct {
	userRepo         repository.UserRepository
	refreshTokenRepo repository.RefreshTokenRepository
	logger           *slog.Logger
}

// UserServiceParams holds dependencies for userService, injected by Fx.
type UserServiceParams struct {
	fx.In

	UserRepo         repository.UserRepository
	RefreshTokenRepo repository.RefreshTokenRepository
	Logger           *slog.Logger
}

// NewUserService is the constructor for userService.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		userRepo:         params.UserRepo,
		refreshTokenRepo: params.RefreshTokenRepo,
		logger:           params.Logger,
	}
}

func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetMe returns the caller's account with their storefront attached.
func (srv *userService) GetMe(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, translateRepoError(err)
	}

	return user, nil
}

// GetByID returns another account for public display. Deleted accounts are
// hidden.
func (srv *userService) GetByID(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, translateRepoError(err)
	}
	if user.Status == entity.UserStatusDeleted {
		return nil, domainerrors.ErrUserNotFound
	}

	return user, nil
}

// UpdateMe applies a whitelisted partial update to the caller's account.
func (srv *userService) UpdateMe(ctx context.Context, userID uuid.UUID, input *usecase.UpdateUserInput) (*entity.User, error) {
	fields := input.Fields()
	if len(fields) == 0 {
		return nil, domainerrors.ErrNoFieldsToUpdate
	}

	updated, err := srv.userRepo.UpdateFields(ctx, userID, fields)
	if err != nil {
		return nil, translateRepoError(err)
	}

	srv.log(ctx).Debug("User updated own profile", slog.Any("userID", userID), slog.Int("fields", len(fields)))

	return updated, nil
}

// DeleteMe soft-deletes the caller's account and revokes every session.
func (srv *userService) DeleteMe(ctx context.Context, userID uuid.UUID) error {
	if _, err := srv.userRepo.UpdateFields(ctx, userID, map[string]any{
		"status": entity.UserStatusDeleted.String(),
	}); err != nil {
		return translateRepoError(err)
	}

	if err := srv.refreshTokenRepo.DeleteByUser(ctx, userID); err != nil {
		return errors.Wrap(err, "failed to revoke sessions for deleted account")
	}

	srv.log(ctx).Info("User deleted own account", slog.Any("userID", userID))

	return nil
}
