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

// businessService implements the BusinessUsecase interface.
type businessService struct {
	txManager    repository.TransactionManager
	userRepo     repository.UserRepository
	businessRepo repository.BusinessProfileRepository
	logger       *slog.Logger
}

// BusinessServiceParams holds dependencies for businessService, injected by Fx.
type BusinessServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	UserRepo     repository.UserRepository
	BusinessRepo repository.BusinessProfileRepository
	Logger       *slog.Logger
}

// NewBusinessService is the constructor for businessService.
func NewBusinessService(params BusinessServiceParams) usecase.BusinessUsecase {
	return &businessService{
		txManager:    params.TxManager,
		userRepo:     params.UserRepo,
		businessRepo: params.BusinessRepo,
		logger:       params.Logger,
	}
}

func (srv *businessService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Create onboards a storefront in pending_verification state. The existence
// check and insert run in one transaction so two concurrent requests cannot
// both succeed.
func (srv *businessService) Create(ctx context.Context, ownerID uuid.UUID, input *usecase.CreateBusinessProfileInput) (*entity.BusinessProfile, error) {
	srv.log(ctx).Info("Creating business profile", slog.Any("ownerID", ownerID))

	var created *entity.BusinessProfile
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		businessRepo := repoFactory.BusinessRepo()

		_, findErr := businessRepo.FindByOwner(ctx, ownerID)
		if findErr == nil {
			return domainerrors.ErrBusinessProfileExists
		}
		if !errors.Is(findErr, repository.ErrBusinessProfileNotFound) {
			return errors.Wrap(findErr, "failed to check existing business profile")
		}

		profile := &entity.BusinessProfile{
			OwnerID:        ownerID,
			BusinessName:   input.BusinessName,
			Slug:           entity.Slugify(input.BusinessName),
			Description:    input.Description,
			Address:        input.Address,
			CoverImage:     input.CoverImage,
			ProfileImage:   input.ProfileImage,
			BusinessPhone:  input.BusinessPhone,
			WhatsappNumber: input.WhatsappNumber,
			BusinessEmail:  input.BusinessEmail,
			Status:         entity.BusinessStatusPending,
		}

		createErr := businessRepo.Create(ctx, profile)
		if errors.Is(createErr, repository.ErrDuplicateBusinessSlug) {
			// Another storefront already owns this name's slug; disambiguate
			// with a short random suffix and retry once.
			profile.Slug = profile.Slug + "-" + uuid.New().String()[:8]
			createErr = businessRepo.Create(ctx, profile)
		}
		if createErr != nil {
			return translateRepoError(createErr)
		}

		created = profile

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Business profile creation failed", slog.Any("ownerID", ownerID), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Debug("Business profile created", slog.Any("profileID", created.ID))

	return created, nil
}

// Update applies a whitelisted partial update. The actor must own the
// storefront unless their stored role is admin.
func (srv *businessService) Update(ctx context.Context, actorID uuid.UUID, profileID uuid.UUID, input *usecase.UpdateBusinessProfileInput) (*entity.BusinessProfile, error) {
	fields := input.Fields()
	if len(fields) == 0 {
		return nil, domainerrors.ErrNoFieldsToUpdate
	}

	profile, err := srv.businessRepo.FindByID(ctx, profileID)
	if err != nil {
		return nil, translateRepoError(err)
	}

	if profile.OwnerID != actorID {
		actor, actorErr := srv.userRepo.FindByID(ctx, actorID)
		if actorErr != nil {
			return nil, translateRepoError(actorErr)
		}
		if actor.Role != entity.RoleAdmin {
			srv.log(ctx).Warn("Business profile update denied", slog.Any("actorID", actorID), slog.Any("profileID", profileID))

			return nil, domainerrors.ErrNotOwner
		}
	}

	updated, err := srv.businessRepo.UpdateFields(ctx, profileID, fields)
	if err != nil {
		return nil, translateRepoError(err)
	}

	srv.log(ctx).Debug("Business profile updated", slog.Any("profileID", profileID), slog.Int("fields", len(fields)))

	return updated, nil
}
