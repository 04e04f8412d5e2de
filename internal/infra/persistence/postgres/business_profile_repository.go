package postgres

import (
	"context"

	"marketplace/internal/domain/entity"
	"marketplace/internal/domain/repository"
	"marketplace/internal/errors"
	"marketplace/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// businessProfileRepository implements repository.BusinessProfileRepository using GORM.
type businessProfileRepository struct {
	db *gorm.DB
}

// NewBusinessProfileRepository is the constructor for businessProfileRepository.
func NewBusinessProfileRepository(db *gorm.DB) repository.BusinessProfileRepository {
	return &businessProfileRepository{db: db}
}

// Create persists a new storefront. The slug and owner unique indexes are
// translated into their dedicated sentinel errors.
func (repo *businessProfileRepository) Create(ctx context.Context, profile *entity.BusinessProfile) error {
	profileM := fromBusinessProfileDomain(profile)

	if err := repo.db.WithContext(ctx).Create(profileM).Error; err != nil {
		// Concurrent creates for the same owner race past the usecase-level
		// existence check; the owner unique index is the backstop.
		if isUniqueConstraintViolation(err, "owner_id") {
			return repository.ErrDuplicateBusinessOwner
		}
		if isUniqueConstraintViolation(err, "slug") {
			return repository.ErrDuplicateBusinessSlug
		}

		return errors.Wrap(err, "failed to create business profile")
	}

	profile.ID = profileM.ID
	profile.CreatedAt = profileM.CreatedAt
	profile.UpdatedAt = profileM.UpdatedAt

	return nil
}

func (repo *businessProfileRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.BusinessProfile, error) {
	var profileM model.BusinessProfileModel
	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&profileM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrBusinessProfileNotFound
		}

		return nil, errors.Wrap(err, "failed to find business profile by id")
	}

	return toBusinessProfileDomain(&profileM), nil
}

func (repo *businessProfileRepository) FindByOwner(ctx context.Context, ownerID uuid.UUID) (*entity.BusinessProfile, error) {
	var profileM model.BusinessProfileModel
	err := repo.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		First(&profileM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrBusinessProfileNotFound
		}

		return nil, errors.Wrap(err, "failed to find business profile by owner")
	}

	return toBusinessProfileDomain(&profileM), nil
}

// UpdateFields applies a column-level partial update and returns the
// refreshed row.
func (repo *businessProfileRepository) UpdateFields(ctx context.Context, id uuid.UUID, fields map[string]any) (*entity.BusinessProfile, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.BusinessProfileModel{}).
		Where("id = ?", id).
		Updates(fields)
	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error, "slug") {
			return nil, repository.ErrDuplicateBusinessSlug
		}

		return nil, errors.Wrap(result.Error, "failed to update business profile fields")
	}
	if result.RowsAffected == 0 {
		return nil, repository.ErrBusinessProfileNotFound
	}

	return repo.FindByID(ctx, id)
}

// List returns one page of storefronts matching the filter plus the total count.
func (repo *businessProfileRepository) List(ctx context.Context, filter repository.BusinessListFilter, page repository.Pagination) ([]*entity.BusinessProfile, int64, error) {
	query := repo.db.WithContext(ctx).Model(&model.BusinessProfileModel{})

	if filter.Status != nil {
		query = query.Where("status = ?", filter.Status.String())
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("business_name ILIKE ? OR business_email ILIKE ?", pattern, pattern)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count business profiles")
	}

	if filter.WithOwner {
		query = query.Preload("Owner")
	}

	var profileMs []*model.BusinessProfileModel
	err := query.
		Order("created_at DESC").
		Limit(page.Limit).
		Offset(page.Offset()).
		Find(&profileMs).Error
	if err != nil {
		return nil, 0, errors.Wrap(err, "failed to list business profiles")
	}

	profiles := make([]*entity.BusinessProfile, 0, len(profileMs))
	for _, profileM := range profileMs {
		profiles = append(profiles, toBusinessProfileDomain(profileM))
	}

	return profiles, total, nil
}

// CountByStatus aggregates storefronts grouped by status.
func (repo *businessProfileRepository) CountByStatus(ctx context.Context) ([]repository.StatusCount[entity.BusinessStatus], error) {
	var rows []struct {
		Status string
		Count  int
	}
	err := repo.db.WithContext(ctx).
		Model(&model.BusinessProfileModel{}).
		Select("status, COUNT(*) AS count").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to count business profiles by status")
	}

	counts := make([]repository.StatusCount[entity.BusinessStatus], 0, len(rows))
	for _, row := range rows {
		counts = append(counts, repository.StatusCount[entity.BusinessStatus]{
			Status: entity.BusinessStatus(row.Status),
			Count:  row.Count,
		})
	}

	return counts, nil
}

func toBusinessProfileDomain(profileM *model.BusinessProfileModel) *entity.BusinessProfile {
	if profileM == nil {
		return nil
	}

	profile := &entity.BusinessProfile{
		ID:                 profileM.ID,
		OwnerID:            profileM.OwnerID,
		BusinessName:       profileM.BusinessName,
		Slug:               profileM.Slug,
		Description:        profileM.Description,
		Address:            profileM.Address,
		CoverImage:         profileM.CoverImage,
		ProfileImage:       profileM.ProfileImage,
		BusinessPhone:      profileM.BusinessPhone,
		WhatsappNumber:     profileM.WhatsappNumber,
		BusinessEmail:      profileM.BusinessEmail,
		Status:             entity.BusinessStatus(profileM.Status),
		StatusUpdateReason: profileM.StatusUpdateReason,
		TotalProducts:      profileM.TotalProducts,
		Rating:             profileM.Rating,
		CreatedAt:          profileM.CreatedAt,
		UpdatedAt:          profileM.UpdatedAt,
	}
	if profileM.Owner != nil {
		profile.Owner = toUserDomain(profileM.Owner)
	}

	return profile
}

func fromBusinessProfileDomain(profile *entity.BusinessProfile) *model.BusinessProfileModel {
	return &model.BusinessProfileModel{
		ID:                 profile.ID,
		OwnerID:            profile.OwnerID,
		BusinessName:       profile.BusinessName,
		Slug:               profile.Slug,
		Description:        profile.Description,
		Address:            profile.Address,
		CoverImage:         profile.CoverImage,
		ProfileImage:       profile.ProfileImage,
		BusinessPhone:      profile.BusinessPhone,
		WhatsappNumber:     profile.WhatsappNumber,
		BusinessEmail:      profile.BusinessEmail,
		Status:             profile.Status.String(),
		StatusUpdateReason: profile.StatusUpdateReason,
		TotalProducts:      profile.TotalProducts,
		Rating:             profile.Rating,
		CreatedAt:          profile.CreatedAt,
		UpdatedAt:          profile.UpdatedAt,
	}
}
