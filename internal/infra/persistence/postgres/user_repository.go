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

// userRepository implements repository.UserRepository using GORM.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{db: db}
}

// Create persists a new account. The database generates the ID and
// timestamps; they are copied back onto the entity.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	userM := fromUserDomain(user)

	if err := repo.db.WithContext(ctx).Create(userM).Error; err != nil {
		return errors.Wrap(err, "failed to create user")
	}

	user.ID = userM.ID
	user.CreatedAt = userM.CreatedAt
	user.UpdatedAt = userM.UpdatedAt

	return nil
}

// FindByID retrieves a single user by ID, preloading their business profile.
func (repo *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	var userM model.UserModel
	err := repo.db.WithContext(ctx).
		Preload("BusinessProfile").
		Where("id = ?", id).
		First(&userM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by id")
	}

	return toUserDomain(&userM), nil
}

// FindByEmail retrieves a single user by email, preloading their business profile.
func (repo *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	var userM model.UserModel
	err := repo.db.WithContext(ctx).
		Preload("BusinessProfile").
		Where("email = ?", email).
		First(&userM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by email")
	}

	return toUserDomain(&userM), nil
}

// Update saves the full user row.
func (repo *userRepository) Update(ctx context.Context, user *entity.User) error {
	userM := fromUserDomain(user)

	result := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("id = ?", user.ID).
		Updates(userM)
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update user")
	}
	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

// UpdateFields applies a column-level partial update. Callers whitelist the
// keys; this layer only maps them onto the row.
func (repo *userRepository) UpdateFields(ctx context.Context, id uuid.UUID, fields map[string]any) (*entity.User, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("id = ?", id).
		Updates(fields)
	if result.Error != nil {
		return nil, errors.Wrap(result.Error, "failed to update user fields")
	}
	if result.RowsAffected == 0 {
		return nil, repository.ErrUserNotFound
	}

	return repo.FindByID(ctx, id)
}

// UpdateRole flips the account's role.
func (repo *userRepository) UpdateRole(ctx context.Context, id uuid.UUID, role entity.Role) error {
	result := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("id = ?", id).
		Update("role", role.String())
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update user role")
	}
	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

// List returns one page of accounts matching the filter plus the total count.
func (repo *userRepository) List(ctx context.Context, filter repository.UserListFilter, page repository.Pagination) ([]*entity.User, int64, error) {
	query := repo.db.WithContext(ctx).Model(&model.UserModel{})

	if filter.Role != nil {
		query = query.Where("role = ?", filter.Role.String())
	}
	if filter.Status != nil {
		query = query.Where("status = ?", filter.Status.String())
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("email ILIKE ? OR first_name ILIKE ? OR last_name ILIKE ?", pattern, pattern, pattern)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count users")
	}

	var userMs []*model.UserModel
	err := query.
		Preload("BusinessProfile").
		Order("created_at DESC").
		Limit(page.Limit).
		Offset(page.Offset()).
		Find(&userMs).Error
	if err != nil {
		return nil, 0, errors.Wrap(err, "failed to list users")
	}

	users := make([]*entity.User, 0, len(userMs))
	for _, userM := range userMs {
		users = append(users, toUserDomain(userM))
	}

	return users, total, nil
}

// CountByRoleStatus aggregates accounts grouped by (role, status).
func (repo *userRepository) CountByRoleStatus(ctx context.Context) ([]repository.RoleStatusCount, error) {
	var rows []struct {
		Role   string
		Status string
		Count  int
	}
	err := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Select("role, status, COUNT(*) AS count").
		Group("role, status").
		Scan(&rows).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to count users by role and status")
	}

	counts := make([]repository.RoleStatusCount, 0, len(rows))
	for _, row := range rows {
		counts = append(counts, repository.RoleStatusCount{
			Role:   entity.Role(row.Role),
			Status: entity.UserStatus(row.Status),
			Count:  row.Count,
		})
	}

	return counts, nil
}

// toUserDomain maps the persistence model back to a pure domain entity.
func toUserDomain(userM *model.UserModel) *entity.User {
	if userM == nil {
		return nil
	}

	user := &entity.User{
		ID:                 userM.ID,
		Email:              userM.Email,
		FirstName:          userM.FirstName,
		LastName:           userM.LastName,
		PhoneNumber:        userM.PhoneNumber,
		WhatsappNumber:     userM.WhatsappNumber,
		ProfilePicture:     userM.ProfilePicture,
		ShopLink:           userM.ShopLink,
		ProfileLink:        userM.ProfileLink,
		Role:               entity.Role(userM.Role),
		Status:             entity.UserStatus(userM.Status),
		StatusUpdateReason: userM.StatusUpdateReason,
		CreatedAt:          userM.CreatedAt,
		UpdatedAt:          userM.UpdatedAt,
	}
	if userM.BusinessProfile != nil {
		user.BusinessProfile = toBusinessProfileDomain(userM.BusinessProfile)
	}

	return user
}

// fromUserDomain maps a domain entity to its persistence model. The owned
// business profile is persisted through its own repository, never here.
func fromUserDomain(user *entity.User) *model.UserModel {
	return &model.UserModel{
		ID:                 user.ID,
		Email:              user.Email,
		FirstName:          user.FirstName,
		LastName:           user.LastName,
		PhoneNumber:        user.PhoneNumber,
		WhatsappNumber:     user.WhatsappNumber,
		ProfilePicture:     user.ProfilePicture,
		ShopLink:           user.ShopLink,
		ProfileLink:        user.ProfileLink,
		Role:               user.Role.String(),
		Status:             user.Status.String(),
		StatusUpdateReason: user.StatusUpdateReason,
		CreatedAt:          user.CreatedAt,
		UpdatedAt:          user.UpdatedAt,
	}
}
