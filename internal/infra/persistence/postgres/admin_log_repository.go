package postgres

import (
	"context"
	"encoding/json"
	"time"

	"marketplace/internal/domain/entity"
	"marketplace/internal/domain/repository"
	"marketplace/internal/errors"
	"marketplace/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// adminLogRepository implements repository.AdminLogRepository using GORM.
type adminLogRepository struct {
	db *gorm.DB
}

// NewAdminLogRepository is the constructor for adminLogRepository.
func NewAdminLogRepository(db *gorm.DB) repository.AdminLogRepository {
	return &adminLogRepository{db: db}
}

// Create appends one activity log entry.
func (repo *adminLogRepository) Create(ctx context.Context, log *entity.AdminLog) error {
	logM, err := fromAdminLogDomain(log)
	if err != nil {
		return err
	}

	if err := repo.db.WithContext(ctx).Create(logM).Error; err != nil {
		return errors.Wrap(err, "failed to create admin log entry")
	}

	log.ID = logM.ID
	log.CreatedAt = logM.CreatedAt

	return nil
}

// FindByID returns one entry joined with the acting admin's account.
func (repo *adminLogRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.AdminLog, error) {
	var logM model.AdminLogModel
	err := repo.db.WithContext(ctx).
		Preload("Admin").
		Where("id = ?", id).
		First(&logM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAdminLogNotFound
		}

		return nil, errors.Wrap(err, "failed to find admin log entry by id")
	}

	return toAdminLogDomain(&logM)
}

// List returns one page of entries matching the filter, newest first.
func (repo *adminLogRepository) List(ctx context.Context, filter repository.AdminLogFilter, page repository.Pagination) ([]*entity.AdminLog, int64, error) {
	query := repo.db.WithContext(ctx).Model(&model.AdminLogModel{})

	if filter.AdminID != nil {
		query = query.Where("admin_id = ?", *filter.AdminID)
	}
	if filter.Action != "" {
		query = query.Where("action = ?", filter.Action)
	}
	if filter.StartDate != nil {
		query = query.Where("created_at >= ?", *filter.StartDate)
	}
	if filter.EndDate != nil {
		query = query.Where("created_at <= ?", *filter.EndDate)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count admin log entries")
	}

	var logMs []*model.AdminLogModel
	err := query.
		Preload("Admin").
		Order("created_at DESC").
		Limit(page.Limit).
		Offset(page.Offset()).
		Find(&logMs).Error
	if err != nil {
		return nil, 0, errors.Wrap(err, "failed to list admin log entries")
	}

	logs, err := toAdminLogDomains(logMs)
	if err != nil {
		return nil, 0, err
	}

	return logs, total, nil
}

// ListRecent returns up to limit entries recorded since the given time.
func (repo *adminLogRepository) ListRecent(ctx context.Context, since time.Time, action string, limit int) ([]*entity.AdminLog, error) {
	query := repo.db.WithContext(ctx).
		Where("created_at >= ?", since)
	if action != "" {
		query = query.Where("action = ?", action)
	}

	var logMs []*model.AdminLogModel
	err := query.
		Preload("Admin").
		Order("created_at DESC").
		Limit(limit).
		Find(&logMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list recent admin log entries")
	}

	return toAdminLogDomains(logMs)
}

// Summarize aggregates entries by action and by calendar day.
func (repo *adminLogRepository) Summarize(ctx context.Context, start, end *time.Time) (*entity.ActivitySummary, error) {
	base := repo.db.WithContext(ctx).Model(&model.AdminLogModel{})
	if start != nil {
		base = base.Where("created_at >= ?", *start)
	}
	if end != nil {
		base = base.Where("created_at <= ?", *end)
	}

	var actionRows []struct {
		Action string
		Count  int
	}
	err := base.Session(&gorm.Session{}).
		Select("action, COUNT(*) AS count").
		Group("action").
		Order("count DESC").
		Scan(&actionRows).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to summarize admin log actions")
	}

	var dayRows []struct {
		Day   time.Time
		Count int
	}
	err = base.Session(&gorm.Session{}).
		Select("DATE_TRUNC('day', created_at) AS day, COUNT(*) AS count").
		Group("day").
		Order("day ASC").
		Scan(&dayRows).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to summarize admin log timeline")
	}

	summary := &entity.ActivitySummary{
		ActionCounts: make([]entity.ActionCount, 0, len(actionRows)),
		Timeline:     make([]entity.DailyCount, 0, len(dayRows)),
	}
	for _, row := range actionRows {
		summary.ActionCounts = append(summary.ActionCounts, entity.ActionCount{Action: row.Action, Count: row.Count})
	}
	for _, row := range dayRows {
		summary.Timeline = append(summary.Timeline, entity.DailyCount{Day: row.Day, Count: row.Count})
	}

	return summary, nil
}

func toAdminLogDomains(logMs []*model.AdminLogModel) ([]*entity.AdminLog, error) {
	logs := make([]*entity.AdminLog, 0, len(logMs))
	for _, logM := range logMs {
		log, err := toAdminLogDomain(logM)
		if err != nil {
			return nil, err
		}
		logs = append(logs, log)
	}

	return logs, nil
}

func toAdminLogDomain(logM *model.AdminLogModel) (*entity.AdminLog, error) {
	log := &entity.AdminLog{
		ID:         logM.ID,
		AdminID:    logM.AdminID,
		Action:     logM.Action,
		TargetID:   logM.TargetID,
		TargetType: logM.TargetType,
		CreatedAt:  logM.CreatedAt,
	}
	if logM.Admin != nil {
		log.AdminEmail = logM.Admin.Email
	}
	if len(logM.Details) > 0 {
		if err := json.Unmarshal(logM.Details, &log.Details); err != nil {
			return nil, errors.Wrap(err, "failed to decode admin log details")
		}
	}

	return log, nil
}

func fromAdminLogDomain(log *entity.AdminLog) (*model.AdminLogModel, error) {
	logM := &model.AdminLogModel{
		ID:         log.ID,
		AdminID:    log.AdminID,
		Action:     log.Action,
		TargetID:   log.TargetID,
		TargetType: log.TargetType,
		CreatedAt:  log.CreatedAt,
	}
	if log.Details != nil {
		details, err := json.Marshal(log.Details)
		if err != nil {
			return nil, errors.Wrap(err, "failed to encode admin log details")
		}
		logM.Details = details
	}

	return logM, nil
}
