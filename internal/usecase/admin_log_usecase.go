package usecase

import (
	"context"
	"time"

	"marketplace/internal/domain/entity"
	"marketplace/internal/domain/repository"

	"github.com/google/uuid"
)

// ListAdminLogsInput carries the activity log listing filters.
type ListAdminLogsInput struct {
	AdminID   *uuid.UUID
	Action    string
	StartDate *time.Time
	EndDate   *time.Time
	Page      int
	Limit     int
}

// AdminLogListOutput is one page of log entries plus pagination metadata.
type AdminLogListOutput struct {
	Logs     []*entity.AdminLog
	PageInfo repository.PageInfo
}

// SummarizeAdminLogsInput bounds the activity summary.
type SummarizeAdminLogsInput struct {
	StartDate *time.Time
	EndDate   *time.Time
}

// AdminLogUsecase defines read operations over the activity log.
type AdminLogUsecase interface {
	List(ctx context.Context, input *ListAdminLogsInput) (*AdminLogListOutput, error)
	Summarize(ctx context.Context, input *SummarizeAdminLogsInput) (*entity.ActivitySummary, error)
	Get(ctx context.Context, logID uuid.UUID) (*entity.AdminLog, error)
}
