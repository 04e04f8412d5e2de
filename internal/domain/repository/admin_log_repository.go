package repository

import (
	"context"
	"time"

	"marketplace/internal/domain/entity"

	"github.com/google/uuid"
)

// AdminLogFilter narrows activity log listings.
type AdminLogFilter struct {
	AdminID   *uuid.UUID
	Action    string
	StartDate *time.Time
	EndDate   *time.Time
}

// AdminLogRepository defines persistence operations for the append-only
// admin activity log. Entries are never updated or deleted.
type AdminLogRepository interface {
	Create(ctx context.Context, log *entity.AdminLog) error

	// FindByID returns one entry joined with the acting admin's email.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.AdminLog, error)

	List(ctx context.Context, filter AdminLogFilter, page Pagination) ([]*entity.AdminLog, int64, error)

	// ListRecent returns up to limit entries recorded since the given time,
	// newest first, optionally restricted to one action.
	ListRecent(ctx context.Context, since time.Time, action string, limit int) ([]*entity.AdminLog, error)

	// Summarize aggregates entries by action and by calendar day within the
	// optional date range.
	Summarize(ctx context.Context, start, end *time.Time) (*entity.ActivitySummary, error)
}
