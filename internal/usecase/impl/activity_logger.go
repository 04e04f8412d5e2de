package impl

import (
	"context"
	"log/slog"

	deliverycontext "marketplace/internal/delivery/context"
	"marketplace/internal/domain/entity"
	"marketplace/internal/domain/repository"
	"marketplace/internal/usecase"

	"go.uber.org/fx"
)

// activityLogger implements the ActivityLogger interface. Recording is best
// effort: a failed write is logged and swallowed so admin operations never
// fail because of their audit trail.
type activityLogger struct {
	adminLogRepo repository.AdminLogRepository
	logger       *slog.Logger
}

// ActivityLoggerParams holds dependencies for activityLogger, injected by Fx.
type ActivityLoggerParams struct {
	fx.In

	AdminLogRepo repository.AdminLogRepository
	Logger       *slog.Logger
}

// NewActivityLogger is the constructor for activityLogger.
func NewActivityLogger(params ActivityLoggerParams) usecase.ActivityLogger {
	return &activityLogger{
		adminLogRepo: params.AdminLogRepo,
		logger:       params.Logger,
	}
}

// Log appends one activity entry.
func (al *activityLogger) Log(ctx context.Context, entry *entity.AdminLog) {
	if err := al.adminLogRepo.Create(ctx, entry); err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, al.logger).Error("Failed to record admin activity",
			slog.String("action", entry.Action),
			slog.String("targetID", entry.TargetID),
			slog.Any("error", err),
		)
	}
}
