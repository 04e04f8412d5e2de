package impl

import (
	"context"
	"log/slog"

	"marketplace/internal/domain/entity"
	"marketplace/internal/domain/repository"
	"marketplace/internal/errors"
	"marketplace/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// adminLogService implements the AdminLogUsecase interface.
type adminLogService struct {
	adminLogRepo repository.AdminLogRepository
	logger       *slog.Logger
}

// AdminLogServiceParams holds dependencies for adminLogService, injected by Fx.
type AdminLogServiceParams struct {
	fx.In

	AdminLogRepo repository.AdminLogRepository
	Logger       *slog.Logger
}

// NewAdminLogService is the constructor for adminLogService.
func NewAdminLogService(params AdminLogServiceParams) usecase.AdminLogUsecase {
	return &adminLogService{
		adminLogRepo: params.AdminLogRepo,
		logger:       params.Logger,
	}
}

func (srv *adminLogService) List(ctx context.Context, input *usecase.ListAdminLogsInput) (*usecase.AdminLogListOutput, error) {
	filter := repository.AdminLogFilter{
		AdminID:   input.AdminID,
		Action:    input.Action,
		StartDate: input.StartDate,
		EndDate:   input.EndDate,
	}
	page := repository.Pagination{Page: input.Page, Limit: input.Limit}.Normalize(defaultAdminListLimit, adminListMaxLimit)

	logs, total, err := srv.adminLogRepo.List(ctx, filter, page)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list admin logs")
	}

	return &usecase.AdminLogListOutput{
		Logs:     logs,
		PageInfo: repository.NewPageInfo(page, total),
	}, nil
}

func (srv *adminLogService) Summarize(ctx context.Context, input *usecase.SummarizeAdminLogsInput) (*entity.ActivitySummary, error) {
	summary, err := srv.adminLogRepo.Summarize(ctx, input.StartDate, input.EndDate)
	if err != nil {
		return nil, errors.Wrap(err, "failed to summarize admin logs")
	}

	return summary, nil
}

func (srv *adminLogService) Get(ctx context.Context, logID uuid.UUID) (*entity.AdminLog, error) {
	entry, err := srv.adminLogRepo.FindByID(ctx, logID)
	if err != nil {
		return nil, translateRepoError(err)
	}

	return entry, nil
}
