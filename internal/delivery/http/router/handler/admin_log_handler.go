package handler

import (
	"log/slog"
	"net/http"

	"marketplace/internal/delivery/http/response"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/errors"
	"marketplace/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// AdminLogHandler holds dependencies for the activity log handlers. The log
// is read-only over HTTP; entries are written by the usecases themselves.
type AdminLogHandler struct {
	uc     usecase.AdminLogUsecase
	logger *slog.Logger
}

// NewAdminLogHandler is the constructor for AdminLogHandler, injected by Fx.
func NewAdminLogHandler(uc usecase.AdminLogUsecase, logger *slog.Logger) *AdminLogHandler {
	return &AdminLogHandler{uc: uc, logger: logger}
}

// List returns log entries filtered by admin, action and date range, newest
// first.
func (h *AdminLogHandler) List(c echo.Context) error {
	input := &usecase.ListAdminLogsInput{
		AdminID:   queryUUID(c, "adminId"),
		Action:    c.QueryParam("action"),
		StartDate: queryDate(c, "startDate"),
		EndDate:   queryDate(c, "endDate"),
		Page:      queryInt(c, "page"),
		Limit:     queryInt(c, "limit"),
	}

	output, err := h.uc.List(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, ListEnvelope{
		Items:      newAdminLogViews(output.Logs),
		Pagination: output.PageInfo,
	}, "")
}

// Summarize returns per-action and per-day counts over a date range.
func (h *AdminLogHandler) Summarize(c echo.Context) error {
	input := &usecase.SummarizeAdminLogsInput{
		StartDate: queryDate(c, "startDate"),
		EndDate:   queryDate(c, "endDate"),
	}

	summary, err := h.uc.Summarize(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newActivitySummaryView(summary), "")
}

// Get returns one log entry.
func (h *AdminLogHandler) Get(c echo.Context) error {
	logID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("invalid log id")
	}

	log, err := h.uc.Get(c.Request().Context(), logID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newAdminLogView(log), "")
}
