package handler

import (
	"log/slog"
	"net/http"

	deliverycontext "marketplace/internal/delivery/context"
	"marketplace/internal/delivery/http/response"
	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/errors"
	"marketplace/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// AdminHandler holds dependencies for the admin dashboard handlers. Every
// route registered for it sits behind the admin role gate.
type AdminHandler struct {
	uc     usecase.AdminUsecase
	logger *slog.Logger
}

// NewAdminHandler is the constructor for AdminHandler, injected by Fx.
func NewAdminHandler(uc usecase.AdminUsecase, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{uc: uc, logger: logger}
}

// ListUsers returns accounts filtered by role, status and search term.
func (h *AdminHandler) ListUsers(c echo.Context) error {
	input := &usecase.ListUsersInput{
		Search: c.QueryParam("q"),
		Page:   queryInt(c, "page"),
		Limit:  queryInt(c, "limit"),
	}
	if raw := c.QueryParam("role"); raw != "" {
		role := entity.Role(raw)
		input.Role = &role
	}
	if raw := c.QueryParam("status"); raw != "" {
		status := entity.UserStatus(raw)
		input.Status = &status
	}

	output, err := h.uc.ListUsers(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, ListEnvelope{
		Items:      newUserViews(output.Users, true),
		Pagination: output.PageInfo,
	}, "")
}

type updateUserStatusRequest struct {
	Status entity.UserStatus `json:"status"`
	Reason string            `json:"reason"`
}

// UpdateUserStatus flips an account's lifecycle status.
func (h *AdminHandler) UpdateUserStatus(c echo.Context) error {
	adminID, ok := deliverycontext.GetUserID(c)
	if !ok {
		return domainerrors.ErrUnauthorized
	}

	userID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("invalid user id")
	}

	var req updateUserStatusRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid status input")
	}

	input := &usecase.UpdateUserStatusInput{Status: req.Status, Reason: req.Reason}
	if err := c.Validate(input); err != nil {
		return err
	}

	user, err := h.uc.UpdateUserStatus(c.Request().Context(), adminID, userID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newUserView(user, true), "User status updated successfully")
}

// ListBusinessProfiles returns storefronts with their owner accounts.
func (h *AdminHandler) ListBusinessProfiles(c echo.Context) error {
	input := &usecase.ListBusinessProfilesInput{
		Search: c.QueryParam("q"),
		Page:   queryInt(c, "page"),
		Limit:  queryInt(c, "limit"),
	}
	if raw := c.QueryParam("status"); raw != "" {
		status := entity.BusinessStatus(raw)
		input.Status = &status
	}

	output, err := h.uc.ListBusinessProfiles(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, ListEnvelope{
		Items:      newBusinessProfileViews(output.Profiles, true),
		Pagination: output.PageInfo,
	}, "")
}

// ListPendingVerification returns storefronts awaiting review.
func (h *AdminHandler) ListPendingVerification(c echo.Context) error {
	output, err := h.uc.ListPendingVerification(c.Request().Context(), queryPagination(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, ListEnvelope{
		Items:      newBusinessProfileViews(output.Profiles, true),
		Pagination: output.PageInfo,
	}, "")
}

type updateBusinessStatusRequest struct {
	Status entity.BusinessStatus `json:"status"`
	Reason string                `json:"reason"`
}

// UpdateBusinessStatus flips a storefront's verification status. Activating
// a storefront grants the owner the vendor role; rejecting or suspending it
// reverts the owner to a plain user.
func (h *AdminHandler) UpdateBusinessStatus(c echo.Context) error {
	adminID, ok := deliverycontext.GetUserID(c)
	if !ok {
		return domainerrors.ErrUnauthorized
	}

	profileID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("invalid business profile id")
	}

	var req updateBusinessStatusRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid status input")
	}

	input := &usecase.UpdateBusinessStatusInput{Status: req.Status, Reason: req.Reason}
	if err := c.Validate(input); err != nil {
		return err
	}

	profile, err := h.uc.UpdateBusinessStatus(c.Request().Context(), adminID, profileID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newBusinessProfileView(profile, true), "Business status updated successfully")
}

// Stats returns marketplace-wide status aggregations for the dashboard
// overview.
func (h *AdminHandler) Stats(c echo.Context) error {
	stats, err := h.uc.Stats(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newDashboardStatsView(stats), "")
}

// RecentActivity returns the dashboard activity feed.
func (h *AdminHandler) RecentActivity(c echo.Context) error {
	input := &usecase.RecentActivityInput{
		Days:   queryInt(c, "days"),
		Action: c.QueryParam("action"),
		Limit:  queryInt(c, "limit"),
	}
	if err := c.Validate(input); err != nil {
		return err
	}

	logs, err := h.uc.RecentActivity(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newAdminLogViews(logs), "")
}
