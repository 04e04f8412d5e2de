package handler

import (
	"log/slog"
	"net/http"

	deliverycontext "marketplace/internal/delivery/context"
	"marketplace/internal/delivery/http/response"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/errors"
	"marketplace/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// UserHandler holds dependencies for account handlers.
type UserHandler struct {
	uc     usecase.UserUsecase
	logger *slog.Logger
}

// NewUserHandler is the constructor for UserHandler, injected by Fx.
func NewUserHandler(uc usecase.UserUsecase, logger *slog.Logger) *UserHandler {
	return &UserHandler{uc: uc, logger: logger}
}

// GetMe returns the caller's own account.
func (h *UserHandler) GetMe(c echo.Context) error {
	userID, ok := deliverycontext.GetUserID(c)
	if !ok {
		return domainerrors.ErrUnauthorized
	}

	user, err := h.uc.GetMe(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newUserView(user, true), "")
}

type updateUserRequest struct {
	FirstName      *string `json:"firstName"`
	LastName       *string `json:"lastName"`
	ProfilePicture *string `json:"profilePicture"`
	PhoneNumber    *string `json:"phoneNumber"`
	WhatsappNumber *string `json:"whatsappNumber"`
	ShopLink       *string `json:"shopLink"`
	ProfileLink    *string `json:"profileLink"`
}

// UpdateMe applies a partial update to the caller's own account.
func (h *UserHandler) UpdateMe(c echo.Context) error {
	userID, ok := deliverycontext.GetUserID(c)
	if !ok {
		return domainerrors.ErrUnauthorized
	}

	var req updateUserRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid update input")
	}

	input := &usecase.UpdateUserInput{
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		ProfilePicture: req.ProfilePicture,
		PhoneNumber:    req.PhoneNumber,
		WhatsappNumber: req.WhatsappNumber,
		ShopLink:       req.ShopLink,
		ProfileLink:    req.ProfileLink,
	}
	if err := c.Validate(input); err != nil {
		return err
	}

	user, err := h.uc.UpdateMe(c.Request().Context(), userID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newUserView(user, true), "Profile updated successfully")
}

// DeleteMe soft-deletes the caller's own account.
func (h *UserHandler) DeleteMe(c echo.Context) error {
	userID, ok := deliverycontext.GetUserID(c)
	if !ok {
		return domainerrors.ErrUnauthorized
	}

	if err := h.uc.DeleteMe(c.Request().Context(), userID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Account deleted successfully")
}

// GetByID returns another account for public display. Contact fields are
// only included for authenticated viewers.
func (h *UserHandler) GetByID(c echo.Context) error {
	targetID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("invalid user id")
	}

	user, err := h.uc.GetByID(c.Request().Context(), targetID)
	if err != nil {
		return errors.WithStack(err)
	}

	_, authenticated := deliverycontext.GetUserID(c)

	return response.Success(c, http.StatusOK, newUserView(user, authenticated), "")
}
