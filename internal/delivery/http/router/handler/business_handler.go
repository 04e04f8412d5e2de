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

// BusinessHandler holds dependencies for storefront handlers.
type BusinessHandler struct {
	uc     usecase.BusinessUsecase
	logger *slog.Logger
}

// NewBusinessHandler is the constructor for BusinessHandler, injected by Fx.
func NewBusinessHandler(uc usecase.BusinessUsecase, logger *slog.Logger) *BusinessHandler {
	return &BusinessHandler{uc: uc, logger: logger}
}

type createBusinessRequest struct {
	BusinessName   string `json:"businessName"`
	BusinessEmail  string `json:"businessEmail"`
	BusinessPhone  string `json:"businessPhone"`
	WhatsappNumber string `json:"whatsappNumber"`
	Description    string `json:"description"`
	Address        string `json:"address"`
	CoverImage     string `json:"coverImage"`
	ProfileImage   string `json:"profileImage"`
}

// Create onboards the caller's storefront.
func (h *BusinessHandler) Create(c echo.Context) error {
	userID, ok := deliverycontext.GetUserID(c)
	if !ok {
		return domainerrors.ErrUnauthorized
	}

	var req createBusinessRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid business profile input")
	}

	input := &usecase.CreateBusinessProfileInput{
		BusinessName:   req.BusinessName,
		BusinessEmail:  req.BusinessEmail,
		BusinessPhone:  req.BusinessPhone,
		WhatsappNumber: req.WhatsappNumber,
		Description:    req.Description,
		Address:        req.Address,
		CoverImage:     req.CoverImage,
		ProfileImage:   req.ProfileImage,
	}
	if err := c.Validate(input); err != nil {
		return err
	}

	profile, err := h.uc.Create(c.Request().Context(), userID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, newBusinessProfileView(profile, true), "Business profile created successfully")
}

type updateBusinessRequest struct {
	BusinessName   *string `json:"businessName"`
	BusinessEmail  *string `json:"businessEmail"`
	BusinessPhone  *string `json:"businessPhone"`
	WhatsappNumber *string `json:"whatsappNumber"`
	CoverImage     *string `json:"coverImage"`
	ProfileImage   *string `json:"profileImage"`
	Address        *string `json:"address"`
	Description    *string `json:"description"`
}

// Update applies a partial update to a storefront.
func (h *BusinessHandler) Update(c echo.Context) error {
	userID, ok := deliverycontext.GetUserID(c)
	if !ok {
		return domainerrors.ErrUnauthorized
	}

	profileID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("invalid business profile id")
	}

	var req updateBusinessRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid business profile input")
	}

	input := &usecase.UpdateBusinessProfileInput{
		BusinessName:   req.BusinessName,
		BusinessEmail:  req.BusinessEmail,
		BusinessPhone:  req.BusinessPhone,
		WhatsappNumber: req.WhatsappNumber,
		CoverImage:     req.CoverImage,
		ProfileImage:   req.ProfileImage,
		Address:        req.Address,
		Description:    req.Description,
	}
	if err := c.Validate(input); err != nil {
		return err
	}

	profile, err := h.uc.Update(c.Request().Context(), userID, profileID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newBusinessProfileView(profile, true), "Business profile updated successfully")
}
