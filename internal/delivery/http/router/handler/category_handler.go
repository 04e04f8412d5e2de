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

// CategoryHandler holds dependencies for category handlers.
type CategoryHandler struct {
	uc        usecase.CategoryUsecase
	productUC usecase.ProductUsecase
	logger    *slog.Logger
}

// NewCategoryHandler is the constructor for CategoryHandler, injected by Fx.
func NewCategoryHandler(uc usecase.CategoryUsecase, productUC usecase.ProductUsecase, logger *slog.Logger) *CategoryHandler {
	return &CategoryHandler{uc: uc, productUC: productUC, logger: logger}
}

// List returns active categories, optionally filtered by parent or name.
func (h *CategoryHandler) List(c echo.Context) error {
	input := &usecase.ListCategoriesInput{
		ParentID: queryUUID(c, "parent"),
		Search:   c.QueryParam("q"),
		Page:     queryInt(c, "page"),
		Limit:    queryInt(c, "limit"),
	}

	output, err := h.uc.List(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, ListEnvelope{
		Items:      newCategoryViews(output.Categories),
		Pagination: output.PageInfo,
	}, "")
}

// ListTopLevel returns the active root categories.
func (h *CategoryHandler) ListTopLevel(c echo.Context) error {
	output, err := h.uc.ListTopLevel(c.Request().Context(), queryPagination(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, ListEnvelope{
		Items:      newCategoryViews(output.Categories),
		Pagination: output.PageInfo,
	}, "")
}

// Get returns one category.
func (h *CategoryHandler) Get(c echo.Context) error {
	categoryID, err := parseCategoryID(c)
	if err != nil {
		return err
	}

	category, err := h.uc.Get(c.Request().Context(), categoryID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newCategoryView(category), "")
}

// GetWithChildren returns a category with its direct children.
func (h *CategoryHandler) GetWithChildren(c echo.Context) error {
	categoryID, err := parseCategoryID(c)
	if err != nil {
		return err
	}

	category, err := h.uc.GetWithChildren(c.Request().Context(), categoryID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newCategoryView(category), "")
}

// GetWithParents returns a category with its ancestor chain.
func (h *CategoryHandler) GetWithParents(c echo.Context) error {
	categoryID, err := parseCategoryID(c)
	if err != nil {
		return err
	}

	category, err := h.uc.GetWithParents(c.Request().Context(), categoryID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newCategoryView(category), "")
}

// GetWithParentsAndChildren returns a category with both traversals.
func (h *CategoryHandler) GetWithParentsAndChildren(c echo.Context) error {
	categoryID, err := parseCategoryID(c)
	if err != nil {
		return err
	}

	category, err := h.uc.GetWithParentsAndChildren(c.Request().Context(), categoryID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newCategoryView(category), "")
}

// ListProducts returns the active products of a category, or of its child
// categories when it has children.
func (h *CategoryHandler) ListProducts(c echo.Context) error {
	categoryID, err := parseCategoryID(c)
	if err != nil {
		return err
	}

	output, err := h.productUC.ListByCategory(c.Request().Context(), categoryID, queryPagination(c))
	if err != nil {
		return errors.WithStack(err)
	}

	_, authenticated := deliverycontext.GetUserID(c)

	return response.Success(c, http.StatusOK, ListEnvelope{
		Items:      newProductViews(output.Products, authenticated),
		Pagination: output.PageInfo,
	}, "")
}

type createCategoryRequest struct {
	Name             string     `json:"name"`
	Description      string     `json:"description"`
	Icon             string     `json:"icon"`
	Image            string     `json:"image"`
	ParentCategoryID *uuid.UUID `json:"parentCategoryId"`
}

// Create adds a category node. Admin only; the role gate runs before this
// handler.
func (h *CategoryHandler) Create(c echo.Context) error {
	adminID, ok := deliverycontext.GetUserID(c)
	if !ok {
		return domainerrors.ErrUnauthorized
	}

	var req createCategoryRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid category input")
	}

	input := &usecase.CreateCategoryInput{
		Name:             req.Name,
		Description:      req.Description,
		Icon:             req.Icon,
		Image:            req.Image,
		ParentCategoryID: req.ParentCategoryID,
	}
	if err := c.Validate(input); err != nil {
		return err
	}

	category, err := h.uc.Create(c.Request().Context(), adminID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, newCategoryView(category), "Category created successfully")
}

type updateCategoryRequest struct {
	Name             *string    `json:"name"`
	Description      *string    `json:"description"`
	Icon             *string    `json:"icon"`
	Image            *string    `json:"image"`
	ParentCategoryID *uuid.UUID `json:"parentCategoryId"`
}

// Update applies a partial update to a category.
func (h *CategoryHandler) Update(c echo.Context) error {
	adminID, ok := deliverycontext.GetUserID(c)
	if !ok {
		return domainerrors.ErrUnauthorized
	}

	categoryID, err := parseCategoryID(c)
	if err != nil {
		return err
	}

	var req updateCategoryRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid category input")
	}

	input := &usecase.UpdateCategoryInput{
		Name:             req.Name,
		Description:      req.Description,
		Icon:             req.Icon,
		Image:            req.Image,
		ParentCategoryID: req.ParentCategoryID,
	}
	if err := c.Validate(input); err != nil {
		return err
	}

	category, err := h.uc.Update(c.Request().Context(), adminID, categoryID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newCategoryView(category), "Category updated successfully")
}

// Delete soft-deletes a category.
func (h *CategoryHandler) Delete(c echo.Context) error {
	adminID, ok := deliverycontext.GetUserID(c)
	if !ok {
		return domainerrors.ErrUnauthorized
	}

	categoryID, err := parseCategoryID(c)
	if err != nil {
		return err
	}

	if err := h.uc.Delete(c.Request().Context(), adminID, categoryID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Category deleted successfully")
}

func parseCategoryID(c echo.Context) (uuid.UUID, error) {
	categoryID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, domainerrors.ErrValidationFailed.WithDetails("invalid category id")
	}

	return categoryID, nil
}
