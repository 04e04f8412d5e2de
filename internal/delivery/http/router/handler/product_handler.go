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

// ProductHandler holds dependencies for listing handlers.
type ProductHandler struct {
	uc     usecase.ProductUsecase
	logger *slog.Logger
}

// NewProductHandler is the constructor for ProductHandler, injected by Fx.
func NewProductHandler(uc usecase.ProductUsecase, logger *slog.Logger) *ProductHandler {
	return &ProductHandler{uc: uc, logger: logger}
}

// List returns the public product listing.
func (h *ProductHandler) List(c echo.Context) error {
	input := &usecase.ListProductsInput{
		CategoryID: queryUUID(c, "category"),
		Tag:        c.QueryParam("tag"),
		MinPrice:   queryFloat(c, "minPrice"),
		MaxPrice:   queryFloat(c, "maxPrice"),
		Search:     c.QueryParam("q"),
		Sort:       entity.ProductSort(c.QueryParam("sort")),
		Page:       queryInt(c, "page"),
		Limit:      queryInt(c, "limit"),
	}
	if err := c.Validate(input); err != nil {
		return err
	}

	output, err := h.uc.List(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	_, authenticated := deliverycontext.GetUserID(c)

	return response.Success(c, http.StatusOK, ListEnvelope{
		Items:      newProductViews(output.Products, authenticated),
		Pagination: output.PageInfo,
	}, "")
}

// Get returns one product with its vendor preview.
func (h *ProductHandler) Get(c echo.Context) error {
	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("invalid product id")
	}

	product, err := h.uc.Get(c.Request().Context(), productID)
	if err != nil {
		return errors.WithStack(err)
	}

	_, authenticated := deliverycontext.GetUserID(c)

	return response.Success(c, http.StatusOK, newProductView(product, authenticated), "")
}

type createProductRequest struct {
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Price       float64    `json:"price"`
	Condition   string     `json:"condition"`
	CategoryID  *uuid.UUID `json:"categoryId"`
	Images      []string   `json:"images"`
	Tags        []string   `json:"tags"`
}

// Create publishes a listing under the caller's storefront.
func (h *ProductHandler) Create(c echo.Context) error {
	userID, ok := deliverycontext.GetUserID(c)
	if !ok {
		return domainerrors.ErrUnauthorized
	}

	var req createProductRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid product input")
	}

	input := &usecase.CreateProductInput{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Condition:   req.Condition,
		CategoryID:  req.CategoryID,
		Images:      req.Images,
		Tags:        req.Tags,
	}
	if err := c.Validate(input); err != nil {
		return err
	}

	product, err := h.uc.Create(c.Request().Context(), userID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, newProductView(product, true), "Product created successfully")
}

type updateProductRequest struct {
	Name        *string               `json:"name"`
	Description *string               `json:"description"`
	Price       *float64              `json:"price"`
	Condition   *string               `json:"condition"`
	CategoryID  *uuid.UUID            `json:"categoryId"`
	Images      []string              `json:"images"`
	Tags        []string              `json:"tags"`
	Status      *entity.ProductStatus `json:"status"`
}

// Update applies a partial update to a listing.
func (h *ProductHandler) Update(c echo.Context) error {
	userID, ok := deliverycontext.GetUserID(c)
	if !ok {
		return domainerrors.ErrUnauthorized
	}

	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("invalid product id")
	}

	var req updateProductRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid product input")
	}

	input := &usecase.UpdateProductInput{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Condition:   req.Condition,
		CategoryID:  req.CategoryID,
		Images:      req.Images,
		Tags:        req.Tags,
		Status:      req.Status,
	}
	if err := c.Validate(input); err != nil {
		return err
	}

	product, err := h.uc.Update(c.Request().Context(), userID, productID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newProductView(product, true), "Product updated successfully")
}

// Delete soft-deletes a listing.
func (h *ProductHandler) Delete(c echo.Context) error {
	userID, ok := deliverycontext.GetUserID(c)
	if !ok {
		return domainerrors.ErrUnauthorized
	}

	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("invalid product id")
	}

	if err := h.uc.Delete(c.Request().Context(), userID, productID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Product deleted successfully")
}

// ContactView records a contact-reveal event and returns the vendor's
// contact details.
func (h *ProductHandler) ContactView(c echo.Context) error {
	userID, ok := deliverycontext.GetUserID(c)
	if !ok {
		return domainerrors.ErrUnauthorized
	}

	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("invalid product id")
	}

	output, err := h.uc.RecordContactView(c.Request().Context(), userID, productID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"productId":      output.ProductID,
		"businessName":   output.BusinessName,
		"businessPhone":  output.BusinessPhone,
		"whatsappNumber": output.WhatsappNumber,
		"businessEmail":  output.BusinessEmail,
		"address":        output.Address,
	}, "")
}
