package handler

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	deliverycontext "marketplace/internal/delivery/context"
	"marketplace/internal/domain/entity"
	"marketplace/internal/domain/repository"
	"marketplace/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubProductUsecase wires canned responses into the handler under test.
type stubProductUsecase struct {
	product *entity.Product
	err     error
}

func (s *stubProductUsecase) List(context.Context, *usecase.ListProductsInput) (*usecase.ProductListOutput, error) {
	return &usecase.ProductListOutput{Products: []*entity.Product{s.product}}, s.err
}

func (s *stubProductUsecase) ListByCategory(context.Context, uuid.UUID, repository.Pagination) (*usecase.ProductListOutput, error) {
	return &usecase.ProductListOutput{Products: []*entity.Product{s.product}}, s.err
}

func (s *stubProductUsecase) Get(context.Context, uuid.UUID) (*entity.Product, error) {
	return s.product, s.err
}

func (s *stubProductUsecase) Create(context.Context, uuid.UUID, *usecase.CreateProductInput) (*entity.Product, error) {
	return s.product, s.err
}

func (s *stubProductUsecase) Update(context.Context, uuid.UUID, uuid.UUID, *usecase.UpdateProductInput) (*entity.Product, error) {
	return s.product, s.err
}

func (s *stubProductUsecase) Delete(context.Context, uuid.UUID, uuid.UUID) error {
	return s.err
}

func (s *stubProductUsecase) RecordContactView(context.Context, uuid.UUID, uuid.UUID) (*usecase.ContactViewOutput, error) {
	return nil, s.err
}

func newTestProduct() *entity.Product {
	return &entity.Product{
		ID:     uuid.New(),
		Name:   "Oak Desk",
		Price:  240,
		Status: entity.ProductStatusActive,
		Vendor: &entity.BusinessProfile{
			ID:           uuid.New(),
			BusinessName: "Oak & Co",
			Address:      "12 Main St",
		},
	}
}

func newProductTestContext(t *testing.T, productID uuid.UUID) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/products/"+productID.String(), nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(productID.String())

	return c, rec
}

func TestProductHandler_Get_HidesVendorAddressFromGuests(t *testing.T) {
	product := newTestProduct()
	handler := NewProductHandler(&stubProductUsecase{product: product}, slog.New(slog.NewTextHandler(io.Discard, nil)))

	c, rec := newProductTestContext(t, product.ID)

	err := handler.Get(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	body := rec.Body.String()
	assert.Contains(t, body, "Oak Desk")
	assert.Contains(t, body, "Oak & Co")
	assert.NotContains(t, body, "12 Main St")
}

func TestProductHandler_Get_RevealsVendorAddressToSignedInViewers(t *testing.T) {
	product := newTestProduct()
	handler := NewProductHandler(&stubProductUsecase{product: product}, slog.New(slog.NewTextHandler(io.Discard, nil)))

	c, rec := newProductTestContext(t, product.ID)
	deliverycontext.SetUserID(c, uuid.New())

	err := handler.Get(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "12 Main St")
}

func TestProductHandler_Get_RejectsMalformedID(t *testing.T) {
	handler := NewProductHandler(&stubProductUsecase{}, slog.New(slog.NewTextHandler(io.Discard, nil)))

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/products/not-a-uuid", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("not-a-uuid")

	err := handler.Get(c)
	assert.Error(t, err)
}
