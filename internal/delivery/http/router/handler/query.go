package handler

import (
	"strconv"
	"time"

	"marketplace/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// Query parameter helpers shared by the list handlers. Unparseable values
// fall back to the zero value; validation of business constraints happens
// in the usecase inputs.

func queryInt(c echo.Context, name string) int {
	value, err := strconv.Atoi(c.QueryParam(name))
	if err != nil {
		return 0
	}

	return value
}

func queryFloat(c echo.Context, name string) *float64 {
	raw := c.QueryParam(name)
	if raw == "" {
		return nil
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil
	}

	return &value
}

func queryUUID(c echo.Context, name string) *uuid.UUID {
	raw := c.QueryParam(name)
	if raw == "" {
		return nil
	}
	value, err := uuid.Parse(raw)
	if err != nil {
		return nil
	}

	return &value
}

// queryDate accepts RFC 3339 timestamps and plain dates.
func queryDate(c echo.Context, name string) *time.Time {
	raw := c.QueryParam(name)
	if raw == "" {
		return nil
	}

	if value, err := time.Parse(time.RFC3339, raw); err == nil {
		return &value
	}
	if value, err := time.Parse("2006-01-02", raw); err == nil {
		return &value
	}

	return nil
}

func queryPagination(c echo.Context) repository.Pagination {
	return repository.Pagination{
		Page:  queryInt(c, "page"),
		Limit: queryInt(c, "limit"),
	}
}
