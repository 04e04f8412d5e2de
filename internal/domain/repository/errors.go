// Package repository defines the persistence contracts consumed by the
// usecase layer. Implementations live in internal/infra/persistence.
package repository

import "marketplace/internal/errors"

// Sentinel errors returned by repositories. Usecases translate these into
// AppError values before they reach the delivery layer.
var (
	ErrUserNotFound            = errors.New("user not found")
	ErrAuthNotFound            = errors.New("authentication not found")
	ErrRefreshTokenNotFound    = errors.New("refresh token not found")
	ErrBusinessProfileNotFound = errors.New("business profile not found")
	ErrDuplicateBusinessOwner  = errors.New("business profile already exists for owner")
	ErrDuplicateBusinessSlug   = errors.New("business profile slug already taken")
	ErrProductNotFound         = errors.New("product not found")
	ErrCategoryNotFound        = errors.New("category not found")
	ErrAdminLogNotFound        = errors.New("admin log entry not found")
)
