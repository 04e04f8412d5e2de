// Package validator adapts go-playground/validator to echo's Validator
// interface.
package validator

import (
	domainerrors "marketplace/internal/domain/errors"

	playground "github.com/go-playground/validator/v10"
)

// Validator wraps a shared validate instance; echo calls it for every bound
// request payload.
type Validator struct {
	validate *playground.Validate
}

// New creates the echo request validator.
func New() *Validator {
	return &Validator{validate: playground.New(playground.WithRequiredStructEnabled())}
}

// Validate implements echo.Validator. Violations surface as a 400 AppError
// carrying the validator's field report.
func (v *Validator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	return nil
}
