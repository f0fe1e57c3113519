// Package validator adapts go-playground/validator to Echo's Validator
// interface so handlers can call c.Validate on bound DTOs.
package validator

import (
	domainerrors "taskhub/internal/domain/errors"

	"github.com/go-playground/validator/v10"
)

// Validator wraps a single validator instance; it is safe for concurrent use.
type Validator struct {
	validate *validator.Validate
}

// New creates the Echo request validator.
func New() *Validator {
	return &Validator{validate: validator.New()}
}

// Validate checks struct tags and renders failures as a 400 application
// error carrying the field details.
func (v *Validator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	return nil
}
