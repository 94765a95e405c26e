// Package validator adapts go-playground/validator to echo's Validator interface.
package validator

import (
	domainerrors "board/internal/domain/errors"

	playground "github.com/go-playground/validator/v10"
)

// echoValidator wraps a single validator instance; it is safe for concurrent
// use and caches struct metadata internally.
type echoValidator struct {
	validate *playground.Validate
}

// New creates the validator used by the echo server.
func New() *echoValidator {
	return &echoValidator{validate: playground.New(playground.WithRequiredStructEnabled())}
}

// Validate implements echo.Validator. Failures surface as the domain's
// validation error so the error middleware renders them uniformly.
func (v *echoValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	return nil
}
