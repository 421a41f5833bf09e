// Package validator wires go-playground/validator into echo's binding flow.
package validator

import (
	domainerrors "wlsd/internal/domain/errors"

	playground "github.com/go-playground/validator/v10"
)

// CustomValidator adapts go-playground/validator to echo.Validator.
type CustomValidator struct {
	validate *playground.Validate
}

// New builds the validator used by the echo server.
func New() *CustomValidator {
	return &CustomValidator{
		validate: playground.New(playground.WithRequiredStructEnabled()),
	}
}

// Validate checks struct tags and maps failures to a 400.
func (v *CustomValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return domainerrors.ErrBadRequest.WrapMessage(err.Error())
	}

	return nil
}
