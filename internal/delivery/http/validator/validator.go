// Package validator adapts go-playground/validator to echo's Validator hook so
// malformed input is rejected before a workflow is invoked.
package validator

import (
	domainerrors "signon/internal/domain/errors"

	playground "github.com/go-playground/validator/v10"
)

type echoValidator struct {
	validate *playground.Validate
}

// New builds the request validator installed on the echo server.
func New() *echoValidator {
	return &echoValidator{validate: playground.New()}
}

// Validate checks the bound request struct against its `validate` tags.
// Failures surface as the validation fault with the offending fields attached.
func (v *echoValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	return nil
}
