package middleware

import (
	"github.com/go-playground/validator/v10"
)

// RequestValidator runs the validate tags of bound DTOs
type RequestValidator struct {
	validate *validator.Validate
}

func NewRequestValidator() *RequestValidator {
	return &RequestValidator{validate: validator.New(validator.WithRequiredStructEnabled())}
}

func (rv *RequestValidator) Validate(i any) error {
	return rv.validate.Struct(i)
}
