package validators

import (
	"github.com/go-playground/validator/v10"
)

// Validator adapts go-playground/validator to echo's Validator
// interface so request DTOs are checked via their validate tags.
type Validator struct {
	validate *validator.Validate
}

// NewValidator creates a Validator with a shared validate instance
func NewValidator() *Validator {
	return &Validator{validate: validator.New()}
}

// Validate implements echo.Validator
func (v *Validator) Validate(i interface{}) error {
	return v.validate.Struct(i)
}
