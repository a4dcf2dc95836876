// Package validators wires go-playground/validator into Echo so handlers
// can call c.Validate on bound request bodies.
package validators

import "github.com/go-playground/validator/v10"

// Validator adapts validator.Validate to the echo.Validator interface.
type Validator struct {
	validate *validator.Validate
}

// NewValidator creates a new Validator
func NewValidator() *Validator {
	return &Validator{validate: validator.New()}
}

// Validate checks the struct's validate tags.
func (v *Validator) Validate(i interface{}) error {
	return v.validate.Struct(i)
}
