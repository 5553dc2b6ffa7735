// Package validator adapts go-playground/validator to echo's Validator interface.
package validator

import (
	playground "github.com/go-playground/validator/v10"
)

// Validator wraps a shared validate instance for echo.
type Validator struct {
	validate *playground.Validate
}

// New creates the echo validator.
func New() *Validator {
	return &Validator{
		validate: playground.New(),
	}
}

// Validate runs struct validation on the bound request.
func (v *Validator) Validate(i any) error {
	return v.validate.Struct(i)
}
