// Package validator adapts go-playground/validator to echo's Validator hook.
package validator

import (
	playground "github.com/go-playground/validator/v10"
)

// Validator validates bound request DTOs against their struct tags.
type Validator struct {
	validate *playground.Validate
}

// New creates the request validator registered on the echo server.
func New() *Validator {
	return &Validator{validate: playground.New()}
}

// Validate implements echo.Validator. The raw playground error is returned
// so the error middleware can break it down into field-level entries.
func (v *Validator) Validate(i any) error {
	return v.validate.Struct(i)
}
