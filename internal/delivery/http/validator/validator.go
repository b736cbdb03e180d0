// Package validator adapts go-playground/validator to Echo's Validator interface.
package validator

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	domainerrors "pantry/internal/domain/errors"
	"pantry/internal/errors"
)

// echoValidator validates bound request payloads against their struct tags.
// Violations are accumulated: every failed field is reported, not just the first.
type echoValidator struct {
	validate *validator.Validate
}

// New creates the validator used by the Echo server.
func New() echo.Validator {
	return &echoValidator{
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// Validate implements echo.Validator. Any violation maps to the domain's
// validation error with one detail entry per failed field.
func (v *echoValidator) Validate(i any) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}

	var violations validator.ValidationErrors
	if !errors.As(err, &violations) {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	details := make([]string, 0, len(violations))
	for _, violation := range violations {
		details = append(details, describe(violation))
	}

	return domainerrors.ErrValidationFailed.WithDetails(strings.Join(details, "; "))
}

// describe renders a single field violation as a human-readable message.
func describe(violation validator.FieldError) string {
	field := snakeCase(violation.Field())

	switch violation.Tag() {
	case "required":
		return field + " is required"
	case "email":
		return field + " must be a valid email address"
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", field, violation.Param())
	case "min":
		if violation.Kind().String() == "string" {
			return fmt.Sprintf("%s must be at least %s characters long", field, violation.Param())
		}

		return fmt.Sprintf("%s must be at least %s", field, violation.Param())
	default:
		return fmt.Sprintf("%s failed on the %s rule", field, violation.Tag())
	}
}

// snakeCase converts an exported Go field name to its json/bson form,
// e.g. FirstName -> first_name, AmountPerScoop -> amount_per_scoop.
func snakeCase(name string) string {
	var b strings.Builder
	b.Grow(len(name) + 3)

	for i, r := range name {
		if r >= 'A' && r <= 'Z' {
			if i > 0 {
				b.WriteByte('_')
			}
			r += 'a' - 'A'
		}
		b.WriteRune(r)
	}

	return b.String()
}
