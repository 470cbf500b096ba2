// Package validator adapts go-playground/validator to echo's Validator.
package validator

import (
	"fmt"
	"reflect"
	"strings"
	"unicode"

	domainerrors "shopcart/internal/domain/errors"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

// CustomValidator validates request structs and reports the first failing
// field as a validation AppError.
type CustomValidator struct {
	validate *validator.Validate
}

// New returns a validator that names fields after their json tags.
func New() *CustomValidator {
	validate := validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(jsonFieldName)

	return &CustomValidator{validate: validate}
}

// Validate implements echo.Validator.
func (cv *CustomValidator) Validate(i any) error {
	err := cv.validate.Struct(i)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		return domainerrors.ErrValidationFailed.WithMessage("%s", fieldMessage(fieldErrs[0]))
	}

	return domainerrors.ErrValidationFailed.WithDetails(err.Error())
}

func fieldMessage(fe validator.FieldError) string {
	name := Humanize(fe.Field())

	switch fe.Tag() {
	case "required":
		return name + " is required"
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", name, fe.Param())
	case "gte", "min":
		return fmt.Sprintf("%s must be at least %s", name, fe.Param())
	case "email":
		return name + " must be a valid email address"
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", name, strings.ReplaceAll(fe.Param(), " ", ", "))
	default:
		return name + " is invalid"
	}
}

func jsonFieldName(field reflect.StructField) string {
	name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
	if name == "-" {
		return ""
	}
	if name == "" {
		return field.Name
	}

	return name
}

// Humanize turns a camelCase field name into words, e.g. "shippingAddress"
// becomes "Shipping address" and "cartId" becomes "Cart ID".
func Humanize(field string) string {
	var words []string
	start := 0
	runes := []rune(field)
	for i := 1; i < len(runes); i++ {
		if unicode.IsUpper(runes[i]) && !unicode.IsUpper(runes[i-1]) {
			words = append(words, string(runes[start:i]))
			start = i
		}
	}
	words = append(words, string(runes[start:]))

	for i, word := range words {
		lower := strings.ToLower(word)
		switch {
		case lower == "id" || lower == "url":
			words[i] = strings.ToUpper(lower)
		case i == 0:
			words[i] = strings.ToUpper(lower[:1]) + lower[1:]
		default:
			words[i] = lower
		}
	}

	return strings.Join(words, " ")
}
