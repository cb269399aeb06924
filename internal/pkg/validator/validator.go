package validator

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// Validate - struct validation
func Validate(s interface{}) error {
	return validate.Struct(s)
}

// GetValidator - validator instance for custom configuration
func GetValidator() *validator.Validate {
	return validate
}

// FormatErrors joins field-level validation errors into a single
// user-facing message. Non-validation errors pass through unchanged.
func FormatErrors(err error) string {
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err.Error()
	}

	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		switch fe.Tag() {
		case "required":
			parts = append(parts, fmt.Sprintf("%s is required", fe.Field()))
		case "max":
			parts = append(parts, fmt.Sprintf("%s cannot be longer than %s characters", fe.Field(), fe.Param()))
		case "min":
			parts = append(parts, fmt.Sprintf("%s must be at least %s", fe.Field(), fe.Param()))
		case "email":
			parts = append(parts, fmt.Sprintf("%s must be a valid email address", fe.Field()))
		case "url":
			parts = append(parts, fmt.Sprintf("%s must be a valid URL", fe.Field()))
		default:
			parts = append(parts, fmt.Sprintf("%s failed validation (%s)", fe.Field(), fe.Tag()))
		}
	}

	return strings.Join(parts, ", ")
}
