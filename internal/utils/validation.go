package utils

import (
	"errors"
	"fmt"
	"strings"

	"github.com/SscSPs/inventory_management_app/internal/apperrors"
	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Reject names that are only whitespace.
	_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
	return v
}

// Validator exposes the shared validator so the HTTP binding layer can use the same rules.
func Validator() *validator.Validate {
	return validate
}

// ValidateStruct checks data against its `validate` tags.
// The returned error wraps apperrors.ErrValidation and names the first failing field.
func ValidateStruct(data any) error {
	err := validate.Struct(data)
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) && len(validationErrs) > 0 {
		first := validationErrs[0]
		return fmt.Errorf("%w: field '%s' failed on the '%s' rule", apperrors.ErrValidation, first.Field(), first.Tag())
	}
	return fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
}
