// Package validate exposes the shared struct validator.
package validate

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	apperrors "studyhub/internal/platform/errors"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Struct checks s against its `validate` tags. Failures wrap
// apperrors.ErrInvalidInput and name the offending fields.
func Struct(s any) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) {
		names := make([]string, 0, len(fieldErrs))
		for _, fe := range fieldErrs {
			names = append(names, fmt.Sprintf("%s(%s)", fe.Field(), fe.Tag()))
		}
		return fmt.Errorf("%w: %s", apperrors.ErrInvalidInput, strings.Join(names, ", "))
	}
	return fmt.Errorf("validate: %w", err)
}

// Var checks a single value against a tag expression such as "required".
func Var(v any, tag string) error {
	if err := validate.Var(v, tag); err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrInvalidInput, err)
	}
	return nil
}
