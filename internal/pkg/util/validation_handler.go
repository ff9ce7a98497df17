package util

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// ValidationError carries a field-level validation failure message.
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string {
	return e.msg
}

// ValidateDTO runs struct validation and flattens the first failure into a
// field-level message.
func ValidateDTO(dto any) error {
	if err := validate.Struct(dto); err != nil {
		var vErrs validator.ValidationErrors
		if errors.As(err, &vErrs) {
			firstError := vErrs[0]
			msg := fmt.Sprintf("field [%s] failed validation on rule [%s]",
				firstError.Field(),
				firstError.Tag())
			return &ValidationError{msg: msg}
		}
	}
	return nil
}
