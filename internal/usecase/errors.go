package usecase

import (
	"errors"

	"cinema-client/pkg/utils"
)

// ValidationError is a local precondition failure. It never reaches the
// network and always names the field it blames.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + utils.FormatValidationErrors(e.Fields)
}

func newValidationError(field, message string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: message}}
}

func validationErrorFrom(fields map[string]string) *ValidationError {
	return &ValidationError{Fields: fields}
}

func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// validate runs struct-tag validation and converts the result into a
// field-attributable ValidationError.
func validate(req any) error {
	if fields := utils.ValidateStruct(req); len(fields) > 0 {
		return validationErrorFrom(fields)
	}
	return nil
}
