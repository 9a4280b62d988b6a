package signup

import (
	stderrors "errors"

	validation "github.com/go-ozzo/ozzo-validation"
)

// FieldErrors extracts per-field messages from a validation failure returned
// by Submit. It returns nil for any other error.
func FieldErrors(err error) map[string]string {
	var errs validation.Errors
	if !stderrors.As(err, &errs) {
		return nil
	}

	out := make(map[string]string, len(errs))
	for field, fieldErr := range errs {
		out[field] = fieldErr.Error()
	}
	return out
}
