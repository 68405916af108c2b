package builder

import (
	"errors"
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

var (
	// ErrRequired is reported for a required field that was never set.
	ErrRequired = validation.NewError("validation_required_field", "is required")

	// ErrUnknownField is reported for a name the schema does not declare.
	ErrUnknownField = validation.NewError("validation_unknown_field", "is not a known field")
)

// Error is returned by Build when one or more fields fail.
type Error struct {
	Kind   string
	Fields validation.Errors
}

func (e *Error) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Kind, e.Fields.Error())
}

// Unwrap exposes the per-field errors to errors.As.
func (e *Error) Unwrap() error {
	return e.Fields
}

// FieldError returns the error recorded for field name, if any.
func (e *Error) FieldError(name string) error {
	return e.Fields[name]
}

// FieldCode returns the ozzo error code for a field, or "" when the field
// passed or failed with an error that carries no code.
func FieldCode(err error, name string) string {
	var be *Error
	if !errors.As(err, &be) {
		return ""
	}
	var ve validation.Error
	if errors.As(be.Fields[name], &ve) {
		return ve.Code()
	}
	return ""
}
