package builder

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

var errZero = validation.NewError("validation_zero_value", "must not be the zero value")

type zeroer interface {
	IsZero() bool
}

// NotZero rejects values whose IsZero method reports true, such as the nil UUID.
var NotZero = validation.By(func(value interface{}) error {
	if z, ok := value.(zeroer); ok && z.IsZero() {
		return errZero
	}
	return nil
})
