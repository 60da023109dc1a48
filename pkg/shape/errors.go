package shape

import (
	"errors"
	"fmt"
)

// ValidationError reports a blank identity field or a non-positive
// dimension. It is always returned before any state has changed.
type ValidationError struct {
	Kind    Kind
	Field   string
	Value   any
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// IsValidationError reports whether err is or wraps a *ValidationError.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
