package document

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned by lookups that miss. It is an expected outcome,
// not a failure.
var ErrNotFound = errors.New("not found")

// ErrCategoryExists signals that a category with the same name is already
// registered.
var ErrCategoryExists = errors.New("category already exists")

// ValidationError reports bad user input. It is always surfaced to the
// caller and never persisted.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

func NewValidationError(format string, args ...any) *ValidationError {
	return &ValidationError{Reason: fmt.Sprintf(format, args...)}
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var vErr *ValidationError
	return errors.As(err, &vErr)
}
