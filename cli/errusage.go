package cli

import (
	"errors"
	"fmt"
)

// UsageError signals that usage information should be shown along with the error.
// [App.Exec] returns one for any input rejected by the parser, and actions may return one with [NewUsageError]
// to reject their operands or option values.
type UsageError struct {
	wrapped error
	path    []string
}

func (e *UsageError) Error() string {
	if e.wrapped == nil {
		return "usage error"
	}
	return "usage error: " + e.wrapped.Error()
}

func (e *UsageError) Is(err error) bool {
	_, ok := err.(*UsageError)
	return ok
}

func (e *UsageError) Unwrap() error {
	return e.wrapped
}

// Path returns the segment path, from the root name down, whose usage was printed with this error.
// It's nil until the error has been reported by [App.Exec].
func (e *UsageError) Path() []string {
	return e.path
}

// NewUsageError creates a [UsageError], passing format and args to [fmt.Errorf].
func NewUsageError(format string, args ...any) error {
	return &UsageError{wrapped: fmt.Errorf(format, args...)}
}

// AsUsageError finds the first [UsageError] in err's chain.
func AsUsageError(err error) (*UsageError, bool) {
	var uerr *UsageError
	if errors.As(err, &uerr) {
		return uerr, true
	}
	return nil, false
}
