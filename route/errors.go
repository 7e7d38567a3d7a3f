package route

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidInput = errors.New("invalid input")                 // ErrInvalidInput is the root of every error caused by the shape of the input.
	ErrInvalidData  = errors.New("invalid data")                  // ErrInvalidData is returned when a value isn't text, or can't be converted to the requested type.
	ErrConfig       = errors.New("invalid router configuration") // ErrConfig is the root of every build-time error.

	ErrMissingValue      = fmt.Errorf("%w: missing option value", ErrInvalidInput)
	ErrAmbiguousShort    = fmt.Errorf("%w: ambiguous short option cluster", ErrInvalidInput)
	ErrMutuallyExclusive = fmt.Errorf("%w: mutually exclusive options", ErrInvalidInput)
	ErrMissingRequired   = fmt.Errorf("%w: missing a required option", ErrInvalidInput)
	ErrInvalidOption     = fmt.Errorf("%w: option not valid for this command", ErrInvalidInput)
	ErrTooManyArgs       = fmt.Errorf("%w: too many arguments", ErrInvalidInput)
)
