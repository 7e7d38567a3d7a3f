package route

import (
	"fmt"
	"strconv"
	"time"
	"unicode/utf8"
)

// Arg iterates the values given for an option.
// It's obtained from [Context.Opt].
type Arg struct {
	context    *Context
	start, end uint16
}

// Len is the number of values left.
func (a *Arg) Len() int {
	if a.end < a.start {
		return 0
	}
	return int(a.end - a.start)
}

// Next returns the next raw value, and false when there are none left.
func (a *Arg) Next() (string, bool) {
	if a.Len() == 0 {
		return "", false
	}
	val := a.context.savedArgs[a.start]
	a.start++
	return val, true
}

// NextAs converts the next value with conv.
// A value that isn't valid text, or fails conversion, returns an error wrapping [ErrInvalidData].
// The zero value and false are returned when there are no values left, so a default can be applied.
func NextAs[T any](a *Arg, conv func(string) (T, error)) (T, bool, error) {
	var zero T
	val, ok := a.Next()
	if !ok {
		return zero, false, nil
	}
	if !utf8.ValidString(val) {
		return zero, true, fmt.Errorf("%w: option value is not valid text", ErrInvalidData)
	}
	converted, err := conv(val)
	if err != nil {
		return zero, true, fmt.Errorf("%w: %v", ErrInvalidData, err)
	}
	return converted, true, nil
}

// Text returns the next value, checked to be valid text.
func (a *Arg) Text() (string, bool, error) {
	return NextAs(a, func(s string) (string, error) {
		return s, nil
	})
}

// Int returns the next value as an int.
func (a *Arg) Int() (int, bool, error) {
	return NextAs(a, strconv.Atoi)
}

// Uint returns the next value as a uint64.
func (a *Arg) Uint() (uint64, bool, error) {
	return NextAs(a, func(s string) (uint64, error) {
		return strconv.ParseUint(s, 10, 64)
	})
}

// Float returns the next value as a float64.
func (a *Arg) Float() (float64, bool, error) {
	return NextAs(a, func(s string) (float64, error) {
		return strconv.ParseFloat(s, 64)
	})
}

// Bool returns the next value as a bool, using [strconv.ParseBool].
func (a *Arg) Bool() (bool, bool, error) {
	return NextAs(a, strconv.ParseBool)
}

// Duration returns the next value as a [time.Duration].
func (a *Arg) Duration() (time.Duration, bool, error) {
	return NextAs(a, time.ParseDuration)
}
