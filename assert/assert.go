//go:build !noassert

package assert

import (
	"fmt"
	"runtime"
	"sync/atomic"
)

var disabled atomic.Bool

// Disable turns off assertion evaluation globally.
// Tests use this to exercise code paths past a failed invariant.
func Disable() {
	disabled.Store(true)
}

// Enable turns assertion evaluation back on after [Disable].
func Enable() {
	disabled.Store(false)
}

func caller() string {
	_, file, line, ok := runtime.Caller(2)
	if !ok {
		return "unknown"
	}
	return fmt.Sprintf("'%s#%d'", file, line)
}

// True panics, naming the label and the caller, if result is false.
func True(label string, result bool) {
	if disabled.Load() || result {
		return
	}
	panic(fmt.Sprintf("assertion '%s' failed at %s", label, caller()))
}

// TrueFunc is like [True], but only evaluates the assertion when assertions are enabled.
func TrueFunc(label string, assertion func() bool) {
	if disabled.Load() || assertion() {
		return
	}
	panic(fmt.Sprintf("assertion '%s' failed at %s", label, caller()))
}
