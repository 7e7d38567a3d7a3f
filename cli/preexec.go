package cli

import (
	"sync"

	"github.com/saylorsolutions/segroute/route"
)

// PreExec runs before an action, with the [route.Context] that selected it.
type PreExec func(c *route.Context) error

var (
	preExecMux    sync.Mutex
	globalPreExec []PreExec
)

// AddGlobalPreExec registers a function that's executed right before any action runs.
// If it returns an error, then the action isn't run, and the error is returned from [App.Exec] instead.
// Nothing runs before usage is shown.
//
// Passing a nil [PreExec] function to this function will panic.
func AddGlobalPreExec(fn PreExec) {
	if fn == nil {
		panic("nil pre-exec function")
	}
	preExecMux.Lock()
	defer preExecMux.Unlock()
	globalPreExec = append(globalPreExec, fn)
}

func runGlobalPreExec(c *route.Context) error {
	preExecMux.Lock()
	defer preExecMux.Unlock()
	for _, fn := range globalPreExec {
		if err := fn(c); err != nil {
			return err
		}
	}
	return nil
}
