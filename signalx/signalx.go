package signalx

import (
	"context"
	"os"
	"os/signal"
	"sync"
)

// exit is replaced in tests.
var exit = os.Exit

// ShutdownContext returns a context that's cancelled when any of the given signals are received.
// If a second signal is received, then the process exits with a non-zero status, so a hung shutdown can be interrupted.
// Calling stop releases the signal handler and cancels the context.
func ShutdownContext(parent context.Context, signals ...os.Signal) (ctx context.Context, stop context.CancelFunc) {
	if len(signals) == 0 {
		panic("no signals passed to ShutdownContext")
	}
	ctx, cancel := context.WithCancel(parent)
	var (
		sigs = make(chan os.Signal, 2)
		done = make(chan struct{})
		once sync.Once
	)
	signal.Notify(sigs, signals...)
	stop = func() {
		once.Do(func() {
			signal.Stop(sigs)
			close(done)
			cancel()
		})
	}
	go func() {
		select {
		case <-sigs:
			cancel()
		case <-done:
			return
		}
		select {
		case <-sigs:
			exit(1)
		case <-done:
		}
	}()
	return ctx, stop
}
