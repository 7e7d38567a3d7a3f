package httpx

import (
	"net/http"
)

// Middleware is a function that wraps another [http.Handler] to inject logic before or after the handler is run.
type Middleware func(next http.Handler) http.Handler

// Chain composes middlewares into one, so that the first given runs first.
// Nil middlewares are skipped, which allows optional layers like request logging to be left out by configuration.
func Chain(middlewares ...Middleware) Middleware {
	var chain []Middleware
	for _, mw := range middlewares {
		if mw != nil {
			chain = append(chain, mw)
		}
	}
	return func(next http.Handler) http.Handler {
		for i := len(chain) - 1; i >= 0; i-- {
			next = chain[i](next)
		}
		return next
	}
}

// Wrap applies middlewares to a handler with [Chain].
// The handler is returned unchanged if no middleware are given.
func Wrap(next http.Handler, middlewares ...Middleware) http.Handler {
	if next == nil {
		panic("nil handler")
	}
	return Chain(middlewares...)(next)
}
