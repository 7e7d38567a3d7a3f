package httpx

import (
	"log/slog"
	"net/http"
)

type PanicHandler interface {
	Handle(r *http.Request, recovered any)
}

type PanicHandlerFunc func(r *http.Request, recovered any)

func (f PanicHandlerFunc) Handle(r *http.Request, recovered any) {
	f(r, recovered)
}

// SlogPanicHandler logs recovered panics at [slog.LevelError].
func SlogPanicHandler(l *slog.Logger) PanicHandler {
	return PanicHandlerFunc(func(r *http.Request, recovered any) {
		l.ErrorContext(r.Context(), "Recovered from panic", "uri", r.URL.RequestURI(), "panic", recovered)
	})
}

// RecoveryMiddleware recovers panics from the next handler, reports them to handler, and responds with a 500 status.
func RecoveryMiddleware(handler PanicHandler) Middleware {
	if handler == nil {
		panic("nil panic handler")
	}
	return func(next http.Handler) http.Handler {
		if next == nil {
			panic("nil handler")
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if recovered := recover(); recovered != nil {
					handler.Handle(r, recovered)
					http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}
