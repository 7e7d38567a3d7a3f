package httpx

import (
	"context"
	"log/slog"
	"net/http"
	"time"
)

type loggingWriter struct {
	http.ResponseWriter
	statusCode int
}

func (l *loggingWriter) WriteHeader(statusCode int) {
	l.ResponseWriter.WriteHeader(statusCode)
	l.statusCode = statusCode
}

// RequestLogger is a type that can log HTTP requests received by a server.
type RequestLogger interface {
	Log(ctx context.Context, statusCode int, method, uri string, duration time.Duration)
}

type RequestLoggerFunc func(ctx context.Context, statusCode int, method, uri string, dur time.Duration)

func (f RequestLoggerFunc) Log(ctx context.Context, statusCode int, method, uri string, dur time.Duration) {
	f(ctx, statusCode, method, uri, dur)
}

// LoggingMiddleware logs each request with its status code, method, request URI, and duration.
func LoggingMiddleware(logger RequestLogger) Middleware {
	if logger == nil {
		panic("nil logger")
	}
	return func(next http.Handler) http.Handler {
		if next == nil {
			panic("nil handler")
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			lw := &loggingWriter{w, http.StatusOK}
			start := time.Now()
			defer func() {
				logger.Log(r.Context(), lw.statusCode, r.Method, r.URL.RequestURI(), time.Since(start))
			}()
			next.ServeHTTP(lw, r)
		})
	}
}

// SlogLogger returns a [RequestLogger] that logs to l at the provided level.
// Responses with a server error status are logged at [slog.LevelError] regardless.
func SlogLogger(l *slog.Logger, level slog.Level) RequestLogger {
	return RequestLoggerFunc(func(ctx context.Context, statusCode int, method, uri string, dur time.Duration) {
		lvl := level
		if statusCode >= http.StatusInternalServerError {
			lvl = slog.LevelError
		}
		l.Log(ctx, lvl, "Handled request", "statusCode", statusCode, "method", method, "uri", uri, "duration", dur)
	})
}
