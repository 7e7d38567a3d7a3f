package httpx

import (
	"context"
	"errors"
	"net/http"
	"time"
)

// DefaultShutdownTimeout bounds the graceful shutdown in [ListenAndServe].
var DefaultShutdownTimeout = 5 * time.Second

// ListenAndServe runs [http.Server.ListenAndServe] until ctx is cancelled, then shuts the server down, waiting up to
// [DefaultShutdownTimeout] for in-flight requests.
// An error from the server is returned unless it was closed.
func ListenAndServe(ctx context.Context, srv *http.Server) error {
	return serveUntil(ctx, srv.ListenAndServe, srv.Shutdown, DefaultShutdownTimeout)
}

func serveUntil(ctx context.Context, serve func() error, shutdown func(context.Context) error, timeout time.Duration) error {
	done := make(chan error, 1)
	go func() {
		done <- serve()
	}()
	select {
	case err := <-done:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	if err := shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-done; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
