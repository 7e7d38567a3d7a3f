package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/saylorsolutions/segroute/slogx"
)

// NewLogger creates a logger writing text to w at the configured level.
// When a log file is configured, JSON records are also appended to it, and the returned closer closes the file.
func NewLogger(cfg Config, w io.Writer) (*slog.Logger, io.Closer, error) {
	opts := &slog.HandlerOptions{Level: cfg.LogLevel}
	var handler slog.Handler = slog.NewTextHandler(w, opts)
	var closer io.Closer = io.NopCloser(nil)
	if len(cfg.LogFile) > 0 {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open log file: %w", err)
		}
		handler = slogx.MergeHandlers(handler, slog.NewJSONHandler(f, opts))
		closer = f
	}
	return slog.New(slogx.NewDedupeHandler(handler)), closer, nil
}
