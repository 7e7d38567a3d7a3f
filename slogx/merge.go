package slogx

import (
	"context"
	"errors"
	"log/slog"
)

var _ slog.Handler = (fanout)(nil)

type fanout []slog.Handler

func (f fanout) Enabled(ctx context.Context, level slog.Level) bool {
	for _, h := range f {
		if h.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

// Handle passes the record to every handler enabled for its level.
func (f fanout) Handle(ctx context.Context, record slog.Record) error {
	var errs []error
	for _, h := range f {
		if !h.Enabled(ctx, record.Level) {
			continue
		}
		errs = append(errs, h.Handle(ctx, record.Clone()))
	}
	return errors.Join(errs...)
}

func (f fanout) WithAttrs(attrs []slog.Attr) slog.Handler {
	cp := make(fanout, len(f))
	for i, h := range f {
		cp[i] = h.WithAttrs(attrs)
	}
	return cp
}

func (f fanout) WithGroup(name string) slog.Handler {
	cp := make(fanout, len(f))
	for i, h := range f {
		cp[i] = h.WithGroup(name)
	}
	return cp
}

// MergeHandlers sends each record to every given handler, so one logger can write human readable text to a terminal
// and structured output to a file. Each handler still applies its own level.
func MergeHandlers(a, b slog.Handler, others ...slog.Handler) slog.Handler {
	merged := make(fanout, 0, 2+len(others))
	merged = append(merged, a, b)
	return append(merged, others...)
}
