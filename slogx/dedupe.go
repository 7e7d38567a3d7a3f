package slogx

import (
	"context"
	"log/slog"
	"slices"
)

var _ slog.Handler = (*DedupeHandler)(nil)

// DedupeHandler keeps only the latest value for each attribute key.
// A command logger is annotated again each time a segment is dispatched, and this keeps the output to one "segment" key.
// Groups are flattened into dotted key prefixes.
type DedupeHandler struct {
	group string
	attrs []slog.Attr
	next  slog.Handler
}

func NewDedupeHandler(next slog.Handler) slog.Handler {
	if next == nil {
		panic("nil handler passed to NewDedupeHandler")
	}
	return &DedupeHandler{next: next}
}

func (h *DedupeHandler) key(name string) string {
	if len(h.group) == 0 {
		return name
	}
	return h.group + "." + name
}

func (h *DedupeHandler) with(attrs []slog.Attr) *DedupeHandler {
	cp := &DedupeHandler{
		group: h.group,
		attrs: slices.Clone(h.attrs),
		next:  h.next,
	}
	for _, attr := range attrs {
		attr.Key = h.key(attr.Key)
		i := slices.IndexFunc(cp.attrs, func(existing slog.Attr) bool {
			return existing.Key == attr.Key
		})
		if i >= 0 {
			cp.attrs[i] = attr
			continue
		}
		cp.attrs = append(cp.attrs, attr)
	}
	return cp
}

func (h *DedupeHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.next.Enabled(ctx, level)
}

func (h *DedupeHandler) Handle(ctx context.Context, record slog.Record) error {
	if record.NumAttrs() > 0 {
		attrs := make([]slog.Attr, 0, record.NumAttrs())
		record.Attrs(func(attr slog.Attr) bool {
			attrs = append(attrs, attr)
			return true
		})
		h = h.with(attrs)
		record = slog.NewRecord(record.Time, record.Level, record.Message, record.PC)
	}
	return h.next.WithAttrs(h.attrs).Handle(ctx, record)
}

func (h *DedupeHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return h
	}
	return h.with(attrs)
}

func (h *DedupeHandler) WithGroup(name string) slog.Handler {
	cp := h.with(nil)
	cp.group = h.key(name)
	return cp
}
