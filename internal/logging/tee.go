package logging

import (
	"context"
	"errors"
	"log/slog"
	"slices"
)

// teeHandler copies each record to every handler that accepts its level.
type teeHandler []slog.Handler

func tee(handlers ...slog.Handler) teeHandler {
	return slices.DeleteFunc(slices.Clone(handlers), func(h slog.Handler) bool { return h == nil })
}

func (t teeHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return slices.ContainsFunc(t, func(h slog.Handler) bool { return h.Enabled(ctx, level) })
}

// Handle delivers r to all handlers and joins their errors.
func (t teeHandler) Handle(ctx context.Context, r slog.Record) error {
	var errs []error
	for _, h := range t {
		if h.Enabled(ctx, r.Level) {
			errs = append(errs, h.Handle(ctx, r.Clone()))
		}
	}
	return errors.Join(errs...)
}

func (t teeHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	out := make(teeHandler, len(t))
	for i, h := range t {
		out[i] = h.WithAttrs(attrs)
	}
	return out
}

func (t teeHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return t
	}
	out := make(teeHandler, len(t))
	for i, h := range t {
		out[i] = h.WithGroup(name)
	}
	return out
}
