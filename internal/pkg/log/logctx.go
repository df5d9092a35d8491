// Package log carries a request-scoped *slog.Logger through context.Context.
package log

import (
	"context"
	"log/slog"
	"os"
)

type ctxKey struct{}

// Into stores l in ctx
func Into(ctx context.Context, l *slog.Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, l)
}

// From returns the logger stored in ctx, or slog.Default()
func From(ctx context.Context) *slog.Logger {
	if v := ctx.Value(ctxKey{}); v != nil {
		if l, ok := v.(*slog.Logger); ok && l != nil {
			return l
		}
	}
	return slog.Default()
}

// Setup installs the process-wide default logger: JSON in production, text otherwise.
func Setup(production bool) *slog.Logger {
	var h slog.Handler
	if production {
		h = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo})
	} else {
		h = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug})
	}
	l := slog.New(h)
	slog.SetDefault(l)
	return l
}
