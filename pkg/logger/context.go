package logger

import (
	"context"
	"log/slog"
)

type runIDKey struct{}

// WithRunID stores the run identifier in the context.
func WithRunID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, runIDKey{}, id)
}

// RunIDFromContext returns the run identifier, if any.
func RunIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(runIDKey{}).(string)
	return id, ok && id != ""
}

// RunIDExtractor logs the run identifier under the key "run_id".
func RunIDExtractor() ContextExtractor {
	return func(ctx context.Context) (slog.Attr, bool) {
		id, ok := RunIDFromContext(ctx)
		if !ok {
			return slog.Attr{}, false
		}
		return slog.String("run_id", id), true
	}
}
