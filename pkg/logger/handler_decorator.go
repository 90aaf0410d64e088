package logger

import (
	"context"
	"log/slog"
)

// ContextExtractor pulls one attribute out of a record's context, such as the
// run_id set by WithRunID.
type ContextExtractor func(ctx context.Context) (slog.Attr, bool)

// contextHandler appends the attributes found by its extractors to every
// record. Extraction happens per record, so a run_id attached to the context
// after the logger was built still shows up.
type contextHandler struct {
	slog.Handler
	extractors []ContextExtractor
}

// withContext wraps h, or returns it unchanged when there is nothing to extract.
func withContext(h slog.Handler, extractors []ContextExtractor) slog.Handler {
	if len(extractors) == 0 {
		return h
	}
	return &contextHandler{Handler: h, extractors: extractors}
}

func (h *contextHandler) Handle(ctx context.Context, rec slog.Record) error {
	if ctx != nil {
		for _, extract := range h.extractors {
			if attr, ok := extract(ctx); ok {
				rec.AddAttrs(attr)
			}
		}
	}
	return h.Handler.Handle(ctx, rec)
}

func (h *contextHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &contextHandler{Handler: h.Handler.WithAttrs(attrs), extractors: h.extractors}
}

func (h *contextHandler) WithGroup(name string) slog.Handler {
	return &contextHandler{Handler: h.Handler.WithGroup(name), extractors: h.extractors}
}
