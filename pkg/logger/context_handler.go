package logger

import (
	"context"
	"log/slog"

	"github.com/dmitrymomot/contract/pkg/messages"
)

// ContextExtractor extracts a slog attribute from context.
type ContextExtractor func(ctx context.Context) (slog.Attr, bool)

// LocaleExtractor reads the locale set by messages.SetLocale.
func LocaleExtractor(ctx context.Context) (slog.Attr, bool) {
	tag, ok := messages.Locale(ctx)
	if !ok {
		return slog.Attr{}, false
	}
	return slog.String("locale", tag.String()), true
}

// contextHandler runs extractors per record, so values are read from the
// context the record was logged with.
type contextHandler struct {
	next       slog.Handler
	extractors []ContextExtractor
}

func (h *contextHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.next.Enabled(ctx, level)
}

func (h *contextHandler) Handle(ctx context.Context, rec slog.Record) error {
	for _, ex := range h.extractors {
		if attr, ok := ex(ctx); ok {
			rec.AddAttrs(attr)
		}
	}
	return h.next.Handle(ctx, rec)
}

func (h *contextHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &contextHandler{next: h.next.WithAttrs(attrs), extractors: h.extractors}
}

func (h *contextHandler) WithGroup(name string) slog.Handler {
	return &contextHandler{next: h.next.WithGroup(name), extractors: h.extractors}
}
