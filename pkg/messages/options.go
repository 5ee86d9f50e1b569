package messages

import (
	"io"
	"log/slog"

	"golang.org/x/text/language"
)

// Option configures a Catalog.
type Option func(*options)

type options struct {
	fallback language.Tag
	logger   *slog.Logger
}

func defaultOptions() *options {
	return &options{
		fallback: language.English,
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// WithFallback sets the language used when a locale cannot be matched or a
// template is missing. The fallback table must define every Key.
// Defaults to English.
func WithFallback(tag language.Tag) Option {
	return func(o *options) {
		if tag != language.Und {
			o.fallback = tag
		}
	}
}

// WithLogger sets the logger used to report missing templates.
// A discard logger is used by default.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}
