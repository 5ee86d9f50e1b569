package messages

import (
	"context"

	"golang.org/x/text/language"
)

type localeContextKey struct{}

// SetLocale returns a copy of ctx carrying the given locale.
func SetLocale(ctx context.Context, tag language.Tag) context.Context {
	return context.WithValue(ctx, localeContextKey{}, tag)
}

// Locale returns the locale stored in ctx, if any.
func Locale(ctx context.Context) (language.Tag, bool) {
	tag, ok := ctx.Value(localeContextKey{}).(language.Tag)
	return tag, ok
}
