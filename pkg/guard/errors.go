package guard

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync"

	"golang.org/x/text/language"

	"github.com/dmitrymomot/contract/pkg/config"
	"github.com/dmitrymomot/contract/pkg/logger"
	"github.com/dmitrymomot/contract/pkg/messages"
)

// Failure kinds reported by the guards.
var (
	ErrMissingValue    = errors.New("missing value")
	ErrInvalidArgument = errors.New("invalid argument")
	ErrInvalidState    = errors.New("invalid state")
	ErrConfiguration   = errors.New("guard misconfigured")
)

// Error describes a failed guard.
type Error struct {
	// Kind is one of ErrMissingValue, ErrInvalidArgument, ErrInvalidState
	// or ErrConfiguration.
	Kind error
	// Key selects the message template.
	Key messages.Key
	// Name is the argument name supplied by the caller; may be empty.
	Name string
	// Args are additional placeholder name/value pairs for the template.
	// A template's %{value} renders as "(no value specified)" unless Args
	// supplies it.
	Args []string
	// Cause is the underlying error for ErrConfiguration failures.
	Cause error
}

func newError(kind error, key messages.Key, name string, args ...string) *Error {
	return &Error{Kind: kind, Key: key, Name: name, Args: args}
}

// Error renders the message in the process locale.
func (e *Error) Error() string {
	return e.Localize(processLocale())
}

// Localize renders the message in the given language, falling back to English
// for unsupported languages.
func (e *Error) Localize(tag language.Tag) string {
	cat := messages.Default()

	name := strings.TrimSpace(e.Name)
	if name == "" {
		name = cat.Render(tag, messages.KeyNoName)
	}

	// Later pairs win, so Args override the placeholder defaults.
	args := make([]string, 0, len(e.Args)+4)
	args = append(args, "value", cat.Render(tag, messages.KeyNoValue))
	args = append(args, e.Args[:len(e.Args)&^1]...)
	args = append(args, "name", name)

	return cat.Render(tag, e.Key, args...)
}

func (e *Error) Unwrap() []error {
	errs := make([]error, 0, 2)
	if e.Kind != nil {
		errs = append(errs, e.Kind)
	}
	if e.Cause != nil {
		errs = append(errs, e.Cause)
	}
	return errs
}

// LogValue implements slog.LogValuer.
func (e *Error) LogValue() slog.Value {
	attrs := make([]slog.Attr, 0, 5)
	if e.Kind != nil {
		attrs = append(attrs, slog.String("kind", e.Kind.Error()))
	}
	attrs = append(attrs,
		slog.String("key", string(e.Key)),
		logger.Argument(e.Name),
		slog.String("message", e.Error()),
	)
	if e.Cause != nil {
		attrs = append(attrs, logger.Error(e.Cause))
	}
	return slog.GroupValue(attrs...)
}

// AsError returns the *Error in err's chain, if any.
func AsError(err error) (*Error, bool) {
	var gerr *Error
	if errors.As(err, &gerr) {
		return gerr, true
	}
	return nil, false
}

// Message renders err in the locale stored in ctx by messages.SetLocale.
// Errors that are not guard errors are returned as err.Error().
func Message(ctx context.Context, err error) string {
	if err == nil {
		return ""
	}
	gerr, ok := AsError(err)
	if !ok {
		return err.Error()
	}
	tag, ok := messages.Locale(ctx)
	if !ok {
		tag = processLocale()
	}
	return gerr.Localize(tag)
}

// ProcessLocale returns the language guard messages are rendered in by
// default. It is resolved once from CONTRACT_LOCALE, LC_ALL, LC_MESSAGES and
// LANG and matched against the default catalog.
func ProcessLocale() language.Tag {
	return processLocale()
}

var processLocale = sync.OnceValue(resolveProcessLocale)

// resolveProcessLocale reads the locale variables from the process
// environment only; rendering an error must not load .env files.
func resolveProcessLocale() language.Tag {
	cat := messages.Default()
	loc, err := config.FromEnv[config.Locale]()
	if err != nil {
		return cat.Fallback()
	}
	return cat.Match(loc.Resolve())
}
