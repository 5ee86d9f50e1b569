package guard

import (
	"errors"
	"fmt"
	"reflect"
	"runtime"
	"strings"

	"github.com/dmitrymomot/contract/pkg/messages"
)

// FailureKind builds the error returned by RejectIfTrue from a message.
type FailureKind func(message string) error

// KindOf returns a FailureKind whose errors wrap sentinel and carry the
// message: errors.Is(err, sentinel) holds for every error it builds.
func KindOf(sentinel error) FailureKind {
	if sentinel == nil {
		return func(message string) error { return errors.New(message) }
	}
	return func(message string) error {
		return fmt.Errorf("%w: %s", sentinel, message)
	}
}

var (
	errNilFailureKind = errors.New("failure kind is nil")
	errNilFailure     = errors.New("failure kind returned a nil error")
	errKindPanicked   = errors.New("failure kind panicked")
)

// RejectIfTrue returns kind(message) when condition is true and nil
// otherwise. A blank message is replaced by "(no message specified)".
//
// If kind is nil, returns nil or panics, the result is an ErrConfiguration
// *Error describing the failure kind, with the construction error as Cause.
func RejectIfTrue(condition bool, message string, kind FailureKind) error {
	if !condition {
		return nil
	}

	if strings.TrimSpace(message) == "" {
		message = messages.Default().Render(processLocale(), messages.KeyNoMessage)
	}

	if kind == nil {
		return failureKindError(kind, errNilFailureKind)
	}

	failure, cause := build(kind, message)
	if cause != nil {
		return failureKindError(kind, cause)
	}
	return failure
}

func build(kind FailureKind, message string) (failure, cause error) {
	defer func() {
		if r := recover(); r != nil {
			if err, ok := r.(error); ok {
				cause = fmt.Errorf("%w: %w", errKindPanicked, err)
			} else {
				cause = fmt.Errorf("%w: %v", errKindPanicked, r)
			}
			failure = nil
		}
	}()

	failure = kind(message)
	if failure == nil {
		return nil, errNilFailure
	}
	return failure, nil
}

func failureKindError(kind FailureKind, cause error) *Error {
	err := newError(ErrConfiguration, messages.KeyInvalidFailureKind, "kind",
		"type", failureKindName(kind),
		"cause", cause.Error(),
	)
	err.Cause = cause
	return err
}

func failureKindName(kind FailureKind) string {
	if kind == nil {
		return "<nil>"
	}
	if fn := runtime.FuncForPC(reflect.ValueOf(kind).Pointer()); fn != nil {
		return fn.Name()
	}
	return fmt.Sprintf("%T", kind)
}

// RejectIfNull fails with ErrMissingValue when value is nil: a nil interface,
// pointer, map, slice, channel, func or unsafe pointer. Otherwise it returns
// value unchanged.
func RejectIfNull[T any](value T, name string) (T, error) {
	if isNil(value) {
		var zero T
		return zero, newError(ErrMissingValue, messages.KeyNullValue, name)
	}
	return value, nil
}

func isNil(value any) bool {
	if value == nil {
		return true
	}
	v := reflect.ValueOf(value)
	switch v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Chan,
		reflect.Func, reflect.Interface, reflect.UnsafePointer:
		return v.IsNil()
	}
	return false
}

// RejectIfBlank fails with ErrMissingValue when text is empty or only
// whitespace. Otherwise it returns text unchanged.
func RejectIfBlank[S ~string](text S, name string) (S, error) {
	if strings.TrimSpace(string(text)) == "" {
		return "", newError(ErrMissingValue, messages.KeyEmptyString, name)
	}
	return text, nil
}

// RejectIfBlankRef is RejectIfBlank for optional strings: a nil pointer is
// rejected like a blank string.
func RejectIfBlankRef(text *string, name string) (*string, error) {
	if text == nil || strings.TrimSpace(*text) == "" {
		return nil, newError(ErrMissingValue, messages.KeyEmptyString, name)
	}
	return text, nil
}

// Must returns value or panics with err if it is not nil.
func Must[T any](value T, err error) T {
	if err != nil {
		panic(err)
	}
	return value
}
