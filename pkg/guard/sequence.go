package guard

import (
	"iter"

	"github.com/dmitrymomot/contract/pkg/messages"
)

// RejectIfEmptySequence fails with ErrMissingValue when seq is nil and with
// ErrInvalidState when it yields no elements. Otherwise it returns seq
// unchanged.
//
// The check starts an iteration and stops after the first element, so seq
// must be restartable (slices.Values, maps.Keys and most iter.Seq producers
// are). Use RejectIfEmptyStream for single-pass sequences.
func RejectIfEmptySequence[T any](seq iter.Seq[T], name string) (iter.Seq[T], error) {
	if seq == nil {
		return nil, newError(ErrMissingValue, messages.KeyNullValue, name)
	}
	for range seq {
		return seq, nil
	}
	return nil, newError(ErrInvalidState, messages.KeyEmptySequence, name)
}

// RejectIfEmptySlice fails with ErrMissingValue when s is nil and with
// ErrInvalidState when it is empty. Otherwise it returns s unchanged.
func RejectIfEmptySlice[S ~[]T, T any](s S, name string) (S, error) {
	if s == nil {
		return nil, newError(ErrMissingValue, messages.KeyNullValue, name)
	}
	if len(s) == 0 {
		return nil, newError(ErrInvalidState, messages.KeyEmptySequence, name)
	}
	return s, nil
}

// RejectIfEmptyStream is RejectIfEmptySequence for single-pass sequences. It
// pulls the first element and returns a sequence that yields it followed by
// the rest of seq. The returned sequence can be ranged over once.
//
// The caller must call stop when done with the sequence, as with iter.Pull;
// ranging over it to completion also releases it. stop is never nil.
func RejectIfEmptyStream[T any](seq iter.Seq[T], name string) (stream iter.Seq[T], stop func(), err error) {
	if seq == nil {
		return nil, func() {}, newError(ErrMissingValue, messages.KeyNullValue, name)
	}

	next, stop := iter.Pull(seq)
	head, ok := next()
	if !ok {
		stop()
		return nil, func() {}, newError(ErrInvalidState, messages.KeyEmptySequence, name)
	}

	used := false
	stream = func(yield func(T) bool) {
		if used {
			return
		}
		used = true
		defer stop()

		if !yield(head) {
			return
		}
		for {
			v, ok := next()
			if !ok || !yield(v) {
				return
			}
		}
	}
	return stream, stop, nil
}
