package guard_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/dmitrymomot/contract/pkg/guard"
	"github.com/dmitrymomot/contract/pkg/messages"
)

var errApplication = errors.New("application failure")

type applicationError struct {
	msg string
}

func (e *applicationError) Error() string { return e.msg }

func newApplicationError(msg string) error { return &applicationError{msg: msg} }

func TestRejectIfTrue(t *testing.T) {
	t.Parallel()

	t.Run("false condition is a no-op", func(t *testing.T) {
		t.Parallel()
		assert.NoError(t, guard.RejectIfTrue(false, "some-message", newApplicationError))
		assert.NoError(t, guard.RejectIfTrue(false, "some-message", nil))
	})

	t.Run("true condition returns configured kind", func(t *testing.T) {
		t.Parallel()
		err := guard.RejectIfTrue(true, "some-message", newApplicationError)
		require.Error(t, err)

		var appErr *applicationError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "some-message", appErr.msg)
	})

	t.Run("blank message uses placeholder", func(t *testing.T) {
		t.Parallel()
		want := messages.Default().Render(guard.ProcessLocale(), messages.KeyNoMessage)

		for _, msg := range []string{"", "   "} {
			err := guard.RejectIfTrue(true, msg, newApplicationError)
			var appErr *applicationError
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, want, appErr.msg)
		}
	})

	t.Run("KindOf wraps sentinel", func(t *testing.T) {
		t.Parallel()
		err := guard.RejectIfTrue(true, "quota exceeded", guard.KindOf(errApplication))
		assert.ErrorIs(t, err, errApplication)
		assert.Equal(t, "application failure: quota exceeded", err.Error())

		err = guard.RejectIfTrue(true, "plain", guard.KindOf(nil))
		assert.EqualError(t, err, "plain")
	})

	t.Run("nil kind is a configuration failure", func(t *testing.T) {
		t.Parallel()
		err := guard.RejectIfTrue(true, "msg", nil)
		require.ErrorIs(t, err, guard.ErrConfiguration)

		gerr, ok := guard.AsError(err)
		require.True(t, ok)
		assert.Equal(t, messages.KeyInvalidFailureKind, gerr.Key)
		require.Error(t, gerr.Cause)
		assert.Contains(t, gerr.Localize(language.English), "<nil>")
	})

	t.Run("kind returning nil is a configuration failure", func(t *testing.T) {
		t.Parallel()
		err := guard.RejectIfTrue(true, "msg", func(string) error { return nil })
		require.ErrorIs(t, err, guard.ErrConfiguration)
		assert.Contains(t, err.(*guard.Error).Localize(language.English), "returned a nil error")
	})

	t.Run("panicking kind is a configuration failure wrapping the panic", func(t *testing.T) {
		t.Parallel()
		boom := errors.New("constructor exploded")
		err := guard.RejectIfTrue(true, "msg", func(string) error { panic(boom) })
		require.ErrorIs(t, err, guard.ErrConfiguration)
		assert.ErrorIs(t, err, boom)

		err = guard.RejectIfTrue(true, "msg", func(string) error { panic("not an error") })
		require.ErrorIs(t, err, guard.ErrConfiguration)
		assert.Contains(t, err.(*guard.Error).Localize(language.English), "not an error")
	})
}

func TestRejectIfNull(t *testing.T) {
	t.Parallel()

	t.Run("present values pass through", func(t *testing.T) {
		t.Parallel()
		o := &struct{ n int }{n: 1}
		for _, name := range []string{"o", "", "  "} {
			got, err := guard.RejectIfNull(o, name)
			require.NoError(t, err)
			assert.Same(t, o, got)
		}

		m, err := guard.RejectIfNull(map[string]int{"a": 1}, "m")
		require.NoError(t, err)
		assert.Equal(t, map[string]int{"a": 1}, m)

		n, err := guard.RejectIfNull(0, "zero is not nil")
		require.NoError(t, err)
		assert.Equal(t, 0, n)

		var iface any = "value"
		v, err := guard.RejectIfNull(iface, "iface")
		require.NoError(t, err)
		assert.Equal(t, "value", v)
	})

	t.Run("nil values are missing", func(t *testing.T) {
		t.Parallel()
		var (
			ptr   *int
			m     map[string]int
			s     []int
			ch    chan int
			fn    func()
			iface any
			err   error
		)
		checks := []error{}
		_, e := guard.RejectIfNull(ptr, "ptr")
		checks = append(checks, e)
		_, e = guard.RejectIfNull(m, "m")
		checks = append(checks, e)
		_, e = guard.RejectIfNull(s, "s")
		checks = append(checks, e)
		_, e = guard.RejectIfNull(ch, "ch")
		checks = append(checks, e)
		_, e = guard.RejectIfNull(fn, "fn")
		checks = append(checks, e)
		_, e = guard.RejectIfNull(iface, "iface")
		checks = append(checks, e)
		_, e = guard.RejectIfNull(err, "err")
		checks = append(checks, e)

		for i, e := range checks {
			assert.ErrorIs(t, e, guard.ErrMissingValue, "check %d", i)
			assert.NotErrorIs(t, e, guard.ErrInvalidArgument, "check %d", i)
		}
	})

	t.Run("message names the argument", func(t *testing.T) {
		t.Parallel()
		var o *int
		_, err := guard.RejectIfNull(o, "o")
		gerr, ok := guard.AsError(err)
		require.True(t, ok)
		assert.Equal(t, "Argument 'o' may not be nil.", gerr.Localize(language.English))
		assert.Equal(t, "Argument 'o' darf nicht nil sein.", gerr.Localize(language.German))
	})

	t.Run("blank name uses placeholder", func(t *testing.T) {
		t.Parallel()
		var o *int
		for _, name := range []string{"", "   "} {
			_, err := guard.RejectIfNull(o, name)
			gerr, ok := guard.AsError(err)
			require.True(t, ok)
			assert.Equal(t, "Argument '(no name specified)' may not be nil.", gerr.Localize(language.English))
		}
	})
}

func TestRejectIfBlank(t *testing.T) {
	t.Parallel()

	t.Run("non-blank text passes through", func(t *testing.T) {
		t.Parallel()
		for _, name := range []string{"s", ""} {
			got, err := guard.RejectIfBlank("value", name)
			require.NoError(t, err)
			assert.Equal(t, "value", got)
		}

		got, err := guard.RejectIfBlank("  padded  ", "s")
		require.NoError(t, err)
		assert.Equal(t, "  padded  ", got)
	})

	t.Run("named string types", func(t *testing.T) {
		t.Parallel()
		type Email string
		got, err := guard.RejectIfBlank(Email("a@b.c"), "email")
		require.NoError(t, err)
		assert.Equal(t, Email("a@b.c"), got)

		_, err = guard.RejectIfBlank(Email(""), "email")
		assert.ErrorIs(t, err, guard.ErrMissingValue)
	})

	t.Run("blank text is missing", func(t *testing.T) {
		t.Parallel()
		for _, s := range []string{"", " ", "   ", "\t\n"} {
			for _, name := range []string{"s", ""} {
				_, err := guard.RejectIfBlank(s, name)
				assert.ErrorIs(t, err, guard.ErrMissingValue, "%q", s)
			}
		}
	})

	t.Run("reference variant", func(t *testing.T) {
		t.Parallel()
		v := "value"
		got, err := guard.RejectIfBlankRef(&v, "s")
		require.NoError(t, err)
		assert.Same(t, &v, got)

		_, err = guard.RejectIfBlankRef(nil, "s")
		assert.ErrorIs(t, err, guard.ErrMissingValue)

		blank := "  "
		_, err = guard.RejectIfBlankRef(&blank, "s")
		assert.ErrorIs(t, err, guard.ErrMissingValue)
	})

	t.Run("message", func(t *testing.T) {
		t.Parallel()
		_, err := guard.RejectIfBlank("", "title")
		gerr, ok := guard.AsError(err)
		require.True(t, ok)
		assert.Equal(t, messages.KeyEmptyString, gerr.Key)
		assert.Equal(t, "Argument 'title' may not be an empty or blank string.", gerr.Localize(language.English))
	})
}

func TestMust(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "value", guard.Must(guard.RejectIfBlank("value", "s")))
	assert.Panics(t, func() { guard.Must(guard.RejectIfBlank("", "s")) })

	func() {
		defer func() {
			r := recover()
			err, ok := r.(error)
			require.True(t, ok)
			assert.ErrorIs(t, err, guard.ErrMissingValue)
		}()
		guard.Must(guard.RejectIfNull[*int](nil, "p"))
	}()
}

func TestIdempotence(t *testing.T) {
	t.Parallel()

	first, err := guard.RejectIfBlank("value", "s")
	require.NoError(t, err)
	second, err := guard.RejectIfBlank(first, "s")
	require.NoError(t, err)
	assert.Equal(t, first, second)

	p := new(int)
	a, err := guard.RejectIfNull(p, "p")
	require.NoError(t, err)
	b, err := guard.RejectIfNull(a, "p")
	require.NoError(t, err)
	assert.Same(t, a, b)
}
