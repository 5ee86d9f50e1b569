// Package guard provides precondition checks ("guard clauses") for the top of
// a function: nil values, blank strings, empty identifiers, undefined enum
// members and empty sequences.
//
// Every guard returns the checked value unchanged together with an error, so
// it can be used inline:
//
//	func NewAccount(owner *User, title string, id uuid.UUID) (*Account, error) {
//	    owner, err := guard.RejectIfNull(owner, "owner")
//	    if err != nil {
//	        return nil, err
//	    }
//	    if title, err = guard.RejectIfBlank(title, "title"); err != nil {
//	        return nil, err
//	    }
//	    ...
//	}
//
// Call sites that treat a violation as a programmer error can wrap a guard
// with Must, which panics instead:
//
//	name := guard.Must(guard.RejectIfBlank(name, "name"))
//
// # Error Handling
//
// Every failure is a *Error whose Kind is one of four sentinels, matched with
// errors.Is:
//
//   - ErrMissingValue    – a required value is absent (nil, blank string, nil sequence)
//   - ErrInvalidArgument – a value is present but invalid (nil UUID, unparsable identifier)
//   - ErrInvalidState    – a value fails a membership check (undefined enum member, empty sequence)
//   - ErrConfiguration   – the guard itself was misused; Cause holds the underlying error
//
// RejectIfTrue is the exception: the caller supplies a FailureKind that
// builds the returned error, and only construction problems are reported as
// ErrConfiguration.
//
// Messages come from the messages package and name the offending argument,
// or "(no name specified)" when the name is blank. Error renders them in the
// process locale (CONTRACT_LOCALE, LC_ALL, LC_MESSAGES, LANG); Localize and
// Message render them in any other supported language.
//
// # Concurrency
//
// Guards keep no state and only read the immutable message catalog, so they
// are safe to call from any goroutine.
package guard
