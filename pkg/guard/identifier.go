package guard

import (
	"strings"

	"github.com/google/uuid"

	"github.com/dmitrymomot/contract/pkg/messages"
)

// RejectIfEmptyIdentifier fails with ErrInvalidArgument when id is the nil
// UUID. Otherwise it returns id unchanged.
func RejectIfEmptyIdentifier(id uuid.UUID, name string) (uuid.UUID, error) {
	if id == uuid.Nil {
		return uuid.Nil, newError(ErrInvalidArgument, messages.KeyEmptyIdentifier, name)
	}
	return id, nil
}

// RejectIfEmptyIdentifierString parses s as a UUID and rejects it like
// RejectIfEmptyIdentifier. Blank input counts as the empty identifier;
// unparsable input fails with ErrInvalidArgument and the parse error as Cause.
func RejectIfEmptyIdentifierString(s, name string) (uuid.UUID, error) {
	if strings.TrimSpace(s) == "" {
		return uuid.Nil, newError(ErrInvalidArgument, messages.KeyEmptyIdentifier, name)
	}

	id, err := uuid.Parse(s)
	if err != nil {
		gerr := newError(ErrInvalidArgument, messages.KeyInvalidIdentifier, name, "cause", err.Error())
		gerr.Cause = err
		return uuid.Nil, gerr
	}

	return RejectIfEmptyIdentifier(id, name)
}
