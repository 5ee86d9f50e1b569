package messages

import "slices"

// Key identifies a message template.
type Key string

const (
	KeyNullValue          Key = "null_value"
	KeyEmptyString        Key = "empty_string"
	KeyEmptyIdentifier    Key = "empty_identifier"
	KeyInvalidIdentifier  Key = "invalid_identifier"
	KeyUndefinedEnum      Key = "undefined_enum"
	KeyEmptySequence      Key = "empty_sequence"
	KeyInvalidFailureKind Key = "invalid_failure_kind"
	KeyInvalidEnum        Key = "invalid_enum"

	// Placeholders substituted when a caller supplies nothing.
	KeyNoName    Key = "no_name"
	KeyNoMessage Key = "no_message"
	KeyNoValue   Key = "no_value"
)

var requiredKeys = []Key{
	KeyNullValue,
	KeyEmptyString,
	KeyEmptyIdentifier,
	KeyInvalidIdentifier,
	KeyUndefinedEnum,
	KeyEmptySequence,
	KeyInvalidFailureKind,
	KeyInvalidEnum,
	KeyNoName,
	KeyNoMessage,
	KeyNoValue,
}

// Keys returns every key a complete message table must define.
func Keys() []Key {
	return slices.Clone(requiredKeys)
}
