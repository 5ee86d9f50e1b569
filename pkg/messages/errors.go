package messages

import "errors"

var (
	// Parsing
	ErrParsingCancelled  = errors.New("message file parsing cancelled")
	ErrFailedToParseYAML = errors.New("failed to parse YAML content")
	ErrFailedToParseJSON = errors.New("failed to parse JSON content")
	ErrInvalidStructure  = errors.New("invalid message table structure")

	// Loading
	ErrLoadingCancelled  = errors.New("loading message tables cancelled")
	ErrFailedToReadDir   = errors.New("failed to read message directory")
	ErrFailedToReadFile  = errors.New("failed to read message file")
	ErrFailedToParseFile = errors.New("failed to parse message file")
	ErrNoTables          = errors.New("no message tables found")
	ErrInvalidLanguage   = errors.New("invalid language code")
	ErrMissingFallback   = errors.New("fallback language has no message table")
	ErrIncompleteTable   = errors.New("message table is incomplete")
)
