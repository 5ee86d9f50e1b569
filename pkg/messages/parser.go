package messages

import (
	"context"
	"fmt"
	"path"
	"strings"
)

// Parser decodes the content of a message file into per-language tables.
type Parser interface {
	// Parse returns templates keyed by language code and then by message key.
	// Nested maps are flattened into dot-separated keys.
	Parse(ctx context.Context, content []byte) (map[string]map[string]string, error)

	// SupportsFileExtension reports whether the parser handles files with the
	// given extension. A leading dot is optional.
	SupportsFileExtension(ext string) bool
}

// NewParserForFile returns a parser based on the file extension, or nil when
// the extension is not supported.
func NewParserForFile(filename string) Parser {
	switch strings.ToLower(strings.TrimPrefix(path.Ext(filename), ".")) {
	case "json":
		return NewJSONParser()
	case "yaml", "yml":
		return NewYAMLParser()
	default:
		return nil
	}
}

// toTables converts a decoded document into flat per-language tables.
func toTables(data map[string]any) (map[string]map[string]string, error) {
	result := make(map[string]map[string]string, len(data))
	for lang, val := range data {
		entries, ok := val.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("%w: language '%s' must map to an object, got %T", ErrInvalidStructure, lang, val)
		}
		table := make(map[string]string, len(entries))
		flatten("", entries, table)
		result[lang] = table
	}
	return result, nil
}

func flatten(prefix string, entries map[string]any, out map[string]string) {
	for k, v := range entries {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}
		switch val := v.(type) {
		case map[string]any:
			flatten(key, val, out)
		case string:
			out[key] = val
		case nil:
			out[key] = ""
		default:
			out[key] = fmt.Sprint(val)
		}
	}
}
