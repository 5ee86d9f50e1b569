package messages

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"maps"
	"path"
)

// Load reads every supported message file (YAML or JSON) in dir of fsys and
// builds a Catalog from the merged tables. Later files override earlier ones
// key by key; files are visited in lexical order.
func Load(ctx context.Context, fsys fs.FS, dir string, opts ...Option) (*Catalog, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrLoadingCancelled, err)
	}

	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, errors.Join(ErrFailedToReadDir, err)
	}

	tables := make(map[string]map[string]string)
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		parser := NewParserForFile(entry.Name())
		if parser == nil {
			continue
		}
		if err := ctx.Err(); err != nil {
			return nil, errors.Join(ErrLoadingCancelled, err)
		}
		if err := loadFile(ctx, fsys, path.Join(dir, entry.Name()), parser, tables); err != nil {
			return nil, err
		}
	}

	if len(tables) == 0 {
		return nil, fmt.Errorf("%w in directory '%s'", ErrNoTables, dir)
	}

	return New(ctx, tables, opts...)
}

func loadFile(ctx context.Context, fsys fs.FS, name string, parser Parser, into map[string]map[string]string) error {
	content, err := fs.ReadFile(fsys, name)
	if err != nil {
		return errors.Join(ErrFailedToReadFile, err)
	}
	if len(content) == 0 {
		return fmt.Errorf("%w: message file '%s' is empty", ErrFailedToParseFile, name)
	}

	parsed, err := parser.Parse(ctx, content)
	if err != nil {
		return errors.Join(ErrFailedToParseFile, fmt.Errorf("file '%s': %w", name, err))
	}

	for lang, table := range parsed {
		if into[lang] == nil {
			into[lang] = make(map[string]string, len(table))
		}
		maps.Copy(into[lang], table)
	}
	return nil
}
