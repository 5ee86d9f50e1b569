package messages

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"slices"
	"strings"

	"golang.org/x/text/language"
)

// Catalog is an immutable set of message tables, one per language.
type Catalog struct {
	tables   map[language.Tag]map[Key]string
	tags     []language.Tag // fallback first, matcher order
	matcher  language.Matcher
	fallback language.Tag
	logger   *slog.Logger
}

// New builds a Catalog from in-memory tables keyed by language code and then by
// message key. The fallback language must define every Key.
func New(ctx context.Context, tables map[string]map[string]string, opts ...Option) (*Catalog, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	if len(tables) == 0 {
		return nil, ErrNoTables
	}

	c := &Catalog{
		tables:   make(map[language.Tag]map[Key]string, len(tables)),
		fallback: o.fallback,
		logger:   o.logger,
	}

	for code, entries := range tables {
		tag, err := language.Parse(normalizeLocale(code))
		if err != nil {
			return nil, errors.Join(ErrInvalidLanguage, fmt.Errorf("language code '%s': %w", code, err))
		}
		table := c.tables[tag]
		if table == nil {
			table = make(map[Key]string, len(entries))
			c.tables[tag] = table
		}
		for k, v := range entries {
			table[Key(k)] = v
		}
	}

	fallbackTable, ok := c.tables[c.fallback]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrMissingFallback, c.fallback)
	}
	var missing []string
	for _, key := range requiredKeys {
		if _, ok := fallbackTable[key]; !ok {
			missing = append(missing, string(key))
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s is missing %s", ErrIncompleteTable, c.fallback, strings.Join(missing, ", "))
	}

	c.tags = append(c.tags, c.fallback)
	others := make([]language.Tag, 0, len(c.tables)-1)
	for tag := range c.tables {
		if tag != c.fallback {
			others = append(others, tag)
		}
	}
	slices.SortFunc(others, func(a, b language.Tag) int {
		return strings.Compare(a.String(), b.String())
	})
	c.tags = append(c.tags, others...)
	c.matcher = language.NewMatcher(c.tags)

	c.logger.InfoContext(ctx, "Message tables loaded", "languages", c.languageCodes())
	return c, nil
}

// Fallback returns the language used when nothing better matches.
func (c *Catalog) Fallback() language.Tag {
	return c.fallback
}

// Languages returns the languages with a message table, fallback first.
func (c *Catalog) Languages() []language.Tag {
	return slices.Clone(c.tags)
}

func (c *Catalog) languageCodes() []string {
	codes := make([]string, len(c.tags))
	for i, tag := range c.tags {
		codes[i] = tag.String()
	}
	return codes
}

// Match returns the best supported language for a BCP 47 tag or POSIX locale
// string such as "de_DE.UTF-8". Empty, "C" and "POSIX" locales and anything
// that does not match resolve to the fallback language.
func (c *Catalog) Match(locale string) language.Tag {
	locale = normalizeLocale(locale)
	if locale == "" {
		return c.fallback
	}
	tag, err := language.Parse(locale)
	if err != nil {
		return c.fallback
	}
	return c.resolve(tag)
}

func (c *Catalog) resolve(tag language.Tag) language.Tag {
	if _, ok := c.tables[tag]; ok {
		return tag
	}
	_, idx, confidence := c.matcher.Match(tag)
	if confidence == language.No {
		return c.fallback
	}
	return c.tags[idx]
}

// Render formats the template for key in the given language. Args are
// placeholder name/value pairs; an odd trailing value is ignored.
//
// A template missing from the requested language is taken from the fallback
// table. A key missing everywhere renders as the key itself.
func (c *Catalog) Render(tag language.Tag, key Key, args ...string) string {
	lang := c.resolve(tag)
	tmpl, ok := c.tables[lang][key]
	if !ok {
		c.logger.Warn("Message template not found", "lang", lang.String(), "key", string(key))
		tmpl, ok = c.tables[c.fallback][key]
		if !ok {
			tmpl = string(key)
		}
	}
	return substitute(tmpl, args)
}

// RenderContext is Render with the language taken from ctx (see SetLocale).
func (c *Catalog) RenderContext(ctx context.Context, key Key, args ...string) string {
	tag, ok := Locale(ctx)
	if !ok {
		tag = c.fallback
	}
	return c.Render(tag, key, args...)
}

var paramRegex = regexp.MustCompile(`%\{([^}]+)\}`)

// substitute replaces %{name} placeholders. Unknown placeholders are kept.
func substitute(tmpl string, args []string) string {
	if len(args) < 2 || !strings.Contains(tmpl, "%{") {
		return tmpl
	}
	params := make(map[string]string, len(args)/2)
	for i := 0; i < len(args)-1; i += 2 {
		params[args[i]] = args[i+1]
	}
	return paramRegex.ReplaceAllStringFunc(tmpl, func(match string) string {
		if val, ok := params[match[2:len(match)-1]]; ok {
			return val
		}
		return match
	})
}

// normalizeLocale turns POSIX locale strings ("pt_BR.UTF-8@euro") into BCP 47
// form ("pt-BR"). The C and POSIX locales normalize to "".
func normalizeLocale(locale string) string {
	locale = strings.TrimSpace(locale)
	if i := strings.IndexAny(locale, ".@"); i >= 0 {
		locale = locale[:i]
	}
	if locale == "C" || locale == "POSIX" {
		return ""
	}
	return strings.ReplaceAll(locale, "_", "-")
}
