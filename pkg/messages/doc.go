// Package messages holds the message templates used to describe guard
// violations, one table per language.
//
// Tables are plain key/template maps loaded from YAML or JSON files whose top
// level key is the language code, the same layout the rest of the kit uses for
// translation files:
//
//	en:
//	  null_value: "Argument '%{name}' may not be nil."
//	de:
//	  null_value: "Argument '%{name}' darf nicht nil sein."
//
// Templates use named placeholders in the form %{name}. Values are supplied to
// Render as key/value pairs.
//
// # Architecture
//
// A Catalog is built once and never mutated afterwards, so it can be shared by
// any number of goroutines without locking. Construction validates that the
// fallback language defines every Key; other languages may be partial and fall
// back per key.
//
// Locale negotiation is delegated to golang.org/x/text/language. Both BCP 47
// tags ("de-AT") and POSIX locale strings ("de_AT.UTF-8") are accepted by
// Catalog.Match.
//
// # Usage
//
//	cat := messages.Default()
//	tag := cat.Match(os.Getenv("LANG"))
//	msg := cat.Render(tag, messages.KeyNullValue, "name", "userID")
//
// Custom tables can be loaded from any fs.FS:
//
//	cat, err := messages.Load(ctx, os.DirFS("./locales"), ".",
//		messages.WithFallback(language.English),
//		messages.WithLogger(log),
//	)
//
// # Error Handling
//
// Loading errors are joined with the sentinel values from errors.go, so they can
// be matched with errors.Is:
//
//	if errors.Is(err, messages.ErrIncompleteTable) {
//	    // fallback language is missing templates
//	}
package messages
