package messages

import (
	"context"
	"embed"
	"fmt"
	"sync"
)

//go:embed locales
var localesFS embed.FS

var defaultCatalog = sync.OnceValue(func() *Catalog {
	c, err := Load(context.Background(), localesFS, "locales")
	if err != nil {
		panic(fmt.Sprintf("messages: embedded message tables are invalid: %v", err))
	}
	return c
})

// Default returns the catalog built from the message tables embedded in this
// package. It is loaded on first use and shared afterwards.
func Default() *Catalog {
	return defaultCatalog()
}
