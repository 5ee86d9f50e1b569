package config

import "strings"

// Locale holds the environment variables that select the process locale.
type Locale struct {
	Override string `env:"CONTRACT_LOCALE"`
	All      string `env:"LC_ALL"`
	Messages string `env:"LC_MESSAGES"`
	Lang     string `env:"LANG"`
}

// Resolve returns the effective locale string: the first non-empty value of
// Override, All, Messages and Lang. An empty result means the default locale.
func (l Locale) Resolve() string {
	for _, v := range []string{l.Override, l.All, l.Messages, l.Lang} {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	return ""
}
