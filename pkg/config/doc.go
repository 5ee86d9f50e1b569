// Package config loads typed configuration from environment variables.
//
// It wraps github.com/joho/godotenv and github.com/caarlos0/env/v11:
//
//   - the default `.env` file in the working directory is loaded once, if present;
//   - LoadEnv loads additional files explicitly;
//   - Load parses the environment into any struct using `env` tags and caches
//     the result per type, so each configuration type is parsed at most once.
//
// The Locale type describes where the process locale comes from. It follows
// POSIX precedence (LC_ALL, then LC_MESSAGES, then LANG) behind an explicit
// CONTRACT_LOCALE override:
//
//	var loc config.Locale
//	if err := config.Load(&loc); err != nil {
//	    return err
//	}
//	tag := messages.Default().Match(loc.Resolve())
//
// Use ResetCache in tests after changing the environment.
package config
