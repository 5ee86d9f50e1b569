package config

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type cacheEntry struct {
	once  sync.Once
	value any
	err   error
}

var (
	cacheMu sync.Mutex
	cache   = make(map[reflect.Type]*cacheEntry)

	defaultEnvLoaded sync.Once
)

// Load parses environment variables into v according to its `env` field tags.
// Each configuration type is parsed once; later calls copy the cached value.
// A failed parse is cached as well until ResetCache is called.
//
// Example:
//
//	type Locale struct {
//		Lang string `env:"LANG"`
//	}
//
//	var loc Locale
//	if err := config.Load(&loc); err != nil {
//		// handle error
//	}
func Load[T any](v *T) error {
	defaultEnvLoaded.Do(func() {
		// The default .env file is optional.
		_ = godotenv.Load()
	})
	if v == nil {
		return ErrNilPointer
	}

	entry := entryFor(reflect.TypeFor[T]())
	entry.once.Do(func() {
		var parsed T
		if err := env.Parse(&parsed); err != nil {
			entry.err = errors.Join(ErrParsingConfig, err)
			return
		}
		entry.value = parsed
	})
	if entry.err != nil {
		return entry.err
	}

	*v = entry.value.(T)
	return nil
}

// FromEnv parses the process environment into a new T. Unlike Load it never
// reads a .env file and does not cache, so it leaves the environment as it
// found it. Libraries use it for settings they read on behalf of a host
// application.
func FromEnv[T any]() (T, error) {
	v, err := env.ParseAs[T]()
	if err != nil {
		var zero T
		return zero, errors.Join(ErrParsingConfig, err)
	}
	return v, nil
}

// MustLoad works like Load but panics if configuration loading fails.
func MustLoad[T any](v *T) {
	if err := Load(v); err != nil {
		panic(fmt.Sprintf("failed to load required configuration: %v", err))
	}
}

// LoadEnv loads the given .env files into the process environment without
// overriding variables that are already set.
func LoadEnv(filenames ...string) error {
	if err := godotenv.Load(filenames...); err != nil {
		return errors.Join(ErrLoadingEnvFile, err)
	}
	return nil
}

// ResetCache drops every cached configuration value.
func ResetCache() {
	cacheMu.Lock()
	defer cacheMu.Unlock()
	clear(cache)
}

func entryFor(t reflect.Type) *cacheEntry {
	cacheMu.Lock()
	defer cacheMu.Unlock()
	entry, ok := cache[t]
	if !ok {
		entry = &cacheEntry{}
		cache[t] = entry
	}
	return entry
}
