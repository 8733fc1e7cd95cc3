package config

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var (
	mu    sync.Mutex
	cache = make(map[reflect.Type]any)

	defaultEnvLoaded sync.Once
)

// Load parses environment variables into v according to its `env` tags.
// The first successful parse of a type is cached and every later call for
// the same type returns the cached copy. The default .env file, if present,
// is read once before the first parse.
func Load[T any](v *T) error {
	defaultEnvLoaded.Do(func() {
		// a missing .env is fine
		_ = godotenv.Load()
	})
	if v == nil {
		return ErrNilPointer
	}

	t := reflect.TypeOf((*T)(nil)).Elem()
	if t.Kind() != reflect.Struct {
		return fmt.Errorf("%w: %s is not a struct", ErrInvalidConfigType, t)
	}

	mu.Lock()
	defer mu.Unlock()

	if cached, ok := cache[t]; ok {
		*v = cached.(T)
		return nil
	}
	return parse(t, v)
}

// Reload parses v again, ignoring and replacing the cached copy.
func Reload[T any](v *T) error {
	if v == nil {
		return ErrNilPointer
	}

	mu.Lock()
	defer mu.Unlock()
	return parse(reflect.TypeOf((*T)(nil)).Elem(), v)
}

// parse must be called with mu held.
func parse[T any](t reflect.Type, v *T) error {
	var parsed T
	if err := env.Parse(&parsed); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}
	cache[t] = parsed
	*v = parsed
	return nil
}

// MustLoad works like Load but panics on failure.
func MustLoad[T any](v *T) {
	if err := Load(v); err != nil {
		panic(fmt.Sprintf("failed to load required configuration: %v", err))
	}
}

// LoadEnv reads the given .env files into the process environment, or the
// default .env when no path is given. Variables already set are kept, and
// earlier files win over later ones.
func LoadEnv(paths ...string) error {
	if err := godotenv.Load(paths...); err != nil {
		return errors.Join(ErrLoadingEnvFile, err)
	}
	return nil
}

// MustLoadEnv works like LoadEnv but panics on failure.
func MustLoadEnv(paths ...string) {
	if err := LoadEnv(paths...); err != nil {
		panic(fmt.Sprintf("failed to load env files: %v", err))
	}
}

// ResetCache forgets every cached configuration.
func ResetCache() {
	mu.Lock()
	defer mu.Unlock()
	clear(cache)
}
