package config

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// cache keeps one parsed copy per configuration type.
type cache struct {
	mu     sync.Mutex
	values map[reflect.Type]any
}

var (
	globalCache = &cache{values: make(map[reflect.Type]any)}

	defaultEnvLoaded sync.Once
)

// Load parses environment variables into v according to its `env` tags.
//
// The default .env file in the working directory is read once, if present.
// Each configuration type is parsed only once per process; later calls for
// the same type receive a copy of the cached value. A failed parse is not
// cached, so a later call can succeed once the environment is fixed.
//
// Example:
//
//	type StoreConfig struct {
//		Index string `env:"ITEM_INDEX" envDefault:"itemdata"`
//	}
//
//	var cfg StoreConfig
//	if err := config.Load(&cfg); err != nil {
//		// Handle error
//	}
func Load[T any](v *T) error {
	defaultEnvLoaded.Do(func() {
		// The .env file is optional.
		_ = godotenv.Load()
	})
	if v == nil {
		return ErrNilPointer
	}

	key := typeKey[T]()

	globalCache.mu.Lock()
	defer globalCache.mu.Unlock()

	if cached, ok := globalCache.values[key]; ok {
		*v = cached.(T)
		return nil
	}

	if err := parse(v); err != nil {
		return err
	}
	globalCache.values[key] = *v
	return nil
}

// MustLoad works like Load but panics if configuration loading fails.
func MustLoad[T any](v *T) {
	if err := Load(v); err != nil {
		panic(fmt.Sprintf("Failed to load required configuration: %v", err))
	}
}

// ForceReload re-parses the environment into v and replaces the cached copy.
func ForceReload[T any](v *T) error {
	if v == nil {
		return ErrNilPointer
	}

	key := typeKey[T]()

	globalCache.mu.Lock()
	defer globalCache.mu.Unlock()

	delete(globalCache.values, key)
	if err := parse(v); err != nil {
		return err
	}
	globalCache.values[key] = *v
	return nil
}

// ResetCache drops every cached configuration.
func ResetCache() {
	globalCache.mu.Lock()
	defer globalCache.mu.Unlock()
	globalCache.values = make(map[reflect.Type]any)
}

// LoadEnv reads the given .env files into the process environment, or the
// default .env when called without arguments. Later files win over earlier
// ones; variables already set in the process are overwritten as well.
func LoadEnv(paths ...string) error {
	if len(paths) == 0 {
		if err := godotenv.Overload(); err != nil {
			return errors.Join(ErrLoadingEnvFile, err)
		}
		return nil
	}
	if err := godotenv.Overload(paths...); err != nil {
		return errors.Join(ErrLoadingEnvFile, err)
	}
	return nil
}

// MustLoadEnv works like LoadEnv but panics on failure.
func MustLoadEnv(paths ...string) {
	if err := LoadEnv(paths...); err != nil {
		panic(fmt.Sprintf("Failed to load env files: %v", err))
	}
}

func parse[T any](v *T) error {
	var fresh T
	if err := env.Parse(&fresh); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}
	*v = fresh
	return nil
}

func typeKey[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}
