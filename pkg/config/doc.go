// Package config provides a type-safe, generic and cached way to load
// application configuration from environment variables.
//
// It wraps `github.com/joho/godotenv` and `github.com/caarlos0/env/v11`:
//
//   - Reads the default `.env` in the working directory on first use, and any
//     number of explicit files through LoadEnv.
//   - Parses the environment into any Go struct using `env` field tags.
//   - Caches each successfully parsed configuration type for the lifetime of
//     the process.
//   - Offers panicking variants (MustLoad, MustLoadEnv) for configuration the
//     program cannot start without.
//
// # Usage
//
//	var cfg opensearch.Config
//	if err := config.Load(&cfg); err != nil {
//	    log.Fatalf("parsing env: %v", err)
//	}
//
// Every struct in this module ships sensible defaults through `envDefault`,
// so a bare environment reproduces the local two-node demo setup.
//
// # Error Handling
//
//   - ErrParsingConfig  – env vars could not be parsed into the struct.
//   - ErrLoadingEnvFile – a .env file passed to LoadEnv could not be read.
//   - ErrNilPointer     – nil pointer passed to Load or ForceReload.
//
// # Testing Helpers
//
// ResetCache clears the cache between tests; ForceReload re-parses a single
// type after the process environment changed.
package config
