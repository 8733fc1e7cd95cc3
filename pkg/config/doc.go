// Package config loads typed configuration from environment variables.
//
// It wraps github.com/joho/godotenv, which reads .env files into the process
// environment, and github.com/caarlos0/env/v11, which parses the environment
// into a struct using field tags:
//
//	type LogConfig struct {
//	    Level  string `env:"LOG_LEVEL" envDefault:"info"`
//	    Format string `env:"LOG_FORMAT" envDefault:"json"`
//	}
//
//	var cfg LogConfig
//	if err := config.Load(&cfg); err != nil {
//	    return err
//	}
//
// Each configuration type is parsed once; later Load calls for the same type
// are served from an in-memory cache. Reload bypasses the cache and
// ResetCache clears it, which is mostly useful in tests.
//
// LoadEnv reads additional .env files. Values already present in the
// environment are never overwritten.
//
// # Error Handling
//
// Errors wrap the sentinels ErrParsingConfig, ErrInvalidConfigType,
// ErrNilPointer and ErrLoadingEnvFile and can be matched with errors.Is.
package config
