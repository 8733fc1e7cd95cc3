package config

import "errors"

var (
	// ErrParsingConfig is returned when environment variables cannot be parsed into the config struct.
	ErrParsingConfig = errors.New("failed to parse environment variables into config")

	// ErrInvalidConfigType is returned when the target is not a struct.
	ErrInvalidConfigType = errors.New("invalid config type")

	// ErrNilPointer is returned when a nil pointer is provided to Load.
	ErrNilPointer = errors.New("nil pointer provided to config loader")

	// ErrLoadingEnvFile is returned when a .env file passed to LoadEnv cannot be read.
	ErrLoadingEnvFile = errors.New("failed to load env file")
)
