package logger

import "errors"

var (
	// ErrInvalidLevel is returned by ParseLevel for unknown level names.
	ErrInvalidLevel = errors.New("invalid log level")

	// ErrInvalidFormat is returned by NewFromConfig for unknown output formats.
	ErrInvalidFormat = errors.New("invalid log format")
)
