package validator

import "errors"

var (
	// ErrValidationFailed is matched by every ValidationErrors value via errors.Is.
	ErrValidationFailed = errors.New("validation failed")

	// ErrUnknownReason is returned by ParseReason for names outside the catalogue.
	ErrUnknownReason = errors.New("unknown validation reason")
)
