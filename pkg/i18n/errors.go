package i18n

import "errors"

var (
	ErrNilAdapter      = errors.New("translation adapter is nil")
	ErrEmptyLanguage   = errors.New("empty language code found")
	ErrNilTranslations = errors.New("nil translations map")

	// JSON operations
	ErrJSONParsingCancelled = errors.New("json parsing cancelled")
	ErrFailedToParseJSON    = errors.New("failed to parse JSON content")

	// YAML operations
	ErrYAMLParsingCancelled = errors.New("yaml parsing cancelled")
	ErrFailedToParseYAML    = errors.New("failed to parse YAML content")

	// File operations
	ErrLoadingFileCancelled = errors.New("loading translation file cancelled")
	ErrFailedToReadFile     = errors.New("failed to read translation file")
	ErrFailedToParseFile    = errors.New("failed to parse translation file")
	ErrEmptyFile            = errors.New("translation file is empty")
	ErrNoTranslationFiles   = errors.New("no valid translation files found")
)
