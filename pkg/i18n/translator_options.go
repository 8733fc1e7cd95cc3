package i18n

import (
	"io"
	"log/slog"
)

// Option configures a Translator.
type Option func(*Translator)

// WithDefaultLanguage sets the language used when a key is missing in the
// requested one.
func WithDefaultLanguage(lang string) Option {
	return func(t *Translator) {
		if lang != "" {
			t.defaultLang = lang
		}
	}
}

// WithFallbackToKey makes T return the key itself for missing translations.
// Enabled by default.
func WithFallbackToKey(fallback bool) Option {
	return func(t *Translator) {
		t.fallbackToKey = fallback
	}
}

// WithLogger sets the logger. A discard logger is used by default.
func WithLogger(logger *slog.Logger) Option {
	return func(t *Translator) {
		if logger != nil {
			t.logger = logger
		}
	}
}

// WithMissingTranslationsLogging logs a warning for every missing key.
func WithMissingTranslationsLogging(log bool) Option {
	return func(t *Translator) {
		t.missingLogMode = log
	}
}

// WithNoLogging disables all logging.
func WithNoLogging() Option {
	return func(t *Translator) {
		t.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
		t.missingLogMode = false
	}
}

// WithConfig applies a Config loaded from the environment.
func WithConfig(cfg Config) Option {
	return func(t *Translator) {
		WithDefaultLanguage(cfg.DefaultLanguage)(t)
		t.fallbackToKey = cfg.FallbackToKey
		t.missingLogMode = cfg.LogMissing
	}
}
