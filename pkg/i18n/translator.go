package i18n

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"regexp"
	"slices"
	"strings"
	"sync"

	"github.com/dmitrymomot/liteutils/pkg/logger"
)

// Translator renders translation keys for a language with named
// placeholder substitution. It is safe for concurrent use.
type Translator struct {
	translations   map[string]map[string]any
	defaultLang    string
	fallbackToKey  bool
	missingLogMode bool
	logger         *slog.Logger
	mu             sync.RWMutex
}

// NewTranslator loads translations through adapter and applies options.
func NewTranslator(ctx context.Context, adapter TranslationAdapter, options ...Option) (*Translator, error) {
	if adapter == nil {
		return nil, ErrNilAdapter
	}

	t := &Translator{
		defaultLang:   DefaultLanguage,
		fallbackToKey: true,
		logger:        slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, option := range options {
		option(t)
	}

	translations, err := adapter.Load(ctx)
	if err != nil {
		return nil, err
	}
	if err := validateTranslations(translations); err != nil {
		return nil, err
	}
	if len(translations) == 0 {
		t.logger.WarnContext(ctx, "no translations provided")
	}

	t.translations = translations
	t.logger.InfoContext(ctx, "translations loaded",
		logger.Component("i18n"),
		slog.Any("languages", t.supportedLanguages()),
	)
	return t, nil
}

func validateTranslations(trans map[string]map[string]any) error {
	for lang, translations := range trans {
		if lang == "" {
			return ErrEmptyLanguage
		}
		if translations == nil {
			return fmt.Errorf("%w: %s", ErrNilTranslations, lang)
		}
	}
	return nil
}

func (t *Translator) supportedLanguages() []string {
	langs := make([]string, 0, len(t.translations))
	for lang := range t.translations {
		langs = append(langs, lang)
	}
	slices.Sort(langs)
	return langs
}

// SupportedLanguages returns the sorted language codes that have translations.
func (t *Translator) SupportedLanguages() []string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.supportedLanguages()
}

// DefaultLanguage returns the language T falls back to.
func (t *Translator) DefaultLanguage() string {
	return t.defaultLang
}

// lookup traverses nested maps using a dot-separated key such as
// "validation.min_length".
func lookup(m map[string]any, key string) (any, bool) {
	parts := strings.Split(key, ".")
	current := m

	for i, part := range parts {
		val, ok := current[part]
		if !ok {
			return nil, false
		}
		if i == len(parts)-1 {
			return val, true
		}

		switch next := val.(type) {
		case map[string]any:
			current = next
		case map[any]any:
			current = make(map[string]any, len(next))
			for k, v := range next {
				if ks, ok := k.(string); ok {
					current[ks] = v
				}
			}
		default:
			return nil, false
		}
	}
	return nil, false
}

// HasTranslation reports whether lang has a string value for key.
func (t *Translator) HasTranslation(lang, key string) bool {
	_, ok := t.template(lang, key)
	return ok
}

func (t *Translator) template(lang, key string) (string, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	langMap, ok := t.translations[lang]
	if !ok {
		return "", false
	}
	val, ok := lookup(langMap, key)
	if !ok {
		return "", false
	}
	switch v := val.(type) {
	case string:
		return v, true
	case fmt.Stringer:
		return v.String(), true
	default:
		return "", false
	}
}

var paramRegex = regexp.MustCompile(`%\{([^}]+)\}`)

// sprintf substitutes "%{name}" placeholders from key/value pairs in args.
// Unknown placeholders are kept; an odd trailing argument is ignored.
func sprintf(tmpl string, args []string) string {
	if len(args) < 2 {
		return tmpl
	}
	params := make(map[string]string, len(args)/2)
	for i := 0; i < len(args)-1; i += 2 {
		params[args[i]] = args[i+1]
	}
	return paramRegex.ReplaceAllStringFunc(tmpl, func(match string) string {
		if val, ok := params[match[2:len(match)-1]]; ok {
			return val
		}
		return match
	})
}

// T translates key for lang, substituting key/value pairs from args:
//
//	// "welcome": "Hello, %{name}!"
//	translator.T("en", "welcome", "name", "John") // "Hello, John!"
//
// A key missing in lang is looked up in the default language. If that fails
// too, the key itself is returned when fallback to key is enabled and an
// empty string otherwise.
func (t *Translator) T(lang, key string, args ...string) string {
	if tmpl, ok := t.template(lang, key); ok {
		return sprintf(tmpl, args)
	}
	if t.missingLogMode {
		t.logger.Warn("translation not found", "lang", lang, "key", key)
	}
	if lang != t.defaultLang {
		if tmpl, ok := t.template(t.defaultLang, key); ok {
			return sprintf(tmpl, args)
		}
	}
	if t.fallbackToKey {
		return sprintf(key, args)
	}
	return ""
}

// Td translates key for lang, returning defaultValue when it is missing.
func (t *Translator) Td(lang, key, defaultValue string, args ...string) string {
	if tmpl, ok := t.template(lang, key); ok {
		return sprintf(tmpl, args)
	}
	return sprintf(defaultValue, args)
}

// Tc translates key using the locale stored in ctx.
func (t *Translator) Tc(ctx context.Context, key string, args ...string) string {
	return t.T(GetLocale(ctx), key, args...)
}
