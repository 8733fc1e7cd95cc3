package i18n_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appconfig "github.com/dmitrymomot/liteutils/pkg/config"
	"github.com/dmitrymomot/liteutils/pkg/i18n"
)

func newTestTranslator(t *testing.T, opts ...i18n.Option) *i18n.Translator {
	t.Helper()
	adapter := &i18n.MapAdapter{Data: map[string]map[string]any{
		"en": {
			"hello":   "Hello",
			"welcome": "Welcome, %{name}!",
			"nested": map[string]any{
				"greeting": "Nested greeting for %{name}",
			},
			"only_en": "English only",
			"number":  42,
		},
		"fr": {
			"hello":   "Bonjour",
			"welcome": "Bienvenue, %{name}!",
		},
	}}
	tr, err := i18n.NewTranslator(context.Background(), adapter, opts...)
	require.NoError(t, err)
	return tr
}

func TestNewTranslator(t *testing.T) {
	t.Run("nil adapter", func(t *testing.T) {
		tr, err := i18n.NewTranslator(context.Background(), nil)
		assert.Nil(t, tr)
		assert.ErrorIs(t, err, i18n.ErrNilAdapter)
	})

	t.Run("empty language code", func(t *testing.T) {
		adapter := &i18n.MapAdapter{Data: map[string]map[string]any{"": {"a": "b"}}}
		_, err := i18n.NewTranslator(context.Background(), adapter)
		assert.ErrorIs(t, err, i18n.ErrEmptyLanguage)
	})

	t.Run("nil translations", func(t *testing.T) {
		adapter := &i18n.MapAdapter{Data: map[string]map[string]any{"en": nil}}
		_, err := i18n.NewTranslator(context.Background(), adapter)
		assert.ErrorIs(t, err, i18n.ErrNilTranslations)
	})

	t.Run("empty adapter is allowed", func(t *testing.T) {
		tr, err := i18n.NewTranslator(context.Background(), &i18n.MapAdapter{})
		require.NoError(t, err)
		assert.Empty(t, tr.SupportedLanguages())
	})
}

func TestTranslator_SupportedLanguages(t *testing.T) {
	tr := newTestTranslator(t)
	assert.Equal(t, []string{"en", "fr"}, tr.SupportedLanguages())
	assert.Equal(t, i18n.DefaultLanguage, tr.DefaultLanguage())
}

func TestTranslator_T(t *testing.T) {
	tr := newTestTranslator(t)

	tests := []struct {
		name string
		lang string
		key  string
		args []string
		want string
	}{
		{"simple", "en", "hello", nil, "Hello"},
		{"other language", "fr", "hello", nil, "Bonjour"},
		{"placeholder", "fr", "welcome", []string{"name", "Jean"}, "Bienvenue, Jean!"},
		{"nested key", "en", "nested.greeting", []string{"name", "Ann"}, "Nested greeting for Ann"},
		{"unknown placeholder kept", "en", "welcome", []string{"other", "x"}, "Welcome, %{name}!"},
		{"odd argument ignored", "en", "welcome", []string{"name", "Bob", "dangling"}, "Welcome, Bob!"},
		{"falls back to default language", "fr", "only_en", nil, "English only"},
		{"unsupported language uses default", "xx", "hello", nil, "Hello"},
		{"missing key returns key", "en", "missing.key", nil, "missing.key"},
		{"non-string value returns key", "en", "number", nil, "number"},
		{"map value returns key", "en", "nested", nil, "nested"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tr.T(tt.lang, tt.key, tt.args...))
		})
	}
}

func TestTranslator_WithoutFallbackToKey(t *testing.T) {
	tr := newTestTranslator(t, i18n.WithFallbackToKey(false))
	assert.Equal(t, "", tr.T("en", "missing"))
	assert.Equal(t, "Hello", tr.T("en", "hello"))
}

func TestTranslator_WithDefaultLanguage(t *testing.T) {
	tr := newTestTranslator(t, i18n.WithDefaultLanguage("fr"))
	assert.Equal(t, "fr", tr.DefaultLanguage())
	assert.Equal(t, "Bonjour", tr.T("de", "hello"))
}

func TestTranslator_MissingTranslationsLogging(t *testing.T) {
	buf := &bytes.Buffer{}
	log := slog.New(slog.NewTextHandler(buf, nil))
	tr := newTestTranslator(t,
		i18n.WithLogger(log),
		i18n.WithMissingTranslationsLogging(true),
	)

	tr.T("en", "missing")
	assert.Contains(t, buf.String(), "translation not found")
	assert.Contains(t, buf.String(), "key=missing")

	buf.Reset()
	quiet := newTestTranslator(t, i18n.WithLogger(log), i18n.WithMissingTranslationsLogging(true), i18n.WithNoLogging())
	quiet.T("en", "missing")
	assert.Empty(t, buf.String())
}

func TestTranslator_HasTranslation(t *testing.T) {
	tr := newTestTranslator(t)
	assert.True(t, tr.HasTranslation("en", "hello"))
	assert.True(t, tr.HasTranslation("en", "nested.greeting"))
	assert.False(t, tr.HasTranslation("fr", "only_en"))
	assert.False(t, tr.HasTranslation("xx", "hello"))
	assert.False(t, tr.HasTranslation("en", "nested"))
}

func TestTranslator_Td(t *testing.T) {
	tr := newTestTranslator(t)
	assert.Equal(t, "Hello", tr.Td("en", "hello", "fallback"))
	assert.Equal(t, "Hi Max", tr.Td("en", "missing", "Hi %{name}", "name", "Max"))
}

func TestTranslator_Tc(t *testing.T) {
	tr := newTestTranslator(t)

	assert.Equal(t, "Hello", tr.Tc(context.Background(), "hello"))

	ctx := i18n.SetLocale(context.Background(), "fr")
	assert.Equal(t, "fr", i18n.GetLocale(ctx))
	assert.Equal(t, "Bienvenue, Zoe!", tr.Tc(ctx, "welcome", "name", "Zoe"))
}

func TestTranslator_WithConfig(t *testing.T) {
	appconfig.ResetCache()
	t.Cleanup(appconfig.ResetCache)
	t.Setenv("I18N_DEFAULT_LANGUAGE", "fr")
	t.Setenv("I18N_FALLBACK_TO_KEY", "false")

	cfg, err := i18n.LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "fr", cfg.DefaultLanguage)
	assert.False(t, cfg.FallbackToKey)

	tr := newTestTranslator(t, i18n.WithConfig(cfg))
	assert.Equal(t, "fr", tr.DefaultLanguage())
	assert.Equal(t, "", tr.T("en", "missing"))
}
