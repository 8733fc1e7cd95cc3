package validator_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/liteutils/pkg/i18n"
	"github.com/dmitrymomot/liteutils/pkg/validator"
)

func newTranslator(t *testing.T) *i18n.Translator {
	t.Helper()
	adapter := i18n.NewFSAdapter(i18n.NewYAMLParser(), validator.Translations, validator.TranslationsDir)
	require.NotNil(t, adapter)

	tr, err := i18n.NewTranslator(context.Background(), adapter, i18n.WithDefaultLanguage("en"))
	require.NoError(t, err)
	return tr
}

func TestTranslations_CoverEveryReason(t *testing.T) {
	tr := newTranslator(t)
	assert.ElementsMatch(t, []string{"de", "en"}, tr.SupportedLanguages())

	keys := []string{validator.ReasonNone.TranslationKey()}
	for _, r := range validator.Reasons() {
		keys = append(keys, r.TranslationKey())
	}
	for _, lang := range tr.SupportedLanguages() {
		for _, key := range keys {
			assert.True(t, tr.HasTranslation(lang, key), "%s is missing %s", lang, key)
		}
	}
}

func TestValidationErrors_TranslateWithEmbeddedTranslations(t *testing.T) {
	tr := newTranslator(t)

	res := validator.New("ab", validator.WithField("name")).MinimumLength(3).Check()
	ve, ok := res.Err().(validator.ValidationErrors)
	require.True(t, ok)
	assert.Equal(t, []string{"name must be at least 3 characters long"}, ve.Translate(tr, "en"))

	res = validator.New("", validator.WithField("Name")).NonEmpty().Check()
	ve, ok = res.Err().(validator.ValidationErrors)
	require.True(t, ok)
	assert.Equal(t, []string{"Name darf nicht leer sein"}, ve.Translate(tr, "de"))

	res = validator.New("abc", validator.WithField("tag")).StartsWith("#").Check()
	ve, ok = res.Err().(validator.ValidationErrors)
	require.True(t, ok)
	assert.Equal(t, []string{`tag must start with "#"`}, ve.Translate(tr, "fr"), "unknown languages fall back to english")
}
