// Package i18n translates message keys into localized strings with named
// placeholder substitution.
//
// A Translator loads its data once through a TranslationAdapter. MapAdapter
// serves an in-memory map, FileAdapter a single YAML or JSON file and
// FSAdapter every supported file of a directory inside any fs.FS, including
// embed.FS. Files are shaped as a map of language code to translations;
// nested maps are addressed with dot-separated keys.
//
//	adapter := i18n.NewFSAdapter(i18n.NewYAMLParser(), validator.Translations, validator.TranslationsDir)
//	translator, err := i18n.NewTranslator(ctx, adapter, i18n.WithDefaultLanguage("en"))
//	if err != nil {
//	    return err
//	}
//
//	msg := translator.T("de", "validation.non_empty", "field", "Name")
//	// msg == "Name darf nicht leer sein"
//
// Placeholders use the form %{name} and are filled from key/value argument
// pairs. A key missing in the requested language falls back to the default
// language, then to the key itself unless WithFallbackToKey(false) is given.
//
// The language can travel in a context.Context with SetLocale; Tc reads it.
package i18n
