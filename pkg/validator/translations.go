package validator

import "embed"

// Translations holds the default messages for every Reason, one YAML file per
// language under the "translations" directory.
//
//go:embed translations/*.yaml
var Translations embed.FS

// TranslationsDir is the directory inside Translations.
const TranslationsDir = "translations"
