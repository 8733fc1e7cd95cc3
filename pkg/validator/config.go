package validator

import (
	"golang.org/x/text/language"

	"github.com/dmitrymomot/liteutils/pkg/config"
)

// Config holds validator defaults read from the environment.
type Config struct {
	Language string `env:"VALIDATOR_LANGUAGE" envDefault:"und"`
	Field    string `env:"VALIDATOR_FIELD" envDefault:"text"`
}

// LanguageTag parses Language, falling back to language.Und.
func (c Config) LanguageTag() language.Tag {
	tag, err := language.Parse(c.Language)
	if err != nil {
		return language.Und
	}
	return tag
}

// LoadConfig reads Config from the environment through the shared config cache.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := config.Load(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
