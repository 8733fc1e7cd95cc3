package i18n

import "github.com/dmitrymomot/liteutils/pkg/config"

// Config describes translator defaults through environment variables.
type Config struct {
	DefaultLanguage string `env:"I18N_DEFAULT_LANGUAGE" envDefault:"en"`
	FallbackToKey   bool   `env:"I18N_FALLBACK_TO_KEY" envDefault:"true"`
	LogMissing      bool   `env:"I18N_LOG_MISSING" envDefault:"false"`
}

// LoadConfig reads Config from the environment through the shared config cache.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := config.Load(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
