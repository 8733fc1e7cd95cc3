package logger

import (
	"fmt"
	"log/slog"
	"strings"

	appconfig "github.com/dmitrymomot/liteutils/pkg/config"
)

// Config describes a logger through environment variables.
type Config struct {
	Level   string `env:"LOG_LEVEL" envDefault:"info"`
	Format  string `env:"LOG_FORMAT" envDefault:"json"`
	Env     string `env:"APP_ENV" envDefault:"development"`
	Service string `env:"SERVICE_NAME" envDefault:"liteutils"`
}

// LoadConfig reads Config from the environment through the shared config cache.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := appconfig.Load(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// NewFromConfig builds a logger from cfg. Environment defaults are applied
// first, so Level and Format override them. Extra opts are applied last.
func NewFromConfig(cfg Config, opts ...Option) (*slog.Logger, error) {
	level, err := ParseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}

	format := Format(strings.ToLower(cfg.Format))
	switch format {
	case FormatJSON, FormatText:
	case "":
		format = FormatJSON
	default:
		return nil, fmt.Errorf("%w %q", ErrInvalidFormat, cfg.Format)
	}

	all := make([]Option, 0, len(opts)+3)
	all = append(all, WithEnvironment(cfg.Env, cfg.Service), WithLevel(level), WithFormat(format))
	all = append(all, opts...)
	return New(all...), nil
}
