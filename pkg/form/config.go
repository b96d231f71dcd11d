package form

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/dmitrymomot/formcheck/pkg/config"
	"github.com/dmitrymomot/formcheck/pkg/logger"
)

// EnvPrefix is prepended to every Config variable name.
const EnvPrefix = "FORMCHECK_"

// Config controls the logging of forms created by NewFromEnv.
// Empty LogLevel and LogFormat fall back to the preset of Env.
type Config struct {
	Env       string `env:"ENV" envDefault:"production"`
	Service   string `env:"SERVICE_NAME" envDefault:"formcheck"`
	LogLevel  string `env:"LOG_LEVEL"`
	LogFormat string `env:"LOG_FORMAT"`
}

// LoadConfig reads Config from FORMCHECK_* environment variables.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := config.Load(&cfg, config.WithPrefix(EnvPrefix)); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Logger builds the logger described by c, writing to w (stdout when nil).
func (c Config) Logger(w io.Writer) (*slog.Logger, error) {
	if w == nil {
		w = os.Stdout
	}
	opts := []logger.Option{logger.WithEnvironment(c.Env, c.Service), logger.WithOutput(w)}

	if c.LogLevel != "" {
		level, err := logger.ParseLevel(c.LogLevel)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
		}
		opts = append(opts, logger.WithLevel(level))
	}

	switch f := logger.Format(c.LogFormat); f {
	case "":
	case logger.FormatJSON, logger.FormatText:
		opts = append(opts, logger.WithFormat(f))
	default:
		return nil, fmt.Errorf("%w: unsupported log format %q", ErrInvalidConfig, c.LogFormat)
	}

	return logger.New(opts...), nil
}

// NewFromEnv creates a Form whose logger is configured from the environment.
// Options are applied after the environment logger, so WithLogger overrides it.
func NewFromEnv(opts ...Option) (*Form, error) {
	cfg, err := LoadConfig()
	if err != nil {
		return nil, err
	}
	log, err := cfg.Logger(nil)
	if err != nil {
		return nil, err
	}
	return New(append([]Option{WithLogger(log)}, opts...)...), nil
}
