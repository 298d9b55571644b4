package config

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	env "github.com/Netflix/go-env"
	"github.com/go-playground/validator/v10"
)

type Config struct {
	AppEnv   string `env:"APP_ENV,default=dev"`
	Host     string `env:"HOST,default=127.0.0.1" validate:"required"`
	Port     int    `env:"PORT,default=5000" validate:"min=1,max=65535"`
	Debug    bool   `env:"DEBUG,default=false"`
	LogLevel string `env:"LOG_LEVEL,default=info" validate:"oneof=debug info warn error"`

	MaxTextLength         int     `env:"MAX_TEXT_LENGTH,default=10000" validate:"min=1"`
	ProfanityCensorChar   string  `env:"PROFANITY_CENSOR_CHAR,default=*" validate:"required"`
	ProfanityMaskLength   int     `env:"PROFANITY_MASK_LENGTH,default=4" validate:"min=0"`
	LanguageMinConfidence float64 `env:"LANGUAGE_MIN_CONFIDENCE,default=0" validate:"min=0,max=1"`

	ReadTimeout     time.Duration `env:"READ_TIMEOUT,default=15s" validate:"gt=0"`
	WriteTimeout    time.Duration `env:"WRITE_TIMEOUT,default=30s" validate:"gt=0"`
	IdleTimeout     time.Duration `env:"IDLE_TIMEOUT,default=60s" validate:"gt=0"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT,default=10s" validate:"gt=0"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Load binds the process environment into a Config and validates it.
// Call LoadEnv first so values from the env file are visible.
func Load() (Config, error) {
	var cfg Config
	if _, err := env.UnmarshalFromEnviron(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to read environment: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	if _, err := CharacterRune(c.ProfanityCensorChar); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

func (c Config) Address() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

func (c Config) CensorRune() rune {
	r, _ := CharacterRune(c.ProfanityCensorChar)
	return r
}

func (c Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func CharacterRune(str string) (rune, error) {
	r := []rune(str)
	if len(r) != 1 {
		return 0, fmt.Errorf(
			"PROFANITY_CENSOR_CHAR must be a single character, got %q",
			str,
		)
	}
	return r[0], nil
}
