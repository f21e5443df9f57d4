// Package config manages application configuration from config.yaml,
// BOT_* environment variables, and default values.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// BotInfo holds the bot's own Telegram identity, retrieved at startup via
// GetMe and used by handlers at runtime. It is never read from the config file.
type BotInfo struct {
	ID        int64  `mapstructure:"-"`
	Username  string `mapstructure:"-"`
	FirstName string `mapstructure:"-"`
}

// LogConfig controls the structured logger.
type LogConfig struct {
	Level  string `mapstructure:"level"  validate:"required,oneof=debug info warn error"`
	Format string `mapstructure:"format" validate:"required,oneof=json text"`
}

// TelegramConfig holds the transport credentials and runtime identity.
type TelegramConfig struct {
	Token   string  `mapstructure:"token" validate:"required"`
	BotInfo BotInfo `mapstructure:"-"`
}

// CohereConfig holds the text-generation endpoint settings.
type CohereConfig struct {
	APIKey   string        `mapstructure:"api_key"  validate:"required"`
	BaseURL  string        `mapstructure:"base_url" validate:"required,url"`
	Model    string        `mapstructure:"model"    validate:"required"`
	Preamble string        `mapstructure:"preamble" validate:"required"`
	Timeout  time.Duration `mapstructure:"timeout"  validate:"required,min=1s,max=10m"`
}

// RegistryConfig holds the participant registry settings.
type RegistryConfig struct {
	ParticipantsFile string `mapstructure:"participants_file" validate:"required"`
}

// DatabaseConfig holds the message archive settings.
type DatabaseConfig struct {
	Path string `mapstructure:"path" validate:"required"`
}

// TaskConfig describes one scheduled task entry.
type TaskConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Schedule string `mapstructure:"schedule"`
}

// SchedulerConfig maps task names to their schedules.
type SchedulerConfig struct {
	Tasks map[string]TaskConfig `mapstructure:"tasks"`
}

// Config defines the application configuration. Values can be set via
// config.yaml or environment variables prefixed with BOT_
// (e.g. BOT_TELEGRAM_TOKEN, BOT_COHERE_API_KEY).
type Config struct {
	Log       LogConfig       `mapstructure:"log"`
	Telegram  TelegramConfig  `mapstructure:"telegram"`
	Cohere    CohereConfig    `mapstructure:"cohere"`
	Registry  RegistryConfig  `mapstructure:"registry"`
	Database  DatabaseConfig  `mapstructure:"database"`
	Scheduler SchedulerConfig `mapstructure:"scheduler"`
}

// Load reads configuration from the given path, layering file values over
// defaults and environment variables over both, then validates the result.
// A missing config file is not an error; defaults and environment variables
// still apply.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	v.SetEnvPrefix("BOT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("failed to read config file %q: %w", path, err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse configuration: %w", err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}
