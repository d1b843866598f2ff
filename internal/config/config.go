// Package config loads the bot configuration from .bot/config.yaml, an
// optional .env file and BOT_* environment variables, in that order.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"addressbook/internal/contacts"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// DirName is the per-workspace directory holding config and logs.
const DirName = ".bot"

// Config holds all bot configuration.
type Config struct {
	Logging   LoggingConfig   `yaml:"logging"`
	UI        UIConfig        `yaml:"ui"`
	Birthdays BirthdaysConfig `yaml:"birthdays"`
}

// UIConfig configures the terminal output.
type UIConfig struct {
	Theme string `yaml:"theme" env:"BOT_THEME"` // light, dark, or empty to detect
}

// BirthdaysConfig configures the upcoming birthdays report.
type BirthdaysConfig struct {
	WindowDays int    `yaml:"window_days" env:"BOT_BIRTHDAY_WINDOW"`
	LeapDay    string `yaml:"leap_day" env:"BOT_LEAP_DAY"` // mar1, feb28
}

var (
	validLevels  = []string{"debug", "info", "warn", "error"}
	validFormats = []string{"console", "json"}
	validThemes  = []string{"", "light", "dark"}
)

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
			File:   "bot.log",
		},
		Birthdays: BirthdaysConfig{
			WindowDays: contacts.DefaultWindowDays,
			LeapDay:    string(contacts.LeapDayMarch1),
		},
	}
}

// Dir returns the config directory of a workspace.
func Dir(workspace string) string {
	return filepath.Join(workspace, DirName)
}

// DefaultPath returns the config file path of a workspace.
func DefaultPath(workspace string) string {
	return filepath.Join(Dir(workspace), "config.yaml")
}

// LoadDotEnv loads workspace/.env into the process environment.
// Variables already set win. A missing file is not an error.
func LoadDotEnv(workspace string) error {
	err := godotenv.Load(filepath.Join(workspace, ".env"))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to load .env: %w", err)
	}
	return nil
}

// Load loads configuration from a YAML file. A missing file yields defaults.
// Environment overrides are applied last and the result is validated.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	case errors.Is(err, os.ErrNotExist):
	default:
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := cfg.applyEnvOverrides(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

func (c *Config) applyEnvOverrides() error {
	if err := env.Parse(c); err != nil {
		return fmt.Errorf("failed to apply environment overrides: %w", err)
	}
	return nil
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if !slices.Contains(validLevels, c.Logging.Level) {
		return fmt.Errorf("invalid log level: %q (valid: %v)", c.Logging.Level, validLevels)
	}
	if !slices.Contains(validFormats, c.Logging.Format) {
		return fmt.Errorf("invalid log format: %q (valid: %v)", c.Logging.Format, validFormats)
	}
	if !slices.Contains(validThemes, c.UI.Theme) {
		return fmt.Errorf("invalid theme: %q (valid: light, dark)", c.UI.Theme)
	}
	if c.Birthdays.WindowDays < 0 || c.Birthdays.WindowDays > 366 {
		return fmt.Errorf("invalid birthday window: %d days (valid: 0-366)", c.Birthdays.WindowDays)
	}
	if _, err := contacts.ParseLeapDayPolicy(c.Birthdays.LeapDay); err != nil {
		return err
	}
	return nil
}

// QueryOptions returns the birthday query options. Call after Validate.
func (c *Config) QueryOptions() contacts.Options {
	policy, _ := contacts.ParseLeapDayPolicy(c.Birthdays.LeapDay)
	return contacts.Options{WindowDays: c.Birthdays.WindowDays, LeapDay: policy}
}
