// Package config loads calendrier settings from viper.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/viper"

	"github.com/daviddao/calendrier/pkg/clock"
)

// EnvPrefix is prepended to environment variable names, so table_db is
// read from CALENDRIER_TABLE_DB.
const EnvPrefix = "CALENDRIER"

// ErrInvalid is wrapped by every validation error from Load.
var ErrInvalid = errors.New("invalid config")

// Config holds the runtime settings. Values come from .calendrier.yaml,
// CALENDRIER_* env vars and CLI flags, in increasing precedence.
type Config struct {
	Offset   string `mapstructure:"offset"`
	TableDB  string `mapstructure:"table_db"`
	LogLevel string `mapstructure:"log_level"`
	JSON     bool   `mapstructure:"json"`

	conv  clock.Converter
	level slog.Level
}

// Load reads configuration from viper, applying defaults for any values
// not set by config file, environment or flags.
func Load() (Config, error) {
	viper.SetDefault("offset", "decree")
	viper.SetDefault("table_db", "")
	viper.SetDefault("log_level", "warn")
	viper.SetDefault("json", false)

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}

	conv, err := clock.ParseOffset(cfg.Offset)
	if err != nil {
		return Config{}, fmt.Errorf("%w: offset: %w", ErrInvalid, err)
	}
	cfg.conv = conv

	level, err := ParseLogLevel(cfg.LogLevel)
	if err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	cfg.level = level
	return cfg, nil
}

// Converter returns the clock converter selected by Offset.
func (c Config) Converter() clock.Converter { return c.conv }

// Level returns the slog level selected by LogLevel.
func (c Config) Level() slog.Level { return c.level }

// ParseLogLevel maps debug, info, warn (or warning) and error to slog
// levels.
func ParseLogLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return 0, fmt.Errorf("log level %q: want debug, info, warn or error", s)
}
