package config

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
)

// ErrInvalid is returned by Load when a configured value is out of range.
var ErrInvalid = errors.New("invalid configuration")

// LogConfig controls the process logger.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Config holds all runtime configuration for a lockmeow invocation.
// Values are populated from .lockmeow.yaml, LOCKMEOW_* env vars, and CLI flags.
type Config struct {
	Manifest      string    `mapstructure:"manifest"`
	EventLog      string    `mapstructure:"event_log"`
	CacheCapacity int       `mapstructure:"cache_capacity"`
	Log           LogConfig `mapstructure:"log"`
}

// Load reads configuration from viper, applying built-in defaults for any
// values not set by config file, environment, or flags.
func Load() (Config, error) {
	viper.SetDefault("manifest", "items.toml")
	viper.SetDefault("event_log", "")
	viper.SetDefault("cache_capacity", 16)
	viper.SetDefault("log.level", "info")
	viper.SetDefault("log.format", "text")

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports the first out-of-range value.
func (c Config) Validate() error {
	if c.CacheCapacity < 1 {
		return fmt.Errorf("%w: cache_capacity must be positive, got %d", ErrInvalid, c.CacheCapacity)
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("%w: log.format must be text or json, got %q", ErrInvalid, c.Log.Format)
	}
	return nil
}
