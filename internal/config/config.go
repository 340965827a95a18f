// internal/config/config.go
//
// Runtime configuration for the wordle CLI.
//
// Sources, highest precedence first:
//   1. Command line flags (bound by name, see flagKeys).
//   2. Environment variables with the WORDLE_ prefix, e.g. WORDLE_LOG_LEVEL.
//      A `.env` file is loaded into the environment by main before this runs.
//   3. Defaults below.

package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Config is the resolved CLI configuration.
type Config struct {
	LogLevel   string `mapstructure:"log_level"`
	WordsFile  string `mapstructure:"words_file"`
	MaxGuesses int    `mapstructure:"max_guesses"`
	Workers    int    `mapstructure:"workers"`
	DailySalt  string `mapstructure:"daily_salt"`
}

// flagKeys maps flag names to config keys.
var flagKeys = map[string]string{
	"log-level":   "log_level",
	"words":       "words_file",
	"max-guesses": "max_guesses",
	"workers":     "workers",
	"daily-salt":  "daily_salt",
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		LogLevel:   "info",
		MaxGuesses: 10,
		DailySalt:  "local_dev_salt",
	}
}

// Load resolves the configuration from defaults, the environment and fs.
// fs may be nil; only flags that exist in fs are bound.
func Load(fs *pflag.FlagSet) (*Config, error) {
	v := viper.New()

	def := Default()
	v.SetDefault("log_level", def.LogLevel)
	v.SetDefault("words_file", def.WordsFile)
	v.SetDefault("max_guesses", def.MaxGuesses)
	v.SetDefault("workers", def.Workers)
	v.SetDefault("daily_salt", def.DailySalt)

	v.SetEnvPrefix("WORDLE")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if fs != nil {
		for name, key := range flagKeys {
			if f := fs.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("bind flag %s: %w", name, err)
				}
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("log_level: %w", err)
	}
	if c.MaxGuesses < 1 {
		return errors.New("max_guesses must be at least 1")
	}
	if c.Workers < 0 {
		return errors.New("workers must not be negative")
	}
	return nil
}

// Level returns the parsed log level. Call after Validate.
func (c *Config) Level() zerolog.Level {
	lvl, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		return zerolog.InfoLevel
	}
	return lvl
}
