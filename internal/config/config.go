// Package config provides Viper-based hierarchical configuration management.
package config

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Config represents the complete application configuration.
type Config struct {
	Log struct {
		Level  string `mapstructure:"level" yaml:"level"`
		Format string `mapstructure:"format" yaml:"format"`
	} `mapstructure:"log" yaml:"log"`

	CSV struct {
		Delimiter string `mapstructure:"delimiter" yaml:"delimiter"`
	} `mapstructure:"csv" yaml:"csv"`

	AI struct {
		Enabled        bool   `mapstructure:"enabled" yaml:"enabled"`
		Model          string `mapstructure:"model" yaml:"model"`
		TimeoutSeconds int    `mapstructure:"timeout_seconds" yaml:"timeout_seconds"`
		APIKey         string `mapstructure:"api_key" yaml:"-"` // Never serialize the API key
	} `mapstructure:"ai" yaml:"ai"`

	Rules struct {
		File string `mapstructure:"file" yaml:"file"`
	} `mapstructure:"rules" yaml:"rules"`

	Store struct {
		Driver string `mapstructure:"driver" yaml:"driver"`
		Path   string `mapstructure:"path" yaml:"path"`
	} `mapstructure:"store" yaml:"store"`
}

// Load initializes Viper configuration with hierarchical loading: defaults,
// then an optional config file, then FINCOACH_* environment variables.
func Load() (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("$HOME/.fincoach")
	v.AddConfigPath(".fincoach")
	v.AddConfigPath(".")

	v.SetEnvPrefix("FINCOACH")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			// Keep going with defaults and env vars; a broken config file
			// should not prevent analysis from running.
			fmt.Printf("Warning: error reading config file %s: %v\n", v.ConfigFileUsed(), err)
		}
	}

	// The Gemini key always comes from the conventional unprefixed variable.
	if err := v.BindEnv("ai.api_key", "GEMINI_API_KEY"); err != nil {
		fmt.Printf("Warning: failed to bind GEMINI_API_KEY environment variable: %v\n", err)
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	v.SetDefault("csv.delimiter", ",")

	v.SetDefault("ai.enabled", false)
	v.SetDefault("ai.model", "gemini-2.0-flash")
	v.SetDefault("ai.timeout_seconds", 30)

	v.SetDefault("rules.file", "")

	v.SetDefault("store.driver", "memory")
	v.SetDefault("store.path", "fincoach.db")
}

func validate(config *Config) error {
	if _, err := logrus.ParseLevel(config.Log.Level); err != nil {
		return fmt.Errorf("invalid log level: %s", config.Log.Level)
	}

	if config.Log.Format != "text" && config.Log.Format != "json" {
		return fmt.Errorf("invalid log format: %s (must be 'text' or 'json')", config.Log.Format)
	}

	if len(config.CSV.Delimiter) != 1 {
		return fmt.Errorf("CSV delimiter must be a single character, got: %s", config.CSV.Delimiter)
	}

	if config.AI.Enabled {
		if config.AI.APIKey == "" {
			return fmt.Errorf("GEMINI_API_KEY required when AI is enabled")
		}
		if config.AI.TimeoutSeconds < 1 || config.AI.TimeoutSeconds > 300 {
			return fmt.Errorf("ai.timeout_seconds must be between 1 and 300, got: %d", config.AI.TimeoutSeconds)
		}
	}

	switch config.Store.Driver {
	case "memory", "sqlite":
	default:
		return fmt.Errorf("invalid store driver: %s (must be 'memory' or 'sqlite')", config.Store.Driver)
	}

	return nil
}
