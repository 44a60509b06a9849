// Package config loads the command's configuration from the environment.
package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"

	"github.com/zephyrtronium/mathparse/internal/logging"
)

// Prefix is the prefix of every environment variable the command reads.
const Prefix = "MATHPARSE"

// Config holds the command's configuration. Each field is read from
// MATHPARSE_ followed by the field name in upper snake case, e.g.
// MATHPARSE_LOG_LEVEL.
type Config struct {
	// Language is the default language code for reading math words.
	Language string
	// Stopwords are words ignored while reading expressions, separated by
	// commas.
	Stopwords []string
	// LogLevel is the minimum level of logs to write.
	LogLevel string `split_words:"true" default:"warn"`
	// LogDev selects human-readable development logs.
	LogDev bool `split_words:"true" default:"false"`
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(Prefix, &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return &cfg, nil
}

// Default returns the configuration used when the environment sets nothing.
func Default() *Config {
	return &Config{LogLevel: "warn"}
}

// Logging returns the logger configuration.
func (c *Config) Logging() logging.Config {
	l := logging.DefaultConfig()
	l.Level = c.LogLevel
	l.Development = c.LogDev
	return l
}
