// Package config provides configuration and path management.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	// AppName is the application name.
	AppName = "iso3166"

	// ConfigDirName is the configuration directory name.
	ConfigDirName = ".iso3166"

	// ConfigFileName is the configuration file name.
	ConfigFileName = "config.yaml"

	// FormatText prints tab-separated lines.
	FormatText = "text"

	// FormatJSON prints indented JSON.
	FormatJSON = "json"

	// DefaultFormat is the default output format.
	DefaultFormat = FormatText

	// DefaultLogLevel is the default log level.
	DefaultLogLevel = "warn"

	// DefaultConcurrency is the default batch lookup concurrency.
	DefaultConcurrency = 1

	// MaxConcurrency is the maximum allowed batch lookup concurrency.
	MaxConcurrency = 64

	// DefaultLogMaxSizeMB is the size at which the log file is rotated.
	DefaultLogMaxSizeMB = 10

	// DefaultLogMaxBackups is the number of rotated log files kept.
	DefaultLogMaxBackups = 3

	// DefaultLogMaxAgeDays is the age after which rotated log files are removed.
	DefaultLogMaxAgeDays = 28
)

// Config holds runtime configuration.
type Config struct {
	Format      string `yaml:"format"`
	LogLevel    string `yaml:"log_level"`
	LogFile     string `yaml:"log_file"`
	Concurrency int    `yaml:"concurrency"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Format:      DefaultFormat,
		LogLevel:    DefaultLogLevel,
		Concurrency: DefaultConcurrency,
	}
}

// DefaultConfigDir returns the default configuration directory path.
func DefaultConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		// Fallback to current directory
		home = "."
	}
	return filepath.Join(home, ConfigDirName)
}

// DefaultConfigPath returns the default configuration file path.
func DefaultConfigPath() string {
	return filepath.Join(DefaultConfigDir(), ConfigFileName)
}

// Load reads a YAML configuration file on top of the defaults.
// A missing file is an error only when required is true.
func Load(path string, required bool) (*Config, error) {
	cfg := DefaultConfig()

	content, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && !required {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	if err := yaml.Unmarshal(content, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the configuration values.
func (c *Config) Validate() error {
	switch c.Format {
	case FormatText, FormatJSON:
	default:
		return fmt.Errorf("unknown format %q", c.Format)
	}
	if c.Concurrency < 1 || c.Concurrency > MaxConcurrency {
		return fmt.Errorf("concurrency must be between 1 and %d, got %d", MaxConcurrency, c.Concurrency)
	}
	return nil
}

// IsJSON returns true if JSON output is configured.
func (c *Config) IsJSON() bool {
	return c.Format == FormatJSON
}
