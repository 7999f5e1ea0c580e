// Package config provides configuration loading and validation for the CLI.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment variable read by the CLI
const EnvPrefix = "RESUME_ATS"

// Output formats
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Config represents the CLI configuration that can be loaded from a JSON or
// YAML file and from RESUME_ATS_* environment variables. All fields are
// optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Inputs
	Resume  string `mapstructure:"resume" json:"resume,omitempty"`   // Path to the plain-text résumé
	Role    string `mapstructure:"role" json:"role,omitempty"`       // Target role key or name
	Catalog string `mapstructure:"catalog" json:"catalog,omitempty"` // Catalog override file (JSON or YAML)

	// Analysis
	Year           int  `mapstructure:"year" json:"year,omitempty" validate:"omitempty,min=2000,max=2100"`
	Suggestions    int  `mapstructure:"suggestions" json:"suggestions,omitempty" validate:"omitempty,min=1,max=20"`
	SkipValidation bool `mapstructure:"skip_validation" json:"skip_validation,omitempty"`

	// Output
	Format string `mapstructure:"format" json:"format,omitempty" validate:"omitempty,oneof=text json"`
	Out    string `mapstructure:"out" json:"out,omitempty"` // Report file; stdout when empty

	// Logging
	Debug    bool `mapstructure:"debug" json:"debug,omitempty"`
	JSONLogs bool `mapstructure:"json_logs" json:"json_logs,omitempty"`
}

// keys lists every configuration key so that viper can bind its environment variable
var keys = []string{
	"resume", "role", "catalog",
	"year", "suggestions", "skip_validation",
	"format", "out",
	"debug", "json_logs",
}

// Defaults returns the built-in configuration defaults
func Defaults() Config {
	return Config{Format: FormatText}
}

func newViper() (*viper.Viper, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	for _, key := range keys {
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("failed to bind environment variable for %s: %w", key, err)
		}
	}
	return v, nil
}

func decode(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	return &cfg, nil
}

// LoadConfig loads configuration from a JSON or YAML file. Environment
// variables override file values. Returns an error if the file cannot be
// read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	v, err := newViper()
	if err != nil {
		return nil, err
	}
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	return decode(v)
}

// LoadEnv loads configuration from environment variables only
func LoadEnv() (*Config, error) {
	v, err := newViper()
	if err != nil {
		return nil, err
	}
	return decode(v)
}

// Validate checks that the configuration has valid values.
// Note: This doesn't check for required fields since those are handled
// by CLI flag validation after merging.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			fe := fieldErrs[0]
			return fmt.Errorf("config error: '%s' failed the '%s' check (value %v)", fe.Field(), fe.Tag(), fe.Value())
		}
		return fmt.Errorf("config error: %w", err)
	}

	// Validate file paths exist (if specified)
	if c.Resume != "" {
		if _, err := os.Stat(c.Resume); os.IsNotExist(err) {
			return fmt.Errorf("config error: resume file not found: %s", c.Resume)
		}
	}

	if c.Catalog != "" {
		if _, err := os.Stat(c.Catalog); os.IsNotExist(err) {
			return fmt.Errorf("config error: catalog file not found: %s", c.Catalog)
		}
	}

	return nil
}

// ApplyFlags returns a copy of c in which every key reported by changed takes
// its value from flags. An explicitly set false or zero wins over the file.
func (c *Config) ApplyFlags(flags Config, changed func(key string) bool) Config {
	result := *c
	for _, key := range keys {
		if !changed(key) {
			continue
		}
		switch key {
		case "resume":
			result.Resume = flags.Resume
		case "role":
			result.Role = flags.Role
		case "catalog":
			result.Catalog = flags.Catalog
		case "year":
			result.Year = flags.Year
		case "suggestions":
			result.Suggestions = flags.Suggestions
		case "skip_validation":
			result.SkipValidation = flags.SkipValidation
		case "format":
			result.Format = flags.Format
		case "out":
			result.Out = flags.Out
		case "debug":
			result.Debug = flags.Debug
		case "json_logs":
			result.JSONLogs = flags.JSONLogs
		}
	}
	return result
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	// String fields: use default if empty
	if result.Resume == "" {
		result.Resume = defaults.Resume
	}
	if result.Role == "" {
		result.Role = defaults.Role
	}
	if result.Catalog == "" {
		result.Catalog = defaults.Catalog
	}
	if result.Format == "" {
		result.Format = defaults.Format
	}
	if result.Out == "" {
		result.Out = defaults.Out
	}

	// Int fields: use default if zero
	if result.Year == 0 {
		result.Year = defaults.Year
	}
	if result.Suggestions == 0 {
		result.Suggestions = defaults.Suggestions
	}

	// Bool fields: only a true default can switch a flag on
	result.SkipValidation = result.SkipValidation || defaults.SkipValidation
	result.Debug = result.Debug || defaults.Debug
	result.JSONLogs = result.JSONLogs || defaults.JSONLogs

	return result
}
