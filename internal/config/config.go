// SPDX-FileCopyrightText: 2026 specdex
// SPDX-License-Identifier: FSL-1.1-MIT

// Package config provides configuration loading and validation for specdex.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config represents the specdex configuration.
type Config struct {
	// Service identifies the catalog service documents are imported into
	Service ServiceConfig `mapstructure:"service" yaml:"service" json:"service"`

	// Output is the output file path for exported documents
	Output string `mapstructure:"output" yaml:"output" json:"output"`

	// Format is the interchange format (yaml, json)
	Format string `mapstructure:"format" yaml:"format" json:"format"`

	// ContentType is the media type inspected for schema links
	ContentType string `mapstructure:"contentType" yaml:"contentType" json:"contentType"`

	// OpenAPI contains OpenAPI-specific configuration
	OpenAPI OpenAPIConfig `mapstructure:"openapi" yaml:"openapi" json:"openapi"`

	// Source contains spec-file discovery configuration
	Source SourceConfig `mapstructure:"source" yaml:"source" json:"source"`

	// Watch contains file watching configuration
	Watch WatchConfig `mapstructure:"watch" yaml:"watch" json:"watch"`
}

// ServiceConfig identifies the target catalog service.
type ServiceConfig struct {
	// Name is the unique service name
	Name string `mapstructure:"name" yaml:"name" json:"name"`

	// Title is the human-readable service title
	Title string `mapstructure:"title" yaml:"title" json:"title"`

	// Description is a description of the service
	Description string `mapstructure:"description" yaml:"description" json:"description"`

	// Version is the API version of the service
	Version string `mapstructure:"version" yaml:"version" json:"version"`
}

// OpenAPIConfig contains OpenAPI document configuration.
type OpenAPIConfig struct {
	// Version is the OpenAPI version emitted on export (3.0.3, 3.1.0)
	Version string `mapstructure:"version" yaml:"version" json:"version"`
}

// SourceConfig contains spec-file discovery configuration.
type SourceConfig struct {
	// Paths is a list of paths to scan for spec files
	Paths []string `mapstructure:"paths" yaml:"paths" json:"paths"`

	// Include is a list of glob patterns to include
	Include []string `mapstructure:"include" yaml:"include" json:"include"`

	// Exclude is a list of glob patterns to exclude
	Exclude []string `mapstructure:"exclude" yaml:"exclude" json:"exclude"`
}

// WatchConfig contains file watching configuration.
type WatchConfig struct {
	// Enabled determines whether to enable file watching
	Enabled bool `mapstructure:"enabled" yaml:"enabled" json:"enabled"`

	// Debounce is the debounce duration in milliseconds
	Debounce int `mapstructure:"debounce" yaml:"debounce" json:"debounce"`
}

// configFileNames is the list of config file names to search for (in order).
var configFileNames = []string{
	"specdex.yaml",
	"specdex.json",
	".specdex.yaml",
	".specdex.json",
}

// supportedFormats is the list of supported interchange formats.
var supportedFormats = []string{
	"yaml",
	"json",
}

// ErrConfigNotFound is returned when no config file is found.
var ErrConfigNotFound = errors.New("config file not found")

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("config validation error: %s: %s", e.Field, e.Message)
}

// ValidationErrors represents multiple validation errors.
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return "no validation errors"
	}
	if len(e) == 1 {
		return e[0].Error()
	}
	var sb strings.Builder
	sb.WriteString("config validation errors:\n")
	for _, err := range e {
		sb.WriteString("  - ")
		sb.WriteString(err.Field)
		sb.WriteString(": ")
		sb.WriteString(err.Message)
		sb.WriteString("\n")
	}
	return sb.String()
}

// Default returns a Config with default values.
func Default() *Config {
	return &Config{
		Service: ServiceConfig{
			Name: "default",
		},
		Output:      "openapi.yaml",
		Format:      "yaml",
		ContentType: "application/json",
		OpenAPI: OpenAPIConfig{
			Version: "3.0.3",
		},
		Source: SourceConfig{
			Paths:   []string{"."},
			Include: []string{"**/*.yaml", "**/*.yml", "**/*.json"},
			Exclude: []string{
				"vendor/**",
				"node_modules/**",
				".git/**",
				"**/testdata/**",
				"dist/**",
				"build/**",
			},
		},
		Watch: WatchConfig{
			Enabled:  false,
			Debounce: 500,
		},
	}
}

// Load loads the configuration from a file.
// It searches for config files in the following order:
// 1. specdex.yaml
// 2. specdex.json
// 3. .specdex.yaml
// 4. .specdex.json
//
// If configPath is provided, it will use that path instead.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		found := false
		for _, name := range configFileNames {
			if _, err := os.Stat(name); err == nil {
				v.SetConfigFile(name)
				found = true
				break
			}
		}
		if !found {
			return Default(), nil
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if errors.As(err, &configFileNotFoundError) {
			return Default(), nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

// LoadFromPath loads the configuration from a specific directory.
func LoadFromPath(dir string) (*Config, error) {
	for _, name := range configFileNames {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil {
			return Load(path)
		}
	}
	return Default(), nil
}

// setDefaults sets the default values for viper.
func setDefaults(v *viper.Viper) {
	v.SetDefault("service.name", "default")
	v.SetDefault("output", "openapi.yaml")
	v.SetDefault("format", "yaml")
	v.SetDefault("contentType", "application/json")
	v.SetDefault("openapi.version", "3.0.3")
	v.SetDefault("source.paths", []string{"."})
	v.SetDefault("source.include", []string{"**/*.yaml", "**/*.yml", "**/*.json"})
	v.SetDefault("source.exclude", []string{
		"vendor/**",
		"node_modules/**",
		".git/**",
		"**/testdata/**",
		"dist/**",
		"build/**",
	})
	v.SetDefault("watch.enabled", false)
	v.SetDefault("watch.debounce", 500)
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	var errs ValidationErrors

	if c.Service.Name == "" {
		errs = append(errs, ValidationError{
			Field:   "service.name",
			Message: "name is required",
		})
	}

	if c.Format != "" && !contains(supportedFormats, c.Format) {
		errs = append(errs, ValidationError{
			Field:   "format",
			Message: fmt.Sprintf("unsupported format %q, must be one of: %s", c.Format, strings.Join(supportedFormats, ", ")),
		})
	}

	if c.ContentType == "" {
		errs = append(errs, ValidationError{
			Field:   "contentType",
			Message: "contentType is required",
		})
	}

	if c.OpenAPI.Version != "" {
		if c.OpenAPI.Version != "3.0.3" && c.OpenAPI.Version != "3.1.0" {
			errs = append(errs, ValidationError{
				Field:   "openapi.version",
				Message: fmt.Sprintf("unsupported OpenAPI version %q, must be 3.0.3 or 3.1.0", c.OpenAPI.Version),
			})
		}
	}

	if c.Watch.Debounce < 0 {
		errs = append(errs, ValidationError{
			Field:   "watch.debounce",
			Message: "debounce must be non-negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// ConfigFilePath returns the path of the loaded config file, if any.
func ConfigFilePath() string {
	for _, name := range configFileNames {
		if _, err := os.Stat(name); err == nil {
			return name
		}
	}
	return ""
}

// contains checks if a slice contains a string.
func contains(slice []string, item string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}
