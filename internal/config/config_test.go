// SPDX-FileCopyrightText: 2026 specdex
// SPDX-License-Identifier: FSL-1.1-MIT

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "default", cfg.Service.Name)
	assert.Equal(t, "openapi.yaml", cfg.Output)
	assert.Equal(t, "yaml", cfg.Format)
	assert.Equal(t, "application/json", cfg.ContentType)
	assert.Equal(t, "3.0.3", cfg.OpenAPI.Version)
	assert.Equal(t, []string{"."}, cfg.Source.Paths)
	assert.Contains(t, cfg.Source.Include, "**/*.yaml")
	assert.Contains(t, cfg.Source.Exclude, "vendor/**")
	assert.False(t, cfg.Watch.Enabled)
	assert.Equal(t, 500, cfg.Watch.Debounce)

	assert.NoError(t, cfg.Validate())
}

func TestLoad_FromFile(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "specdex.yaml")

	content := `service:
  name: billing
  title: Billing API
  version: "2.1.0"
output: dist/openapi.json
format: json
contentType: application/json
openapi:
  version: "3.1.0"
source:
  paths:
    - specs
watch:
  debounce: 250
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "billing", cfg.Service.Name)
	assert.Equal(t, "Billing API", cfg.Service.Title)
	assert.Equal(t, "2.1.0", cfg.Service.Version)
	assert.Equal(t, "dist/openapi.json", cfg.Output)
	assert.Equal(t, "json", cfg.Format)
	assert.Equal(t, "3.1.0", cfg.OpenAPI.Version)
	assert.Equal(t, []string{"specs"}, cfg.Source.Paths)
	assert.Equal(t, 250, cfg.Watch.Debounce)

	// Unset keys fall back to defaults.
	assert.Contains(t, cfg.Source.Include, "**/*.yaml")
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	_, err := Load("/nonexistent/specdex.yaml")
	assert.Error(t, err)
}

func TestLoadFromPath_NoConfigFile(t *testing.T) {
	cfg, err := LoadFromPath(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, Default(), cfg)
}

func TestLoadFromPath_FindsConfigFile(t *testing.T) {
	tmpDir := t.TempDir()
	content := "service:\n  name: catalog\n"
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "specdex.yaml"), []byte(content), 0o644))

	cfg, err := LoadFromPath(tmpDir)
	require.NoError(t, err)
	assert.Equal(t, "catalog", cfg.Service.Name)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:    "valid default",
			mutate:  func(c *Config) {},
			wantErr: "",
		},
		{
			name:    "missing service name",
			mutate:  func(c *Config) { c.Service.Name = "" },
			wantErr: "service.name",
		},
		{
			name:    "unsupported format",
			mutate:  func(c *Config) { c.Format = "xml" },
			wantErr: "unsupported format",
		},
		{
			name:    "missing content type",
			mutate:  func(c *Config) { c.ContentType = "" },
			wantErr: "contentType",
		},
		{
			name:    "unsupported openapi version",
			mutate:  func(c *Config) { c.OpenAPI.Version = "2.0" },
			wantErr: "unsupported OpenAPI version",
		},
		{
			name:    "negative debounce",
			mutate:  func(c *Config) { c.Watch.Debounce = -1 },
			wantErr: "debounce",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestValidate_MultipleErrors(t *testing.T) {
	cfg := Default()
	cfg.Service.Name = ""
	cfg.Format = "xml"

	err := cfg.Validate()
	require.Error(t, err)

	var errs ValidationErrors
	require.ErrorAs(t, err, &errs)
	assert.Len(t, errs, 2)
	assert.Contains(t, err.Error(), "config validation errors")
}

func TestValidationError_Error(t *testing.T) {
	err := &ValidationError{Field: "format", Message: "bad"}
	assert.Equal(t, "config validation error: format: bad", err.Error())
}
