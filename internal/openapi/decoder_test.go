// SPDX-FileCopyrightText: 2026 specdex
// SPDX-License-Identifier: FSL-1.1-MIT

package openapi

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/specdex/specdex/pkg/types"
)

const minimalJSON = `{
  "openapi": "3.0.3",
  "info": {"title": "Test API", "version": "1.0.0"},
  "paths": {}
}`

const minimalYAML = `openapi: "3.0.3"
info:
  title: Test API
  version: "1.0.0"
paths: {}
`

func TestDecode_JSON(t *testing.T) {
	doc, err := Decode([]byte(minimalJSON), FormatJSON)
	require.NoError(t, err)

	assert.Equal(t, "3.0.3", doc.OpenAPI)
	assert.Equal(t, "Test API", doc.Info.Title)
	assert.Equal(t, "1.0.0", doc.Info.Version)
	assert.NotNil(t, doc.Paths)
}

func TestDecode_YAML(t *testing.T) {
	doc, err := Decode([]byte(minimalYAML), FormatYAML)
	require.NoError(t, err)

	assert.Equal(t, "Test API", doc.Info.Title)
}

func TestDecode_SniffedFormat(t *testing.T) {
	jsonDoc, err := Decode([]byte(minimalJSON), "")
	require.NoError(t, err)

	yamlDoc, err := Decode([]byte(minimalYAML), "")
	require.NoError(t, err)

	assert.Equal(t, jsonDoc.Info, yamlDoc.Info)
}

func TestSniffFormat(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"json object", `{"a": 1}`, FormatJSON},
		{"json array", `[1, 2]`, FormatJSON},
		{"json with leading whitespace", "\n\t {\"a\": 1}", FormatJSON},
		{"yaml", "openapi: 3.0.3", FormatYAML},
		{"empty", "", FormatYAML},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SniffFormat([]byte(tt.input)))
		})
	}
}

func TestDecode_UnsupportedFormat(t *testing.T) {
	_, err := Decode([]byte(minimalJSON), "xml")

	var decodeErr *DecodeError
	require.ErrorAs(t, err, &decodeErr)
	assert.Contains(t, decodeErr.Reason, "unsupported format")
}

func TestDecode_InvalidInput(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		format string
	}{
		{"broken json", `{"info": `, FormatJSON},
		{"broken yaml", "info: {title: [", FormatYAML},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode([]byte(tt.input), tt.format)

			var decodeErr *DecodeError
			assert.ErrorAs(t, err, &decodeErr)
		})
	}
}

func TestDecode_StructuralRequirements(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		reason string
	}{
		{
			name:   "missing title",
			input:  `{"openapi": "3.0.3", "info": {"version": "1.0.0"}, "paths": {}}`,
			reason: "info.title is required",
		},
		{
			name:   "missing version",
			input:  `{"openapi": "3.0.3", "info": {"title": "T"}, "paths": {}}`,
			reason: "info.version is required",
		},
		{
			name:   "missing paths",
			input:  `{"openapi": "3.0.3", "info": {"title": "T", "version": "1"}}`,
			reason: "paths is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode([]byte(tt.input), FormatJSON)

			var decodeErr *DecodeError
			require.ErrorAs(t, err, &decodeErr)
			assert.Equal(t, tt.reason, decodeErr.Reason)
		})
	}
}

func TestDecode_UnknownFieldsIgnored(t *testing.T) {
	input := `{
  "openapi": "3.0.3",
  "info": {"title": "T", "version": "1", "x-internal": true},
  "paths": {},
  "x-vendor": {"anything": [1, 2]}
}`

	doc, err := Decode([]byte(input), FormatJSON)
	require.NoError(t, err)
	assert.Equal(t, "T", doc.Info.Title)
}

func TestDecode_RefExclusivity(t *testing.T) {
	input := `{
  "openapi": "3.0.3",
  "info": {"title": "T", "version": "1"},
  "paths": {},
  "components": {
    "schemas": {
      "Alias": {
        "$ref": "#/components/schemas/User",
        "description": "sibling text",
        "type": "object"
      },
      "User": {
        "type": "object",
        "properties": {
          "home": {"$ref": "#/components/schemas/Address", "type": "string"}
        }
      }
    }
  }
}`

	doc, err := Decode([]byte(input), FormatJSON)
	require.NoError(t, err)

	alias := doc.Components.Schemas["Alias"]
	assert.Equal(t, "#/components/schemas/User", alias.Ref)
	assert.Empty(t, alias.Description)
	assert.Empty(t, alias.Type)

	home := doc.Components.Schemas["User"].Properties["home"]
	assert.Equal(t, "#/components/schemas/Address", home.Ref)
	assert.Empty(t, home.Type)
}

func TestDecode_EnumCoercion(t *testing.T) {
	input := `{
  "openapi": "3.0.3",
  "info": {"title": "T", "version": "1"},
  "paths": {},
  "components": {
    "schemas": {
      "Level": {"type": "integer", "enum": [1, 2, 3]},
      "Flag": {"type": "boolean", "enum": [true, false]}
    }
  }
}`

	doc, err := Decode([]byte(input), FormatJSON)
	require.NoError(t, err)

	assert.Equal(t, types.EnumList{"1", "2", "3"}, doc.Components.Schemas["Level"].Enum)
	assert.Equal(t, types.EnumList{"true", "false"}, doc.Components.Schemas["Flag"].Enum)
}

func TestDecode_UnknownSchemaTypePreserved(t *testing.T) {
	input := `{
  "openapi": "3.0.3",
  "info": {"title": "T", "version": "1"},
  "paths": {},
  "components": {"schemas": {"Odd": {"type": "custom-thing"}}}
}`

	doc, err := Decode([]byte(input), FormatJSON)
	require.NoError(t, err)
	assert.Equal(t, "custom-thing", doc.Components.Schemas["Odd"].Type)
}

func TestDecode_YAMLAndJSONAgree(t *testing.T) {
	jsonInput := `{
  "openapi": "3.0.3",
  "info": {"title": "T", "version": "1"},
  "paths": {
    "/users": {
      "get": {
        "responses": {"200": {"description": "ok"}}
      }
    }
  }
}`
	yamlInput := `openapi: "3.0.3"
info:
  title: T
  version: "1"
paths:
  /users:
    get:
      responses:
        "200":
          description: ok
`

	fromJSON, err := Decode([]byte(jsonInput), FormatJSON)
	require.NoError(t, err)
	fromYAML, err := Decode([]byte(yamlInput), FormatYAML)
	require.NoError(t, err)

	assert.Equal(t, fromJSON, fromYAML)
}

func TestDecodeFile(t *testing.T) {
	tmpDir := t.TempDir()

	jsonPath := filepath.Join(tmpDir, "spec.json")
	require.NoError(t, os.WriteFile(jsonPath, []byte(minimalJSON), 0o644))

	yamlPath := filepath.Join(tmpDir, "spec.yaml")
	require.NoError(t, os.WriteFile(yamlPath, []byte(minimalYAML), 0o644))

	fromJSON, err := DecodeFile(jsonPath)
	require.NoError(t, err)
	fromYAML, err := DecodeFile(yamlPath)
	require.NoError(t, err)

	assert.Equal(t, fromJSON.Info, fromYAML.Info)
}

func TestDecodeFile_UnknownExtensionSniffs(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "spec.txt")
	require.NoError(t, os.WriteFile(path, []byte(minimalYAML), 0o644))

	doc, err := DecodeFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Test API", doc.Info.Title)
}

func TestDecodeFile_NonExistent(t *testing.T) {
	_, err := DecodeFile("/nonexistent/spec.yaml")
	assert.Error(t, err)
	assert.False(t, errors.As(err, new(*DecodeError)))
}
