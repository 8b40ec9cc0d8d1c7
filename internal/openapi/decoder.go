// SPDX-FileCopyrightText: 2026 specdex
// SPDX-License-Identifier: FSL-1.1-MIT

// Package openapi decodes and exports OpenAPI documents for the catalog.
package openapi

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/specdex/specdex/pkg/types"
)

// Supported interchange format tokens.
const (
	// FormatJSON selects JSON input/output.
	FormatJSON = "json"

	// FormatYAML selects YAML input/output.
	FormatYAML = "yaml"
)

// DecodeError is the fatal error class for document decoding. A DecodeError
// aborts the whole import; nothing partial is committed.
type DecodeError struct {
	// Reason describes what made the document undecodable
	Reason string

	// Err is the underlying parse error, if any
	Err error
}

func (e *DecodeError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("decode error: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("decode error: %s", e.Reason)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// Decode parses raw JSON or YAML bytes into a Document. The format token is
// "json", "yaml", or empty to sniff from content: a first non-whitespace
// byte of '{' or '[' means JSON, anything else means YAML.
//
// YAML input is parsed into a generic tree and re-marshalled through the
// JSON path, so there is exactly one decoding implementation.
func Decode(data []byte, format string) (*types.Document, error) {
	if format == "" {
		format = SniffFormat(data)
	}

	switch strings.ToLower(format) {
	case FormatJSON:
		return decodeJSON(data)
	case FormatYAML, "yml":
		jsonData, err := yamlToJSON(data)
		if err != nil {
			return nil, &DecodeError{Reason: "invalid YAML document", Err: err}
		}
		return decodeJSON(jsonData)
	default:
		return nil, &DecodeError{Reason: fmt.Sprintf("unsupported format %q", format)}
	}
}

// DecodeFile reads and decodes a document, using the file extension as a
// format hint and falling back to content sniffing.
func DecodeFile(path string) (*types.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	var format string
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		format = FormatJSON
	case ".yaml", ".yml":
		format = FormatYAML
	}

	return Decode(data, format)
}

// SniffFormat guesses the format from the first non-whitespace byte.
func SniffFormat(data []byte) string {
	for _, b := range data {
		switch b {
		case ' ', '\t', '\r', '\n':
			continue
		case '{', '[':
			return FormatJSON
		default:
			return FormatYAML
		}
	}
	return FormatYAML
}

// decodeJSON is the single decoding implementation. Unknown fields are
// ignored, not errors.
func decodeJSON(data []byte) (*types.Document, error) {
	var doc types.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, &DecodeError{Reason: "invalid JSON document", Err: err}
	}

	if err := validate(&doc); err != nil {
		return nil, err
	}

	normalizeDocument(&doc)
	return &doc, nil
}

// validate enforces the structural requirements on a decoded document.
func validate(doc *types.Document) error {
	if doc.Info.Title == "" {
		return &DecodeError{Reason: "info.title is required"}
	}
	if doc.Info.Version == "" {
		return &DecodeError{Reason: "info.version is required"}
	}
	if doc.Paths == nil {
		return &DecodeError{Reason: "paths is required"}
	}
	return nil
}

// yamlToJSON parses YAML into a generic tree and re-serializes it as JSON.
func yamlToJSON(data []byte) ([]byte, error) {
	var raw interface{}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	return json.Marshal(jsonify(raw))
}

// jsonify converts YAML map keys to strings so the tree is JSON-encodable.
func jsonify(raw interface{}) interface{} {
	switch t := raw.(type) {
	case map[string]interface{}:
		out := make(map[string]interface{}, len(t))
		for key, value := range t {
			out[key] = jsonify(value)
		}
		return out
	case map[interface{}]interface{}:
		out := make(map[string]interface{}, len(t))
		for key, value := range t {
			out[fmt.Sprintf("%v", key)] = jsonify(value)
		}
		return out
	case []interface{}:
		out := make([]interface{}, 0, len(t))
		for _, value := range t {
			out = append(out, jsonify(value))
		}
		return out
	default:
		return raw
	}
}

// normalizeDocument enforces $ref exclusivity on every schema node reachable
// from the document.
func normalizeDocument(doc *types.Document) {
	if doc.Components != nil {
		for _, node := range doc.Components.Schemas {
			normalizeNode(node)
		}
	}

	for path, item := range doc.Paths {
		for i := range item.Parameters {
			normalizeNode(item.Parameters[i].Schema)
		}
		for _, method := range AllMethods {
			op := item.Operation(method)
			if op == nil {
				continue
			}
			for i := range op.Parameters {
				normalizeNode(op.Parameters[i].Schema)
			}
			if op.RequestBody != nil {
				for name, media := range op.RequestBody.Content {
					normalizeNode(media.Schema)
					op.RequestBody.Content[name] = media
				}
			}
			for code, resp := range op.Responses {
				for name, media := range resp.Content {
					normalizeNode(media.Schema)
					resp.Content[name] = media
				}
				op.Responses[code] = resp
			}
		}
		doc.Paths[path] = item
	}
}

// normalizeNode clears sibling fields on $ref nodes. Ref is exclusive: a
// node with Ref set carries no other semantic fields.
func normalizeNode(node *types.SchemaNode) {
	if node == nil {
		return
	}

	if node.Ref != "" {
		*node = types.SchemaNode{Ref: node.Ref}
		return
	}

	normalizeNode(node.Items)
	for _, prop := range node.Properties {
		normalizeNode(prop)
	}
}
