// SPDX-FileCopyrightText: 2026 specdex
// SPDX-License-Identifier: FSL-1.1-MIT

package importer

import (
	"sort"

	"github.com/specdex/specdex/pkg/types"
)

// NamedSchema pairs a schema node with its declared components name.
type NamedSchema struct {
	// Name is the components-level schema name
	Name string

	// Node is the schema definition
	Node *types.SchemaNode

	// Root marks a schema declared directly under components.schemas
	Root bool
}

// ExtractSchemas flattens the components-level schema map into a
// deduplicated list. Only root schemas are walked: inline nested schemas are
// projected as attributes rather than hoisted into named entries, and $ref
// targets are resolved later by name lookup. Output is sorted by name so the
// order is deterministic.
//
// The processed set guards against re-emitting a name. Root-only walking
// makes it a no-op today, but it keeps the walk terminating if nested
// expansion is ever added (self- and mutually-referential schemas are legal
// input).
func ExtractSchemas(schemas map[string]*types.SchemaNode) []NamedSchema {
	if len(schemas) == 0 {
		return nil
	}

	names := make([]string, 0, len(schemas))
	for name := range schemas {
		names = append(names, name)
	}
	sort.Strings(names)

	processed := make(map[string]bool, len(names))
	out := make([]NamedSchema, 0, len(names))
	for _, name := range names {
		if processed[name] {
			continue
		}
		processed[name] = true
		out = append(out, NamedSchema{Name: name, Node: schemas[name], Root: true})
	}
	return out
}
