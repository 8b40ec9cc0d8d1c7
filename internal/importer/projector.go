// SPDX-FileCopyrightText: 2026 specdex
// SPDX-License-Identifier: FSL-1.1-MIT

package importer

import (
	"sort"

	"github.com/specdex/specdex/internal/util"
	"github.com/specdex/specdex/pkg/types"
)

// ProjectSchema converts a named schema node into its flat catalog shape:
// one CatalogSchema row plus one CatalogAttribute row per property.
//
// Simple-rooted schemas (string, integer, number, boolean, array) project a
// single synthetic "value" attribute carrying the root type, so the exporter
// can reconstruct the root without guessing.
func ProjectSchema(name string, node *types.SchemaNode) (types.CatalogSchema, []types.CatalogAttribute) {
	schema := types.CatalogSchema{Name: name}
	if node == nil {
		schema.Type = "object"
		return schema, nil
	}
	schema.Description = node.Description

	if node.Ref != "" {
		schema.Type = "reference"
		schema.IsReference = true
		schema.ReferencedModel = util.RefName(node.Ref)
		return schema, nil
	}

	if len(node.Properties) == 0 && len(node.Enum) > 0 {
		schema.Type = "enum"
		return schema, []types.CatalogAttribute{projectEnumOnly(node)}
	}

	rootType := node.Type
	if rootType == "" {
		rootType = "object"
	}
	schema.Type = rootType

	if rootType == "object" {
		return schema, projectProperties(node)
	}

	// Simple root: synthesize the "value" attribute.
	attr := types.CatalogAttribute{
		Name:     "value",
		Type:     rootType,
		Nullable: true,
	}
	if rootType == "array" {
		attr.ElementType = resolveType(node.Items)
	}
	if node.Default != nil {
		attr.Default = node.Default.String()
	}
	return schema, []types.CatalogAttribute{attr}
}

// projectEnumOnly handles schemas that carry an enum but no properties. The
// single attribute is named after the schema title, and when no real default
// exists the enum members are joined into the default column as a sentinel.
func projectEnumOnly(node *types.SchemaNode) types.CatalogAttribute {
	attrName := node.Title
	if attrName == "" {
		attrName = "unknown"
	}

	attr := types.CatalogAttribute{
		Name:        attrName,
		Type:        "enum",
		ElementType: node.Type,
		Nullable:    true,
		Description: node.Description,
	}
	if node.Default != nil {
		attr.Default = node.Default.String()
	} else {
		attr.Default = types.JoinEnum(node.Enum)
	}
	return attr
}

// projectProperties flattens an object schema's properties into attributes,
// in sorted property order for deterministic output.
func projectProperties(node *types.SchemaNode) []types.CatalogAttribute {
	if len(node.Properties) == 0 {
		return nil
	}

	names := make([]string, 0, len(node.Properties))
	for name := range node.Properties {
		names = append(names, name)
	}
	sort.Strings(names)

	attrs := make([]types.CatalogAttribute, 0, len(names))
	for _, name := range names {
		attrs = append(attrs, projectProperty(name, node.Properties[name], node.IsRequired(name)))
	}
	return attrs
}

// projectProperty flattens a single property into an attribute row.
func projectProperty(name string, prop *types.SchemaNode, required bool) types.CatalogAttribute {
	attr := types.CatalogAttribute{
		Name:     name,
		Nullable: !required,
	}
	if prop == nil {
		attr.Type = "object"
		return attr
	}
	attr.Description = prop.Description

	switch {
	case prop.Ref != "":
		attr.Type = util.RefName(prop.Ref)
		return attr

	case len(prop.Enum) > 0:
		attr.Type = "enum"
		attr.ElementType = prop.Type
		if prop.Default != nil {
			attr.Default = prop.Default.String()
		} else {
			attr.Default = types.JoinEnum(prop.Enum)
		}
		return attr

	case prop.Type == "array":
		attr.Type = "array"
		attr.ElementType = resolveType(prop.Items)

	case prop.Type != "":
		attr.Type = prop.Type

	default:
		attr.Type = "object"
	}

	if prop.Default != nil {
		attr.Default = prop.Default.String()
	}
	return attr
}

// resolveType resolves the type name of a nested property or item schema.
// Priority: explicit $ref, then enum, then declared type, then "object".
func resolveType(node *types.SchemaNode) string {
	if node == nil {
		return "object"
	}
	if node.Ref != "" {
		return util.RefName(node.Ref)
	}
	if len(node.Enum) > 0 {
		return "enum"
	}
	if node.Type != "" {
		return node.Type
	}
	return "object"
}
