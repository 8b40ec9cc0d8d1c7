// SPDX-FileCopyrightText: 2026 specdex
// SPDX-License-Identifier: FSL-1.1-MIT

package openapi

import (
	"context"
	"errors"
	"fmt"

	"github.com/specdex/specdex/internal/catalog"
	"github.com/specdex/specdex/pkg/types"
)

// AllMethods are the HTTP methods representable on an exported path item.
var AllMethods = []string{"GET", "POST", "PUT", "DELETE", "PATCH", "HEAD", "OPTIONS"}

// ExporterOption configures an Exporter.
type ExporterOption func(*Exporter)

// WithSpecVersion overrides the OpenAPI version emitted on export.
func WithSpecVersion(version string) ExporterOption {
	return func(e *Exporter) {
		e.specVersion = version
	}
}

// WithExportContentType overrides the media type emitted for request and
// response bodies.
func WithExportContentType(contentType string) ExporterOption {
	return func(e *Exporter) {
		e.contentType = contentType
	}
}

// Exporter reconstructs an OpenAPI document from catalog records, inverting
// the import projection.
type Exporter struct {
	store       catalog.Store
	specVersion string
	contentType string
}

// NewExporter creates an Exporter over the given store.
func NewExporter(store catalog.Store, opts ...ExporterOption) *Exporter {
	e := &Exporter{
		store:       store,
		specVersion: "3.0.3",
		contentType: "application/json",
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Export builds the service's document and serializes it in the requested
// format ("json" or "yaml").
func (e *Exporter) Export(ctx context.Context, service types.Service, format string) ([]byte, error) {
	doc, err := e.Build(ctx, service)
	if err != nil {
		return nil, err
	}
	return NewWriter().Marshal(doc, format)
}

// Build reconstructs the OpenAPI document for a service: one path item per
// unique path, an operation per method found among the service's calls, and
// components.schemas rebuilt from the schema and attribute rows.
func (e *Exporter) Build(ctx context.Context, service types.Service) (*types.Document, error) {
	doc := &types.Document{
		OpenAPI: e.specVersion,
		Info:    buildInfo(service),
		Paths:   make(map[string]types.PathItem),
	}

	calls, err := e.store.CallsByService(ctx, service.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list calls: %w", err)
	}
	for _, call := range calls {
		op, err := e.buildOperation(ctx, call)
		if err != nil {
			return nil, err
		}

		item := doc.Paths[call.Path]
		item.SetOperation(call.Method, op)
		doc.Paths[call.Path] = item
	}

	schemas, err := e.store.SchemasByService(ctx, service.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list schemas: %w", err)
	}
	if len(schemas) > 0 {
		components := &types.Components{
			Schemas: make(map[string]*types.SchemaNode, len(schemas)),
		}
		for _, schema := range schemas {
			node, err := e.buildSchemaNode(ctx, schema)
			if err != nil {
				return nil, err
			}
			components.Schemas[schema.Name] = node
		}
		doc.Components = components
	}

	return doc, nil
}

// buildInfo constructs the Info object from the service record.
func buildInfo(service types.Service) types.Info {
	info := types.Info{
		Title:       service.Title,
		Description: service.Description,
		Version:     service.Version,
	}
	if info.Title == "" {
		info.Title = service.Name
	}
	if info.Version == "" {
		info.Version = "1.0.0"
	}
	return info
}

// buildOperation reconstructs one operation from a call row.
func (e *Exporter) buildOperation(ctx context.Context, call types.CatalogAPICall) (*types.Operation, error) {
	op := &types.Operation{
		Summary:     call.Summary,
		Description: call.Description,
		OperationID: call.OperationID,
		Responses:   make(map[string]types.Response),
	}

	params, err := e.store.ParametersByCall(ctx, call.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list parameters: %w", err)
	}
	for _, p := range params {
		op.Parameters = append(op.Parameters, types.Parameter{
			Name:        p.Name,
			In:          p.In,
			Required:    p.Required,
			Description: p.Description,
			Schema:      parameterNode(p.Type),
		})
	}

	link, err := e.store.RequestSchemaLink(ctx, call.ID)
	switch {
	case err == nil:
		node, err := e.linkedNode(ctx, link)
		if err != nil {
			return nil, err
		}
		op.RequestBody = &types.RequestBody{
			Content: map[string]types.MediaType{
				e.contentType: {Schema: node},
			},
		}
	case !errors.Is(err, catalog.ErrNotFound):
		return nil, fmt.Errorf("failed to resolve request schema: %w", err)
	}

	resps, err := e.store.ResponsesByCall(ctx, call.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list responses: %w", err)
	}
	for _, r := range resps {
		resp := types.Response{Description: r.Description}

		link, err := e.store.ResponseSchemaLink(ctx, r.ID)
		switch {
		case err == nil:
			node, err := e.linkedNode(ctx, link)
			if err != nil {
				return nil, err
			}
			contentType := r.ContentType
			if contentType == "" {
				contentType = e.contentType
			}
			resp.Content = map[string]types.MediaType{
				contentType: {Schema: node},
			}
		case !errors.Is(err, catalog.ErrNotFound):
			return nil, fmt.Errorf("failed to resolve response schema: %w", err)
		}

		op.Responses[r.StatusCode] = resp
	}

	// Every exported operation carries at least one response.
	if len(op.Responses) == 0 {
		op.Responses["200"] = types.Response{Description: "Successful response"}
	}

	return op, nil
}

// parameterNode rebuilds a parameter's schema from its type column.
func parameterNode(paramType string) *types.SchemaNode {
	switch {
	case paramType == "":
		return &types.SchemaNode{Type: "string"}
	case types.IsPrimitiveType(paramType):
		return &types.SchemaNode{Type: paramType}
	default:
		return SchemaRef(paramType)
	}
}

// linkedNode turns a schema link into its node form: a bare $ref for direct
// links, an array of refs for links tagged Items.
func (e *Exporter) linkedNode(ctx context.Context, link *types.SchemaLink) (*types.SchemaNode, error) {
	schema, err := e.store.SchemaByID(ctx, link.SchemaID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve linked schema: %w", err)
	}

	if link.Kind == types.LinkKindItems {
		return &types.SchemaNode{
			Type:  "array",
			Items: SchemaRef(schema.Name),
		}, nil
	}
	return SchemaRef(schema.Name), nil
}

// buildSchemaNode reconstructs one components schema from its catalog rows,
// inverting the import projection.
func (e *Exporter) buildSchemaNode(ctx context.Context, schema types.CatalogSchema) (*types.SchemaNode, error) {
	if schema.IsReference {
		// Ref is exclusive: no sibling fields on the emitted node.
		return SchemaRef(schema.ReferencedModel), nil
	}

	attrs, err := e.store.AttributesBySchema(ctx, schema.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list attributes: %w", err)
	}

	switch {
	case schema.Type == "enum":
		return enumSchemaNode(schema, attrs), nil

	case schema.Type != "" && schema.Type != "object":
		// Simple and open-typed roots both round-trip through the
		// synthetic "value" attribute; the type string is preserved as is.
		return simpleSchemaNode(schema, attrs), nil

	default:
		return objectSchemaNode(schema, attrs), nil
	}
}

// enumSchemaNode rebuilds an enum-only schema from its single synthesized
// attribute.
func enumSchemaNode(schema types.CatalogSchema, attrs []types.CatalogAttribute) *types.SchemaNode {
	node := &types.SchemaNode{Description: schema.Description}
	if len(attrs) == 0 {
		return node
	}

	attr := attrs[0]
	if attr.Name != "unknown" {
		node.Title = attr.Name
	}
	if attr.ElementType != "" && types.IsPrimitiveType(attr.ElementType) {
		node.Type = attr.ElementType
	}
	node.Enum = types.SplitEnum(attr.Default)
	return node
}

// simpleSchemaNode rebuilds a simple- or open-rooted schema from its
// synthetic "value" attribute.
func simpleSchemaNode(schema types.CatalogSchema, attrs []types.CatalogAttribute) *types.SchemaNode {
	node := &types.SchemaNode{
		Type:        schema.Type,
		Description: schema.Description,
	}

	for _, attr := range attrs {
		if attr.Name != "value" {
			continue
		}
		if schema.Type == "array" {
			node.Items = elementNode(attr.ElementType)
		}
		if attr.Default != "" {
			v := types.ParseValue(attr.Default)
			node.Default = &v
		}
		break
	}
	return node
}

// objectSchemaNode rebuilds an object schema: one property per attribute,
// with non-nullable attributes forming the required set.
func objectSchemaNode(schema types.CatalogSchema, attrs []types.CatalogAttribute) *types.SchemaNode {
	node := &types.SchemaNode{
		Type:        "object",
		Description: schema.Description,
	}
	if len(attrs) == 0 {
		return node
	}

	node.Properties = make(map[string]*types.SchemaNode, len(attrs))
	for _, attr := range attrs {
		node.Properties[attr.Name] = attributeNode(attr)
		if !attr.Nullable {
			node.Required = append(node.Required, attr.Name)
		}
	}
	return node
}

// attributeNode rebuilds one property node from an attribute row.
func attributeNode(attr types.CatalogAttribute) *types.SchemaNode {
	switch {
	case attr.Type == "array":
		return &types.SchemaNode{
			Type:        "array",
			Description: attr.Description,
			Items:       elementNode(attr.ElementType),
		}

	case attr.Type == "enum":
		node := &types.SchemaNode{
			Description: attr.Description,
			Enum:        types.SplitEnum(attr.Default),
		}
		if attr.ElementType != "" && types.IsPrimitiveType(attr.ElementType) {
			node.Type = attr.ElementType
		}
		return node

	case types.IsPrimitiveType(attr.Type):
		node := &types.SchemaNode{
			Type:        attr.Type,
			Description: attr.Description,
		}
		if attr.Default != "" {
			v := types.ParseValue(attr.Default)
			node.Default = &v
		}
		return node

	default:
		// An unresolved reference name: emit a bare $ref.
		return SchemaRef(attr.Type)
	}
}

// elementNode rebuilds an array's items node from the element type column.
func elementNode(elementType string) *types.SchemaNode {
	if elementType == "" {
		return &types.SchemaNode{Type: "object"}
	}
	if types.IsPrimitiveType(elementType) {
		return &types.SchemaNode{Type: elementType}
	}
	return SchemaRef(elementType)
}

// SchemaRef creates a reference to a schema in components.
func SchemaRef(schemaName string) *types.SchemaNode {
	return &types.SchemaNode{
		Ref: "#/components/schemas/" + schemaName,
	}
}
