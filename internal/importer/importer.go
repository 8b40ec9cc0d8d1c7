// SPDX-FileCopyrightText: 2026 specdex
// SPDX-License-Identifier: FSL-1.1-MIT

// Package importer projects decoded OpenAPI documents into the catalog's
// relational shape: schemas with attributes, API calls with parameters and
// responses, and name-based schema links.
package importer

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/specdex/specdex/internal/catalog"
	"github.com/specdex/specdex/internal/util"
	"github.com/specdex/specdex/pkg/types"
)

// DefaultContentType is the media type inspected for request and response
// schema links.
const DefaultContentType = "application/json"

// importMethods are the HTTP methods imported from a document, in the order
// they are processed. HEAD and OPTIONS are export-only.
var importMethods = []string{"GET", "POST", "PUT", "DELETE", "PATCH"}

// Stats accumulates import statistics. Per-item problems never fail the
// import; they show up in Skipped.
type Stats struct {
	// Schemas is the number of catalog schemas created
	Schemas int

	// Attributes is the number of attributes created
	Attributes int

	// Calls is the number of API calls created
	Calls int

	// Parameters is the number of parameters created
	Parameters int

	// Responses is the number of responses created
	Responses int

	// Links is the number of schema links attached
	Links int

	// Skipped counts dropped items: header/cookie parameters, unsupported
	// verbs, malformed entries, and unresolvable schema links
	Skipped int
}

// String formats the statistics for CLI output.
func (s *Stats) String() string {
	return fmt.Sprintf("%d schemas, %d attributes, %d calls, %d parameters, %d responses, %d links (%d skipped)",
		s.Schemas, s.Attributes, s.Calls, s.Parameters, s.Responses, s.Links, s.Skipped)
}

// Option configures an Importer.
type Option func(*Importer)

// WithContentType overrides the media type inspected for schema links.
func WithContentType(contentType string) Option {
	return func(im *Importer) {
		im.contentType = contentType
	}
}

// Importer writes a decoded document into a catalog store. The pipeline is
// linear over one in-memory document; all persistence writes issue from this
// single coordinating path so ordering stays predictable.
type Importer struct {
	store       catalog.Store
	contentType string
}

// New creates an Importer over the given store.
func New(store catalog.Store, opts ...Option) *Importer {
	im := &Importer{
		store:       store,
		contentType: DefaultContentType,
	}
	for _, opt := range opts {
		opt(im)
	}
	return im
}

// Run imports a decoded document into the catalog under the given service.
// Schemas are imported first so that operations can link to them by name.
// Structural problems abort the import; individual malformed parameters or
// responses are skipped and counted.
func (im *Importer) Run(ctx context.Context, serviceID string, doc *types.Document) (*Stats, error) {
	if doc == nil || doc.Paths == nil {
		return nil, errors.New("importer: document has no paths")
	}

	stats := &Stats{}

	if err := im.importSchemas(ctx, serviceID, doc, stats); err != nil {
		return nil, err
	}

	paths := make([]string, 0, len(doc.Paths))
	for path := range doc.Paths {
		paths = append(paths, path)
	}
	sort.Strings(paths)

	for _, path := range paths {
		item := doc.Paths[path]
		for _, method := range importMethods {
			op := item.Operation(method)
			if op == nil {
				continue
			}
			if err := im.importOperation(ctx, serviceID, path, method, item, op, stats); err != nil {
				return nil, err
			}
		}

		// HEAD and OPTIONS operations are not imported; count them so the
		// drop shows up in the stats.
		for _, op := range []*types.Operation{item.Head, item.Options} {
			if op != nil {
				stats.Skipped++
			}
		}
	}

	return stats, nil
}

// importSchemas extracts and projects the components-level schemas. A schema
// is created once per unique name; names already present in the catalog are
// left untouched so re-imports only add.
func (im *Importer) importSchemas(ctx context.Context, serviceID string, doc *types.Document, stats *Stats) error {
	var roots map[string]*types.SchemaNode
	if doc.Components != nil {
		roots = doc.Components.Schemas
	}

	for _, named := range ExtractSchemas(roots) {
		_, err := im.store.FindSchemaByName(ctx, serviceID, named.Name)
		if err == nil {
			continue
		}
		if !errors.Is(err, catalog.ErrNotFound) {
			return fmt.Errorf("failed to look up schema %q: %w", named.Name, err)
		}

		schema, attrs := ProjectSchema(named.Name, named.Node)
		schema.ServiceID = serviceID
		if err := im.store.CreateSchema(ctx, &schema); err != nil {
			return fmt.Errorf("failed to create schema %q: %w", named.Name, err)
		}
		stats.Schemas++

		for i := range attrs {
			attrs[i].SchemaID = schema.ID
			if err := im.store.CreateAttribute(ctx, &attrs[i]); err != nil {
				return fmt.Errorf("failed to create attribute %q: %w", attrs[i].Name, err)
			}
			stats.Attributes++
		}
	}
	return nil
}

// importOperation creates one API call with its parameters, responses, and
// schema links.
func (im *Importer) importOperation(ctx context.Context, serviceID, path, method string, item types.PathItem, op *types.Operation, stats *Stats) error {
	call := &types.CatalogAPICall{
		ServiceID:   serviceID,
		Path:        path,
		Method:      method,
		Summary:     op.Summary,
		Description: op.Description,
		OperationID: op.OperationID,
	}
	if err := im.store.CreateAPICall(ctx, call); err != nil {
		if errors.Is(err, catalog.ErrAlreadyExists) {
			// Duplicate (service, path, method); leave the existing call as is.
			stats.Skipped++
			return nil
		}
		return fmt.Errorf("failed to create call %s %s: %w", method, path, err)
	}
	stats.Calls++

	// Path-level parameters apply to every operation on the path.
	params := make([]types.Parameter, 0, len(item.Parameters)+len(op.Parameters))
	params = append(params, item.Parameters...)
	params = append(params, op.Parameters...)
	im.importParameters(ctx, call.ID, params, stats)

	if op.RequestBody != nil {
		if media, ok := op.RequestBody.Content[im.contentType]; ok && media.Schema != nil {
			name, kind := im.resolveLinkName(media.Schema, op.OperationID, path, method, false, "")
			im.linkRequestSchema(ctx, serviceID, call.ID, name, kind, stats)
		}
	}

	return im.importResponses(ctx, serviceID, path, method, call.ID, op, stats)
}

// importParameters persists query- and path-located parameters. Header and
// cookie parameters are dropped on import; the exporter still handles all
// four locations.
func (im *Importer) importParameters(ctx context.Context, callID string, params []types.Parameter, stats *Stats) {
	for _, p := range params {
		if p.Name == "" {
			stats.Skipped++
			continue
		}
		if p.In != "query" && p.In != "path" {
			stats.Skipped++
			continue
		}

		param := &types.CatalogParameter{
			CallID:      callID,
			Name:        p.Name,
			In:          p.In,
			Type:        parameterType(p.Schema),
			Required:    p.Required,
			Description: p.Description,
		}
		if err := im.store.CreateParameter(ctx, param); err != nil {
			stats.Skipped++
			continue
		}
		stats.Parameters++
	}
}

// importResponses persists the operation's responses and links each to a
// schema when one can be resolved by name.
func (im *Importer) importResponses(ctx context.Context, serviceID, path, method, callID string, op *types.Operation, stats *Stats) error {
	codes := make([]string, 0, len(op.Responses))
	for code := range op.Responses {
		codes = append(codes, code)
	}
	sort.Strings(codes)

	for _, code := range codes {
		decl := op.Responses[code]
		resp := &types.CatalogAPIResponse{
			CallID:      callID,
			StatusCode:  code,
			ContentType: im.contentType,
			Description: decl.Description,
		}
		if err := im.store.CreateResponse(ctx, resp); err != nil {
			stats.Skipped++
			continue
		}
		stats.Responses++

		media, ok := decl.Content[im.contentType]
		if !ok || media.Schema == nil {
			continue
		}
		name, kind := im.resolveLinkName(media.Schema, op.OperationID, path, method, true, code)
		im.linkResponseSchema(ctx, serviceID, resp.ID, name, kind, stats)
	}
	return nil
}

// resolveLinkName resolves the catalog schema name a request/response body
// links to: a direct $ref by its last segment, an array of refs by the item
// ref's last segment (tagged Items), anything else by a synthesized name.
func (im *Importer) resolveLinkName(node *types.SchemaNode, operationID, path, method string, isResponse bool, statusCode string) (string, string) {
	if node.Ref != "" {
		return util.RefName(node.Ref), types.LinkKindDirect
	}
	if node.Type == "array" && node.Items != nil && node.Items.Ref != "" {
		return util.RefName(node.Items.Ref), types.LinkKindItems
	}
	return SynthesizeName(operationID, path, method, isResponse, statusCode), types.LinkKindDirect
}

// linkRequestSchema attaches the named schema to a call. Lookup is by exact
// name only; a missing schema leaves the call unlinked and counts as skipped.
func (im *Importer) linkRequestSchema(ctx context.Context, serviceID, callID, name, kind string, stats *Stats) {
	schema, err := im.store.FindSchemaByName(ctx, serviceID, name)
	if err != nil {
		stats.Skipped++
		return
	}
	if err := im.store.AttachSchemaToCall(ctx, schema.ID, callID, kind); err != nil {
		stats.Skipped++
		return
	}
	stats.Links++
}

// linkResponseSchema attaches the named schema to a response, with the same
// exact-match, best-effort semantics as request links.
func (im *Importer) linkResponseSchema(ctx context.Context, serviceID, responseID, name, kind string, stats *Stats) {
	schema, err := im.store.FindSchemaByName(ctx, serviceID, name)
	if err != nil {
		stats.Skipped++
		return
	}
	if err := im.store.AttachSchemaToResponse(ctx, schema.ID, responseID, kind); err != nil {
		stats.Skipped++
		return
	}
	stats.Links++
}

// parameterType resolves a parameter's declared type, defaulting to string.
func parameterType(node *types.SchemaNode) string {
	if node == nil {
		return "string"
	}
	return resolveType(node)
}
