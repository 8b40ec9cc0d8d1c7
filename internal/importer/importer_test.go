// SPDX-FileCopyrightText: 2026 specdex
// SPDX-License-Identifier: FSL-1.1-MIT

package importer

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/specdex/specdex/internal/catalog"
	"github.com/specdex/specdex/pkg/types"
)

// testDocument builds a document with one schema and one endpoint touching
// every import concern: path and query parameters, dropped header and cookie
// parameters, a $ref response link, and an array-items request link.
func testDocument() *types.Document {
	return &types.Document{
		OpenAPI: "3.0.3",
		Info:    types.Info{Title: "Users API", Version: "1.0.0"},
		Paths: map[string]types.PathItem{
			"/users/{id}": {
				Parameters: []types.Parameter{
					{Name: "id", In: "path", Required: true, Schema: &types.SchemaNode{Type: "string"}},
				},
				Get: &types.Operation{
					Summary:     "Get a user",
					OperationID: "_api_v1_get_user",
					Parameters: []types.Parameter{
						{Name: "expand", In: "query", Schema: &types.SchemaNode{Type: "boolean"}},
						{Name: "X-Trace", In: "header", Schema: &types.SchemaNode{Type: "string"}},
						{Name: "session", In: "cookie", Schema: &types.SchemaNode{Type: "string"}},
						{Name: "", In: "query"},
					},
					Responses: map[string]types.Response{
						"200": {
							Description: "The user",
							Content: map[string]types.MediaType{
								"application/json": {Schema: &types.SchemaNode{Ref: "#/components/schemas/User"}},
							},
						},
						"404": {Description: "Not found"},
					},
				},
				Post: &types.Operation{
					Summary:     "Replace users",
					OperationID: "_api_v1_replace_users",
					RequestBody: &types.RequestBody{
						Content: map[string]types.MediaType{
							"application/json": {
								Schema: &types.SchemaNode{
									Type:  "array",
									Items: &types.SchemaNode{Ref: "#/components/schemas/User"},
								},
							},
						},
					},
					Responses: map[string]types.Response{
						"204": {Description: "Replaced"},
					},
				},
			},
		},
		Components: &types.Components{
			Schemas: map[string]*types.SchemaNode{
				"User": {
					Type: "object",
					Properties: map[string]*types.SchemaNode{
						"id":   {Type: "string"},
						"name": {Type: "string"},
					},
					Required: []string{"id"},
				},
			},
		},
	}
}

func TestImporter_Run(t *testing.T) {
	ctx := context.Background()
	store := catalog.NewMemoryStore()
	im := New(store)

	stats, err := im.Run(ctx, "svc", testDocument())
	require.NoError(t, err)

	assert.Equal(t, 1, stats.Schemas)
	assert.Equal(t, 2, stats.Attributes)
	assert.Equal(t, 2, stats.Calls)
	// Path-level id plus query-level expand on GET; header and unnamed
	// parameters are dropped, and the path-level id counts again on POST.
	assert.Equal(t, 3, stats.Parameters)
	assert.Equal(t, 3, stats.Responses)
	// 200 response $ref plus request array-items ref.
	assert.Equal(t, 2, stats.Links)
	// Header, cookie, and unnamed parameters are dropped.
	assert.Equal(t, 3, stats.Skipped)

	calls, err := store.CallsByService(ctx, "svc")
	require.NoError(t, err)
	require.Len(t, calls, 2)
	assert.Equal(t, "GET", calls[0].Method)
	assert.Equal(t, "/users/{id}", calls[0].Path)
	assert.Equal(t, "_api_v1_get_user", calls[0].OperationID)

	params, err := store.ParametersByCall(ctx, calls[0].ID)
	require.NoError(t, err)
	require.Len(t, params, 2)
	assert.Equal(t, "id", params[0].Name)
	assert.Equal(t, "path", params[0].In)
	assert.Equal(t, "string", params[0].Type)
	assert.True(t, params[0].Required)
	assert.Equal(t, "expand", params[1].Name)
	assert.Equal(t, "boolean", params[1].Type)
}

func TestImporter_Run_ResponseLink(t *testing.T) {
	ctx := context.Background()
	store := catalog.NewMemoryStore()
	im := New(store)

	_, err := im.Run(ctx, "svc", testDocument())
	require.NoError(t, err)

	calls, err := store.CallsByService(ctx, "svc")
	require.NoError(t, err)

	resps, err := store.ResponsesByCall(ctx, calls[0].ID)
	require.NoError(t, err)
	require.Len(t, resps, 2)
	assert.Equal(t, "200", resps[0].StatusCode)
	assert.Equal(t, "404", resps[1].StatusCode)

	link, err := store.ResponseSchemaLink(ctx, resps[0].ID)
	require.NoError(t, err)
	assert.Equal(t, types.LinkKindDirect, link.Kind)

	schema, err := store.SchemaByID(ctx, link.SchemaID)
	require.NoError(t, err)
	assert.Equal(t, "User", schema.Name)

	// The 404 response declared no body.
	_, err = store.ResponseSchemaLink(ctx, resps[1].ID)
	assert.ErrorIs(t, err, catalog.ErrNotFound)
}

func TestImporter_Run_ItemsLink(t *testing.T) {
	ctx := context.Background()
	store := catalog.NewMemoryStore()
	im := New(store)

	_, err := im.Run(ctx, "svc", testDocument())
	require.NoError(t, err)

	calls, err := store.CallsByService(ctx, "svc")
	require.NoError(t, err)
	require.Len(t, calls, 2)
	post := calls[1]

	link, err := store.RequestSchemaLink(ctx, post.ID)
	require.NoError(t, err)
	assert.Equal(t, types.LinkKindItems, link.Kind)

	schema, err := store.SchemaByID(ctx, link.SchemaID)
	require.NoError(t, err)
	assert.Equal(t, "User", schema.Name)
}

func TestImporter_Run_UnresolvableLinkSkipped(t *testing.T) {
	ctx := context.Background()
	store := catalog.NewMemoryStore()
	im := New(store)

	doc := &types.Document{
		Info: types.Info{Title: "T", Version: "1"},
		Paths: map[string]types.PathItem{
			"/things": {
				Post: &types.Operation{
					OperationID: "create_thing",
					RequestBody: &types.RequestBody{
						Content: map[string]types.MediaType{
							"application/json": {
								// Inline body; the synthesized name
								// "CreateThingRequest" matches no schema.
								Schema: &types.SchemaNode{Type: "object"},
							},
						},
					},
					Responses: map[string]types.Response{
						"201": {Description: "Created"},
					},
				},
			},
		},
	}

	stats, err := im.Run(ctx, "svc", doc)
	require.NoError(t, err)

	assert.Equal(t, 0, stats.Links)
	assert.Equal(t, 1, stats.Skipped)
}

func TestImporter_Run_SynthesizedLinkResolves(t *testing.T) {
	ctx := context.Background()
	store := catalog.NewMemoryStore()
	im := New(store)

	doc := &types.Document{
		Info: types.Info{Title: "T", Version: "1"},
		Paths: map[string]types.PathItem{
			"/things": {
				Post: &types.Operation{
					OperationID: "_api_v1_create_thing",
					RequestBody: &types.RequestBody{
						Content: map[string]types.MediaType{
							"application/json": {Schema: &types.SchemaNode{Type: "object"}},
						},
					},
					Responses: map[string]types.Response{
						"201": {Description: "Created"},
					},
				},
			},
		},
		Components: &types.Components{
			Schemas: map[string]*types.SchemaNode{
				"CreateThingRequest": {
					Type:       "object",
					Properties: map[string]*types.SchemaNode{"name": {Type: "string"}},
				},
			},
		},
	}

	stats, err := im.Run(ctx, "svc", doc)
	require.NoError(t, err)
	assert.Equal(t, 1, stats.Links)
	assert.Equal(t, 0, stats.Skipped)
}

func TestImporter_Run_Reimport(t *testing.T) {
	ctx := context.Background()
	store := catalog.NewMemoryStore()
	im := New(store)

	_, err := im.Run(ctx, "svc", testDocument())
	require.NoError(t, err)

	// Importing the same document again only adds skips, never duplicates.
	stats, err := im.Run(ctx, "svc", testDocument())
	require.NoError(t, err)

	assert.Equal(t, 0, stats.Schemas)
	assert.Equal(t, 0, stats.Calls)
	assert.Equal(t, 2, stats.Skipped)

	schemas, err := store.SchemasByService(ctx, "svc")
	require.NoError(t, err)
	assert.Len(t, schemas, 1)

	calls, err := store.CallsByService(ctx, "svc")
	require.NoError(t, err)
	assert.Len(t, calls, 2)
}

func TestImporter_Run_UnsupportedVerbsSkipped(t *testing.T) {
	ctx := context.Background()
	store := catalog.NewMemoryStore()
	im := New(store)

	doc := &types.Document{
		Info: types.Info{Title: "T", Version: "1"},
		Paths: map[string]types.PathItem{
			"/health": {
				Get: &types.Operation{
					Responses: map[string]types.Response{"200": {Description: "OK"}},
				},
				Head: &types.Operation{
					Responses: map[string]types.Response{"200": {Description: "OK"}},
				},
				Options: &types.Operation{
					Responses: map[string]types.Response{"204": {Description: "No content"}},
				},
			},
		},
	}

	stats, err := im.Run(ctx, "svc", doc)
	require.NoError(t, err)

	// HEAD and OPTIONS are dropped but accounted for.
	assert.Equal(t, 1, stats.Calls)
	assert.Equal(t, 2, stats.Skipped)

	calls, err := store.CallsByService(ctx, "svc")
	require.NoError(t, err)
	require.Len(t, calls, 1)
	assert.Equal(t, "GET", calls[0].Method)
}

// brokenCallStore fails every call creation with a non-duplicate error.
type brokenCallStore struct {
	catalog.Store
	err error
}

func (s *brokenCallStore) CreateAPICall(context.Context, *types.CatalogAPICall) error {
	return s.err
}

func TestImporter_Run_CallStoreFailurePropagates(t *testing.T) {
	storeErr := errors.New("connection reset")
	store := &brokenCallStore{Store: catalog.NewMemoryStore(), err: storeErr}
	im := New(store)

	stats, err := im.Run(context.Background(), "svc", testDocument())
	require.Error(t, err)
	assert.ErrorIs(t, err, storeErr)
	assert.Nil(t, stats)
}

func TestImporter_Run_NilDocument(t *testing.T) {
	im := New(catalog.NewMemoryStore())

	_, err := im.Run(context.Background(), "svc", nil)
	assert.Error(t, err)

	_, err = im.Run(context.Background(), "svc", &types.Document{Info: types.Info{Title: "T", Version: "1"}})
	assert.Error(t, err)
}

func TestImporter_Run_CustomContentType(t *testing.T) {
	ctx := context.Background()
	store := catalog.NewMemoryStore()
	im := New(store, WithContentType("application/xml"))

	doc := testDocument()
	stats, err := im.Run(ctx, "svc", doc)
	require.NoError(t, err)

	// JSON bodies are invisible when another content type is inspected.
	assert.Equal(t, 0, stats.Links)
}

func TestStats_String(t *testing.T) {
	s := &Stats{Schemas: 1, Attributes: 2, Calls: 3, Parameters: 4, Responses: 5, Links: 6, Skipped: 7}
	assert.Equal(t, "1 schemas, 2 attributes, 3 calls, 4 parameters, 5 responses, 6 links (7 skipped)", s.String())
}
