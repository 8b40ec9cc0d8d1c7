// SPDX-FileCopyrightText: 2026 specdex
// SPDX-License-Identifier: FSL-1.1-MIT

// Package catalog provides the persistence boundary for imported API
// documentation: schemas, attributes, calls, parameters, responses, and the
// non-owning schema links between them.
package catalog

import (
	"context"
	"errors"

	"github.com/specdex/specdex/pkg/types"
)

// ErrNotFound is returned when a requested catalog record does not exist.
var ErrNotFound = errors.New("catalog: not found")

// ErrAlreadyExists is returned when a create would violate a uniqueness key.
// Callers distinguish it from real persistence failures with errors.Is.
var ErrAlreadyExists = errors.New("catalog: already exists")

// Store is the persistence collaborator consumed by the importer and
// exporter. Implementations are expected to enforce (service, name)
// uniqueness for schemas and (service, path, method) uniqueness for calls.
type Store interface {
	// FindSchemaByName looks up a schema by exact name within a service.
	// Returns ErrNotFound when absent.
	FindSchemaByName(ctx context.Context, serviceID, name string) (*types.CatalogSchema, error)

	// SchemaByID looks up a schema by its identifier.
	SchemaByID(ctx context.Context, schemaID string) (*types.CatalogSchema, error)

	// CreateSchema persists a new schema and assigns its ID.
	// Returns ErrAlreadyExists when the (service, name) key is taken.
	CreateSchema(ctx context.Context, schema *types.CatalogSchema) error

	// CreateAttribute persists a new attribute owned by a schema.
	CreateAttribute(ctx context.Context, attr *types.CatalogAttribute) error

	// CreateAPICall persists a new API call and assigns its ID.
	// Returns ErrAlreadyExists when the (service, path, method) key is taken.
	CreateAPICall(ctx context.Context, call *types.CatalogAPICall) error

	// CreateParameter persists a new parameter owned by a call.
	CreateParameter(ctx context.Context, param *types.CatalogParameter) error

	// CreateResponse persists a new response owned by a call.
	CreateResponse(ctx context.Context, resp *types.CatalogAPIResponse) error

	// AttachSchemaToCall links a schema to a call as its request schema.
	// Attaching an already-present (schema, kind) pair is a no-op.
	AttachSchemaToCall(ctx context.Context, schemaID, callID, kind string) error

	// AttachSchemaToResponse links a schema to a response.
	// Attaching an already-present (schema, kind) pair is a no-op.
	AttachSchemaToResponse(ctx context.Context, schemaID, responseID, kind string) error

	// SchemasByService returns a service's schemas in creation order.
	SchemasByService(ctx context.Context, serviceID string) ([]types.CatalogSchema, error)

	// AttributesBySchema returns a schema's attributes in creation order.
	AttributesBySchema(ctx context.Context, schemaID string) ([]types.CatalogAttribute, error)

	// CallsByService returns a service's calls in creation order.
	CallsByService(ctx context.Context, serviceID string) ([]types.CatalogAPICall, error)

	// ParametersByCall returns a call's parameters in creation order.
	ParametersByCall(ctx context.Context, callID string) ([]types.CatalogParameter, error)

	// ResponsesByCall returns a call's responses in creation order.
	ResponsesByCall(ctx context.Context, callID string) ([]types.CatalogAPIResponse, error)

	// RequestSchemaLink returns the call's request schema link.
	// Returns ErrNotFound when the call has no linked request schema.
	RequestSchemaLink(ctx context.Context, callID string) (*types.SchemaLink, error)

	// ResponseSchemaLink returns the response's schema link.
	// Returns ErrNotFound when the response has no linked schema.
	ResponseSchemaLink(ctx context.Context, responseID string) (*types.SchemaLink, error)
}
