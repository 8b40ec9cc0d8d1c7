// SPDX-FileCopyrightText: 2026 specdex
// SPDX-License-Identifier: FSL-1.1-MIT

package catalog

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/specdex/specdex/pkg/types"
)

// MemoryStore is an in-memory Store. It backs the CLI and tests; a database
// implementation can replace it behind the same interface.
type MemoryStore struct {
	mu sync.RWMutex

	schemas     map[string]*types.CatalogSchema
	schemaNames map[string]string // (serviceID, name) -> schema ID
	schemaOrder []string

	attributes map[string][]types.CatalogAttribute

	calls     map[string]*types.CatalogAPICall
	callKeys  map[string]string // (serviceID, path, method) -> call ID
	callOrder []string

	parameters map[string][]types.CatalogParameter
	responses  map[string][]types.CatalogAPIResponse

	callLinks     map[string][]types.SchemaLink
	responseLinks map[string][]types.SchemaLink
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		schemas:       make(map[string]*types.CatalogSchema),
		schemaNames:   make(map[string]string),
		attributes:    make(map[string][]types.CatalogAttribute),
		calls:         make(map[string]*types.CatalogAPICall),
		callKeys:      make(map[string]string),
		parameters:    make(map[string][]types.CatalogParameter),
		responses:     make(map[string][]types.CatalogAPIResponse),
		callLinks:     make(map[string][]types.SchemaLink),
		responseLinks: make(map[string][]types.SchemaLink),
	}
}

// nameKey builds the (service, name) uniqueness key.
func nameKey(serviceID, name string) string {
	return serviceID + "\x00" + name
}

// callKey builds the (service, path, method) uniqueness key.
func callKey(serviceID, path, method string) string {
	return serviceID + "\x00" + path + "\x00" + method
}

// FindSchemaByName looks up a schema by exact name within a service.
func (s *MemoryStore) FindSchemaByName(_ context.Context, serviceID, name string) (*types.CatalogSchema, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.schemaNames[nameKey(serviceID, name)]
	if !ok {
		return nil, ErrNotFound
	}
	schema := *s.schemas[id]
	return &schema, nil
}

// SchemaByID looks up a schema by its identifier.
func (s *MemoryStore) SchemaByID(_ context.Context, schemaID string) (*types.CatalogSchema, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	schema, ok := s.schemas[schemaID]
	if !ok {
		return nil, ErrNotFound
	}
	out := *schema
	return &out, nil
}

// CreateSchema persists a new schema, assigning its ID.
func (s *MemoryStore) CreateSchema(_ context.Context, schema *types.CatalogSchema) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := nameKey(schema.ServiceID, schema.Name)
	if _, exists := s.schemaNames[key]; exists {
		return fmt.Errorf("schema %q in service %q: %w", schema.Name, schema.ServiceID, ErrAlreadyExists)
	}

	schema.ID = uuid.NewString()
	stored := *schema
	s.schemas[schema.ID] = &stored
	s.schemaNames[key] = schema.ID
	s.schemaOrder = append(s.schemaOrder, schema.ID)
	return nil
}

// CreateAttribute persists a new attribute owned by a schema.
func (s *MemoryStore) CreateAttribute(_ context.Context, attr *types.CatalogAttribute) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.schemas[attr.SchemaID]; !ok {
		return fmt.Errorf("attribute %q: %w", attr.Name, ErrNotFound)
	}

	attr.ID = uuid.NewString()
	s.attributes[attr.SchemaID] = append(s.attributes[attr.SchemaID], *attr)
	return nil
}

// CreateAPICall persists a new API call, assigning its ID.
func (s *MemoryStore) CreateAPICall(_ context.Context, call *types.CatalogAPICall) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := callKey(call.ServiceID, call.Path, call.Method)
	if _, exists := s.callKeys[key]; exists {
		return fmt.Errorf("call %s %s in service %q: %w", call.Method, call.Path, call.ServiceID, ErrAlreadyExists)
	}

	call.ID = uuid.NewString()
	stored := *call
	s.calls[call.ID] = &stored
	s.callKeys[key] = call.ID
	s.callOrder = append(s.callOrder, call.ID)
	return nil
}

// CreateParameter persists a new parameter owned by a call.
func (s *MemoryStore) CreateParameter(_ context.Context, param *types.CatalogParameter) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.calls[param.CallID]; !ok {
		return fmt.Errorf("parameter %q: %w", param.Name, ErrNotFound)
	}

	param.ID = uuid.NewString()
	s.parameters[param.CallID] = append(s.parameters[param.CallID], *param)
	return nil
}

// CreateResponse persists a new response owned by a call.
func (s *MemoryStore) CreateResponse(_ context.Context, resp *types.CatalogAPIResponse) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.calls[resp.CallID]; !ok {
		return fmt.Errorf("response %q: %w", resp.StatusCode, ErrNotFound)
	}

	resp.ID = uuid.NewString()
	s.responses[resp.CallID] = append(s.responses[resp.CallID], *resp)
	return nil
}

// AttachSchemaToCall links a schema to a call. Re-attaching an existing
// (schema, kind) pair is a no-op, so re-imports stay upsert-safe.
func (s *MemoryStore) AttachSchemaToCall(_ context.Context, schemaID, callID, kind string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.schemas[schemaID]; !ok {
		return fmt.Errorf("attach schema to call: %w", ErrNotFound)
	}
	if _, ok := s.calls[callID]; !ok {
		return fmt.Errorf("attach schema to call: %w", ErrNotFound)
	}

	for _, link := range s.callLinks[callID] {
		if link.SchemaID == schemaID && link.Kind == kind {
			return nil
		}
	}
	s.callLinks[callID] = append(s.callLinks[callID], types.SchemaLink{SchemaID: schemaID, Kind: kind})
	return nil
}

// AttachSchemaToResponse links a schema to a response. Re-attaching an
// existing (schema, kind) pair is a no-op.
func (s *MemoryStore) AttachSchemaToResponse(_ context.Context, schemaID, responseID, kind string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.schemas[schemaID]; !ok {
		return fmt.Errorf("attach schema to response: %w", ErrNotFound)
	}

	found := false
	for _, resps := range s.responses {
		for _, resp := range resps {
			if resp.ID == responseID {
				found = true
				break
			}
		}
	}
	if !found {
		return fmt.Errorf("attach schema to response: %w", ErrNotFound)
	}

	for _, link := range s.responseLinks[responseID] {
		if link.SchemaID == schemaID && link.Kind == kind {
			return nil
		}
	}
	s.responseLinks[responseID] = append(s.responseLinks[responseID], types.SchemaLink{SchemaID: schemaID, Kind: kind})
	return nil
}

// SchemasByService returns a service's schemas in creation order.
func (s *MemoryStore) SchemasByService(_ context.Context, serviceID string) ([]types.CatalogSchema, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []types.CatalogSchema
	for _, id := range s.schemaOrder {
		if schema := s.schemas[id]; schema.ServiceID == serviceID {
			out = append(out, *schema)
		}
	}
	return out, nil
}

// AttributesBySchema returns a schema's attributes in creation order.
func (s *MemoryStore) AttributesBySchema(_ context.Context, schemaID string) ([]types.CatalogAttribute, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	attrs := s.attributes[schemaID]
	out := make([]types.CatalogAttribute, len(attrs))
	copy(out, attrs)
	return out, nil
}

// CallsByService returns a service's calls in creation order.
func (s *MemoryStore) CallsByService(_ context.Context, serviceID string) ([]types.CatalogAPICall, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []types.CatalogAPICall
	for _, id := range s.callOrder {
		if call := s.calls[id]; call.ServiceID == serviceID {
			out = append(out, *call)
		}
	}
	return out, nil
}

// ParametersByCall returns a call's parameters in creation order.
func (s *MemoryStore) ParametersByCall(_ context.Context, callID string) ([]types.CatalogParameter, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	params := s.parameters[callID]
	out := make([]types.CatalogParameter, len(params))
	copy(out, params)
	return out, nil
}

// ResponsesByCall returns a call's responses in creation order.
func (s *MemoryStore) ResponsesByCall(_ context.Context, callID string) ([]types.CatalogAPIResponse, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	resps := s.responses[callID]
	out := make([]types.CatalogAPIResponse, len(resps))
	copy(out, resps)
	return out, nil
}

// RequestSchemaLink returns the first schema linked to a call. The pivot is
// many-to-many in the model but used as at-most-one in practice.
func (s *MemoryStore) RequestSchemaLink(_ context.Context, callID string) (*types.SchemaLink, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	links := s.callLinks[callID]
	if len(links) == 0 {
		return nil, ErrNotFound
	}
	link := links[0]
	return &link, nil
}

// ResponseSchemaLink returns the schema linked to a response, if any.
func (s *MemoryStore) ResponseSchemaLink(_ context.Context, responseID string) (*types.SchemaLink, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	links := s.responseLinks[responseID]
	if len(links) == 0 {
		return nil, ErrNotFound
	}
	link := links[0]
	return &link, nil
}
