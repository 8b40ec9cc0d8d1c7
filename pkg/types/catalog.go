// SPDX-FileCopyrightText: 2026 specdex
// SPDX-License-Identifier: FSL-1.1-MIT

package types

import "strings"

// Schema link kinds recorded on the schema/call and schema/response pivots.
const (
	// LinkKindDirect marks a schema reached through a direct $ref.
	LinkKindDirect = ""

	// LinkKindItems marks a schema reached through an array's items.$ref.
	LinkKindItems = "Items"
)

// enumSeparator joins enum members into the string-only default column.
// It is a sentinel inherited from the source system, not a real default.
const enumSeparator = " ||"

// JoinEnum encodes enum members into the catalog's string-only default
// column.
func JoinEnum(members []string) string {
	return strings.Join(members, enumSeparator)
}

// SplitEnum decodes enum members from the default column. An empty column
// yields no members.
func SplitEnum(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, enumSeparator)
}

// primitiveTypes is the closed set of scalar/structural OpenAPI type names.
var primitiveTypes = map[string]bool{
	"string":  true,
	"number":  true,
	"integer": true,
	"boolean": true,
	"array":   true,
	"object":  true,
}

// IsPrimitiveType reports whether t is a built-in OpenAPI type name rather
// than a schema reference name.
func IsPrimitiveType(t string) bool {
	return primitiveTypes[t]
}

// Service is the catalog record an imported document belongs to.
type Service struct {
	// ID is the catalog identifier of the service
	ID string `json:"id" yaml:"id"`

	// Name is the unique service name
	Name string `json:"name" yaml:"name"`

	// Title is the human-readable service title
	Title string `json:"title,omitempty" yaml:"title,omitempty"`

	// Description is a description of the service
	Description string `json:"description,omitempty" yaml:"description,omitempty"`

	// Version is the API version of the service
	Version string `json:"version,omitempty" yaml:"version,omitempty"`
}

// CatalogSchema is a flattened named schema. Identity is the (service, name)
// pair; attributes are owned exclusively and cascade with the schema.
type CatalogSchema struct {
	// ID is the catalog identifier of the schema
	ID string `json:"id" yaml:"id"`

	// ServiceID is the owning service
	ServiceID string `json:"serviceId" yaml:"serviceId"`

	// Name is the schema name, unique per service
	Name string `json:"name" yaml:"name"`

	// Description is a description of the schema
	Description string `json:"description,omitempty" yaml:"description,omitempty"`

	// Type is the root schema type: object, array, enum, a primitive name,
	// or "reference" for $ref-rooted schemas
	Type string `json:"type,omitempty" yaml:"type,omitempty"`

	// IsReference marks a $ref-rooted schema
	IsReference bool `json:"isReference,omitempty" yaml:"isReference,omitempty"`

	// ReferencedModel is the referenced schema name when IsReference is set
	ReferencedModel string `json:"referencedModel,omitempty" yaml:"referencedModel,omitempty"`
}

// CatalogAttribute is one flattened property of a CatalogSchema.
type CatalogAttribute struct {
	// ID is the catalog identifier of the attribute
	ID string `json:"id" yaml:"id"`

	// SchemaID is the owning schema
	SchemaID string `json:"schemaId" yaml:"schemaId"`

	// Name is the attribute name
	Name string `json:"name" yaml:"name"`

	// Type is the declared type: a primitive name, "object", "array",
	// "enum", or an unresolved reference name
	Type string `json:"type" yaml:"type"`

	// ElementType carries the item ref/type for arrays and the declared
	// primitive for enums
	ElementType string `json:"elementType,omitempty" yaml:"elementType,omitempty"`

	// Nullable is true when the property is not in the schema's required set
	Nullable bool `json:"nullable,omitempty" yaml:"nullable,omitempty"`

	// Description is a description of the attribute
	Description string `json:"description,omitempty" yaml:"description,omitempty"`

	// Default is the string-encoded default value; for enums without an
	// explicit default it carries the joined enum members
	Default string `json:"default,omitempty" yaml:"default,omitempty"`
}

// CatalogAPICall is one imported (path, method) endpoint of a service. It
// owns its parameters and responses.
type CatalogAPICall struct {
	// ID is the catalog identifier of the call
	ID string `json:"id" yaml:"id"`

	// ServiceID is the owning service
	ServiceID string `json:"serviceId" yaml:"serviceId"`

	// Path is the URL path pattern (e.g., "/users/{id}")
	Path string `json:"path" yaml:"path"`

	// Method is the HTTP method
	Method string `json:"method" yaml:"method"`

	// Summary is a brief summary of the call
	Summary string `json:"summary,omitempty" yaml:"summary,omitempty"`

	// Description is a description of the call
	Description string `json:"description,omitempty" yaml:"description,omitempty"`

	// OperationID is the source document's operation identifier
	OperationID string `json:"operationId,omitempty" yaml:"operationId,omitempty"`
}

// CatalogParameter is one imported query or path parameter of a call.
type CatalogParameter struct {
	// ID is the catalog identifier of the parameter
	ID string `json:"id" yaml:"id"`

	// CallID is the owning call
	CallID string `json:"callId" yaml:"callId"`

	// Name is the parameter name
	Name string `json:"name" yaml:"name"`

	// In is the parameter location (query or path on import)
	In string `json:"in" yaml:"in"`

	// Type is the declared parameter type
	Type string `json:"type,omitempty" yaml:"type,omitempty"`

	// Required indicates if the parameter is required
	Required bool `json:"required,omitempty" yaml:"required,omitempty"`

	// Description is a description of the parameter
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}

// CatalogAPIResponse is one imported response of a call, identified by
// status code and content type. It may link to at most one schema.
type CatalogAPIResponse struct {
	// ID is the catalog identifier of the response
	ID string `json:"id" yaml:"id"`

	// CallID is the owning call
	CallID string `json:"callId" yaml:"callId"`

	// StatusCode is the declared HTTP status code
	StatusCode string `json:"statusCode" yaml:"statusCode"`

	// ContentType is the declared content type
	ContentType string `json:"contentType,omitempty" yaml:"contentType,omitempty"`

	// Description is a description of the response
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}

// SchemaLink is a non-owning many-to-many pivot joining a schema to a call
// or response, tagged with how the schema was reached.
type SchemaLink struct {
	// SchemaID is the linked schema
	SchemaID string `json:"schemaId" yaml:"schemaId"`

	// Kind is the pivot discriminator (LinkKindDirect or LinkKindItems)
	Kind string `json:"kind,omitempty" yaml:"kind,omitempty"`
}
