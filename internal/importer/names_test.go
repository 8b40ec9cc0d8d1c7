// SPDX-FileCopyrightText: 2026 specdex
// SPDX-License-Identifier: FSL-1.1-MIT

package importer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSynthesizeName_Requests(t *testing.T) {
	tests := []struct {
		name        string
		operationID string
		want        string
	}{
		{"v1 prefix stripped", "_api_v1_users_create", "UsersCreateRequest"},
		{"api prefix stripped", "_api_orders_submit", "OrdersSubmitRequest"},
		{"no prefix", "list_users", "ListUsersRequest"},
		{"single word", "health", "HealthRequest"},
		{"uppercase normalized", "LIST_USERS", "ListUsersRequest"},
		{"empty operation id", "", "Request"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SynthesizeName(tt.operationID, "/unused", "POST", false, "")
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSynthesizeName_Responses(t *testing.T) {
	tests := []struct {
		name        string
		operationID string
		statusCode  string
		want        string
	}{
		{"200 response", "_api_v1_get_user", "200", "GetUser200Response"},
		{"404 response", "_api_v1_get_user", "404", "GetUser404Response"},
		{"default response", "list_items", "default", "ListItemsdefaultResponse"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SynthesizeName(tt.operationID, "/unused", "GET", true, tt.statusCode)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSynthesizeName_Deterministic(t *testing.T) {
	a := SynthesizeName("_api_v1_users_list", "/users", "GET", true, "200")
	b := SynthesizeName("_api_v1_users_list", "/users", "GET", true, "200")
	assert.Equal(t, a, b)
}

func TestSynthesizeName_PathAndMethodIgnored(t *testing.T) {
	// Operations whose identifiers reduce to the same words collide; the
	// path and method do not disambiguate.
	a := SynthesizeName("users_list", "/users", "GET", false, "")
	b := SynthesizeName("users_list", "/v2/users", "POST", false, "")
	assert.Equal(t, a, b)
}
