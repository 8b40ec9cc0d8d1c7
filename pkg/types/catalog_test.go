// SPDX-FileCopyrightText: 2026 specdex
// SPDX-License-Identifier: FSL-1.1-MIT

package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestJoinEnum_SplitEnum(t *testing.T) {
	members := []string{"active", "inactive", "pending"}

	joined := JoinEnum(members)
	assert.Equal(t, "active ||inactive ||pending", joined)
	assert.Equal(t, members, SplitEnum(joined))
}

func TestSplitEnum_Empty(t *testing.T) {
	assert.Nil(t, SplitEnum(""))
}

func TestSplitEnum_SingleMember(t *testing.T) {
	assert.Equal(t, []string{"only"}, SplitEnum("only"))
}

func TestIsPrimitiveType(t *testing.T) {
	for _, name := range []string{"string", "number", "integer", "boolean", "array", "object"} {
		assert.True(t, IsPrimitiveType(name), name)
	}

	assert.False(t, IsPrimitiveType("User"))
	assert.False(t, IsPrimitiveType("enum"))
	assert.False(t, IsPrimitiveType(""))
}
