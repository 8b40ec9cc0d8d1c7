// SPDX-FileCopyrightText: 2026 specdex
// SPDX-License-Identifier: FSL-1.1-MIT

package importer

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// operationIDPrefixes are fixed prefixes stripped from operation identifiers
// before synthesis, longest first.
var operationIDPrefixes = []string{"_api_v1_", "_api_"}

// SynthesizeName generates a deterministic name for an inline (non-$ref)
// request or response schema: the operation identifier is stripped of fixed
// prefixes, underscores become word boundaries, words are title-cased and
// re-joined, then the status code (responses only) and a "Request" or
// "Response" suffix are appended.
//
// The path and method are accepted for future disambiguation but do not
// enter the formula, so two operations whose identifiers reduce to the same
// words share a synthesized name. Known limitation.
func SynthesizeName(operationID, path, method string, isResponse bool, statusCode string) string {
	name := operationID
	for _, prefix := range operationIDPrefixes {
		name = strings.TrimPrefix(name, prefix)
	}
	name = strings.ReplaceAll(name, "_", " ")

	caser := cases.Title(language.English)
	var sb strings.Builder
	for _, word := range strings.Fields(name) {
		sb.WriteString(caser.String(strings.ToLower(word)))
	}

	if isResponse {
		sb.WriteString(statusCode)
		sb.WriteString("Response")
	} else {
		sb.WriteString("Request")
	}
	return sb.String()
}
