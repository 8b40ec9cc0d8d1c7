// SPDX-FileCopyrightText: 2026 specdex
// SPDX-License-Identifier: FSL-1.1-MIT

package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/specdex/specdex/internal/openapi"
)

var diffFailOnBreaking bool

var diffCmd = &cobra.Command{
	Use:   "diff <old> <new>",
	Short: "Compare two OpenAPI documents",
	Long: `Compare two OpenAPI documents and show the differences.

Both documents are decoded and compared path by path and schema by schema.
Removed paths and removed schemas are flagged as breaking changes.

Example:
  specdex diff old.yaml new.yaml            # Compare two documents
  specdex diff --fail-on-breaking v1 v2     # Nonzero exit on breaking changes`,
	Args: cobra.ExactArgs(2),
	RunE: runDiff,
}

func init() {
	diffCmd.Flags().BoolVar(&diffFailOnBreaking, "fail-on-breaking", false, "exit with an error when breaking changes are detected")
}

func runDiff(cmd *cobra.Command, args []string) error {
	oldDoc, err := openapi.DecodeFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to decode %s: %w", args[0], err)
	}
	newDoc, err := openapi.DecodeFile(args[1])
	if err != nil {
		return fmt.Errorf("failed to decode %s: %w", args[1], err)
	}

	result, err := openapi.NewDiffer().Diff(oldDoc, newDoc)
	if err != nil {
		return fmt.Errorf("failed to compare documents: %w", err)
	}

	fmt.Fprint(os.Stdout, openapi.FormatDiff(result))

	if diffFailOnBreaking && result.HasBreakingChanges {
		return fmt.Errorf("breaking changes detected")
	}
	return nil
}
