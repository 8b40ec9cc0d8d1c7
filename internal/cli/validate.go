// SPDX-FileCopyrightText: 2026 specdex
// SPDX-License-Identifier: FSL-1.1-MIT

package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/specdex/specdex/internal/openapi"
	"github.com/specdex/specdex/internal/scanner"
)

// Exit codes for the validate command.
const (
	ExitCodeValid         = 0 // All documents decoded cleanly
	ExitCodeInvalid       = 1 // At least one document failed to decode
	ExitCodeValidateError = 2 // Error before validation could run
)

var validateCI bool

var validateCmd = &cobra.Command{
	Use:   "validate [paths...]",
	Short: "Validate OpenAPI documents without importing",
	Long: `Validate OpenAPI documents without importing them.

Each document is decoded and structurally checked: the format is sniffed
from content, info.title and info.version must be present, and a paths
object must exist. Nothing is written to the catalog.

Exit codes:
  0  All documents are valid
  1  At least one document is invalid
  2  Error during validation

Example:
  specdex validate openapi.yaml       # Validate a single document
  specdex validate specs/             # Validate every spec in a directory
  specdex validate --ci specs/        # CI mode with exit codes`,
	RunE: runValidate,
}

func init() {
	validateCmd.Flags().BoolVar(&validateCI, "ci", false, "CI mode: use exit codes for status")
}

func runValidate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		if validateCI {
			os.Exit(ExitCodeValidateError)
		}
		return err
	}

	files, err := discoverSpecFiles(cfg, args)
	if err != nil {
		if validateCI {
			os.Exit(ExitCodeValidateError)
		}
		return err
	}
	if len(files) == 0 {
		if validateCI {
			os.Exit(ExitCodeValidateError)
		}
		return fmt.Errorf("no spec files found")
	}

	invalid := 0
	for _, file := range files {
		if err := validateSpecFile(file); err != nil {
			printError("%s: %v", file.Path, err)
			invalid++
			continue
		}
		printInfo("%s: OK", file.Path)
	}

	if invalid > 0 {
		if validateCI {
			os.Exit(ExitCodeInvalid)
		}
		return fmt.Errorf("%d of %d document(s) invalid", invalid, len(files))
	}

	printVerbose("All %d document(s) valid", len(files))
	if validateCI {
		os.Exit(ExitCodeValid)
	}
	return nil
}

// validateSpecFile decodes a discovered spec file from its already-read
// content, sniffing the format.
func validateSpecFile(file scanner.SpecFile) error {
	_, err := openapi.Decode(file.Content, "")
	return err
}
