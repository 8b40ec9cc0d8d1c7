// SPDX-FileCopyrightText: 2026 specdex
// SPDX-License-Identifier: FSL-1.1-MIT

package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/specdex/specdex/internal/catalog"
	"github.com/specdex/specdex/internal/config"
	"github.com/specdex/specdex/internal/importer"
	"github.com/specdex/specdex/internal/openapi"
	"github.com/specdex/specdex/internal/scanner"
)

var (
	importInclude []string
	importExclude []string
)

var importCmd = &cobra.Command{
	Use:   "import [files...]",
	Short: "Import OpenAPI documents into the catalog",
	Long: `Import OpenAPI documents into the catalog.

Each document is decoded, its component schemas are flattened into catalog
schemas with attributes, and every path/method pair becomes a catalog API
call with its parameters, responses, and schema links.

Arguments may be files, directories, or glob patterns. Without arguments,
the configured source paths are scanned.

Example:
  specdex import openapi.yaml               # Import a single document
  specdex import specs/                     # Import every spec in a directory
  specdex import 'apis/**/*.json'           # Import by glob pattern
  specdex import -s billing openapi.yaml    # Import into the billing service`,
	RunE: runImport,
}

func init() {
	importCmd.Flags().StringSliceVarP(&importInclude, "include", "i", nil, "glob patterns to include")
	importCmd.Flags().StringSliceVarP(&importExclude, "exclude", "e", nil, "glob patterns to exclude")
}

func runImport(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if len(importInclude) > 0 {
		cfg.Source.Include = importInclude
	}
	if len(importExclude) > 0 {
		cfg.Source.Exclude = importExclude
	}

	files, err := discoverSpecFiles(cfg, args)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("no spec files found")
	}

	store := catalog.NewMemoryStore()
	im := importer.New(store, importer.WithContentType(cfg.ContentType))

	var failed []string
	for _, file := range files {
		printVerbose("Importing %s", file.Path)

		doc, err := openapi.DecodeFile(file.Path)
		if err != nil {
			printError("%s: %v", file.Path, err)
			failed = append(failed, file.Path)
			continue
		}

		stats, err := im.Run(cmd.Context(), cfg.Service.Name, doc)
		if err != nil {
			printError("%s: %v", file.Path, err)
			failed = append(failed, file.Path)
			continue
		}
		printInfo("%s: %s", file.Path, stats)
	}

	if len(failed) > 0 {
		return fmt.Errorf("failed to import %d document(s): %s", len(failed), strings.Join(failed, ", "))
	}
	return nil
}

// loadConfig loads the configuration and applies global flag overrides.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if output != "" {
		cfg.Output = output
	}
	if format != "" {
		cfg.Format = format
	}
	if service != "" {
		cfg.Service.Name = service
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// discoverSpecFiles resolves positional args (or the configured source
// paths) into spec files.
func discoverSpecFiles(cfg *config.Config, args []string) ([]scanner.SpecFile, error) {
	paths := args
	if len(paths) == 0 {
		paths = cfg.Source.Paths
	}

	sc := scanner.New(scanner.Config{
		IncludePatterns: cfg.Source.Include,
		ExcludePatterns: cfg.Source.Exclude,
	})
	return sc.ScanPaths(paths)
}
