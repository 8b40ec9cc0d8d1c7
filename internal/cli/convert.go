// SPDX-FileCopyrightText: 2026 specdex
// SPDX-License-Identifier: FSL-1.1-MIT

package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/specdex/specdex/internal/catalog"
	"github.com/specdex/specdex/internal/importer"
	"github.com/specdex/specdex/internal/openapi"
	"github.com/specdex/specdex/pkg/types"
)

var convertStdout bool

var convertCmd = &cobra.Command{
	Use:   "convert <file>",
	Short: "Round-trip an OpenAPI document through the catalog",
	Long: `Round-trip an OpenAPI document through the catalog.

The document is imported into a fresh in-memory catalog and immediately
exported again. This normalizes the document to the catalog's shape and
converts between JSON and YAML.

Example:
  specdex convert api.json -o api.yaml        # JSON to YAML
  specdex convert api.yaml -f json --stdout   # YAML to JSON on stdout`,
	Args: cobra.ExactArgs(1),
	RunE: runConvert,
}

func init() {
	convertCmd.Flags().BoolVar(&convertStdout, "stdout", false, "write the result to stdout instead of a file")
}

func runConvert(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	doc, err := openapi.DecodeFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to decode %s: %w", args[0], err)
	}

	store := catalog.NewMemoryStore()
	im := importer.New(store, importer.WithContentType(cfg.ContentType))

	stats, err := im.Run(cmd.Context(), cfg.Service.Name, doc)
	if err != nil {
		return fmt.Errorf("failed to import %s: %w", args[0], err)
	}
	printVerbose("Imported %s: %s", args[0], stats)

	svc := types.Service{
		ID:          cfg.Service.Name,
		Name:        cfg.Service.Name,
		Title:       doc.Info.Title,
		Description: doc.Info.Description,
		Version:     doc.Info.Version,
	}

	exporter := openapi.NewExporter(store,
		openapi.WithSpecVersion(cfg.OpenAPI.Version),
		openapi.WithExportContentType(cfg.ContentType))

	if convertStdout {
		data, err := exporter.Export(cmd.Context(), svc, cfg.Format)
		if err != nil {
			return fmt.Errorf("failed to export: %w", err)
		}
		_, err = os.Stdout.Write(data)
		return err
	}

	out, err := exporter.Build(cmd.Context(), svc)
	if err != nil {
		return fmt.Errorf("failed to export: %w", err)
	}
	if err := openapi.NewWriter().WriteFile(out, cfg.Output, cfg.Format); err != nil {
		return err
	}
	printInfo("Wrote %s", cfg.Output)
	return nil
}
