// SPDX-FileCopyrightText: 2026 specdex
// SPDX-License-Identifier: FSL-1.1-MIT

package cli

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/specdex/specdex/internal/config"
)

var (
	initForce       bool
	initTitle       string
	initVersion     string
	initDescription string
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize a new specdex configuration file",
	Long: `Initialize a new specdex configuration file in the current directory.

This command creates a specdex.yaml file with sensible defaults
that you can customize for your project.

Features:
  - Infers the service name and title from go.mod
  - Sets up appropriate include and exclude patterns

Example:
  specdex init                          # Create config with detected defaults
  specdex init --force                  # Overwrite existing config
  specdex init --title "Billing API"    # Set custom service title`,
	RunE: runInit,
}

func init() {
	initCmd.Flags().BoolVar(&initForce, "force", false, "overwrite existing config file")
	initCmd.Flags().StringVar(&initTitle, "title", "", "service title for exported documents")
	initCmd.Flags().StringVar(&initVersion, "version", "", "service version for exported documents")
	initCmd.Flags().StringVar(&initDescription, "description", "", "service description for exported documents")
}

func runInit(cmd *cobra.Command, args []string) error {
	configFile := "specdex.yaml"

	if _, err := os.Stat(configFile); err == nil && !initForce {
		return fmt.Errorf("config file %s already exists, use --force to overwrite", configFile)
	}

	projectRoot, err := filepath.Abs(".")
	if err != nil {
		return fmt.Errorf("failed to determine project root: %w", err)
	}

	cfg := config.Default()

	// Derive the service identity from the project when possible.
	projectInfo := detectProjectInfo(projectRoot)
	if projectInfo.Name != "" {
		cfg.Service.Name = projectInfo.Name
	}
	if service != "" {
		cfg.Service.Name = service
	}

	if initTitle != "" {
		cfg.Service.Title = initTitle
	} else if projectInfo.Title != "" {
		cfg.Service.Title = projectInfo.Title
	}
	if initVersion != "" {
		cfg.Service.Version = initVersion
	}
	if initDescription != "" {
		cfg.Service.Description = initDescription
	}

	if err := os.WriteFile(configFile, []byte(buildConfigYAML(cfg)), 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	printInfo("Created %s", configFile)
	printVerbose("Service: %s", cfg.Service.Name)
	printVerbose("Output: %s", cfg.Output)
	printVerbose("Paths: %s", strings.Join(cfg.Source.Paths, ", "))

	return nil
}

// projectInfo holds information detected from the project.
type projectInfo struct {
	Name   string
	Title  string
	Module string
}

// detectProjectInfo detects project information from go.mod.
func detectProjectInfo(projectRoot string) projectInfo {
	info := projectInfo{}

	goModPath := filepath.Join(projectRoot, "go.mod")
	file, err := os.Open(goModPath)
	if err != nil {
		return info
	}
	defer file.Close()

	sc := bufio.NewScanner(file)
	for sc.Scan() {
		line := sc.Text()
		if !strings.HasPrefix(line, "module ") {
			continue
		}
		info.Module = strings.TrimSpace(strings.TrimPrefix(line, "module "))

		// The last module path segment makes a reasonable service name,
		// e.g. "github.com/user/my-api" becomes "my-api".
		parts := strings.Split(info.Module, "/")
		if len(parts) > 0 {
			name := parts[len(parts)-1]
			info.Name = name

			title := strings.ReplaceAll(name, "-", " ")
			title = strings.ReplaceAll(title, "_", " ")
			info.Title = title + " API"
		}
		break
	}

	return info
}

// buildConfigYAML builds a YAML config with a header comment.
func buildConfigYAML(cfg *config.Config) string {
	data, _ := yaml.Marshal(cfg)

	header := `# specdex configuration file

`
	return header + string(data)
}
