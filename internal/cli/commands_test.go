// SPDX-FileCopyrightText: 2026 specdex
// SPDX-License-Identifier: FSL-1.1-MIT

package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/specdex/specdex/internal/config"
	"github.com/specdex/specdex/internal/openapi"
)

const testSpecYAML = `openapi: "3.0.3"
info:
  title: Test API
  version: "1.0.0"
paths:
  /users:
    get:
      operationId: list_users
      responses:
        "200":
          description: ok
          content:
            application/json:
              schema:
                $ref: "#/components/schemas/User"
components:
  schemas:
    User:
      type: object
      properties:
        id:
          type: string
      required:
        - id
`

// writeTestSpec writes a valid spec file and returns its path.
func writeTestSpec(t *testing.T, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(testSpecYAML), 0o644))
	return path
}

// resetFlags clears global flag state between command runs.
func resetFlags() {
	cfgFile = ""
	output = ""
	format = ""
	service = ""
	verbose = false
	quiet = true
}

func TestValidateCommand_ValidSpec(t *testing.T) {
	resetFlags()
	tmpDir := t.TempDir()
	path := writeTestSpec(t, tmpDir, "openapi.yaml")

	_, err := executeCommand(rootCmd, "validate", path)
	assert.NoError(t, err)
}

func TestValidateCommand_InvalidSpec(t *testing.T) {
	resetFlags()
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "broken.yaml")
	require.NoError(t, os.WriteFile(path, []byte("info:\n  title: no version\npaths: {}\n"), 0o644))

	_, err := executeCommand(rootCmd, "validate", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid")
}

func TestValidateCommand_NoFiles(t *testing.T) {
	resetFlags()
	_, err := executeCommand(rootCmd, "validate", t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no spec files found")
}

func TestImportCommand_SingleFile(t *testing.T) {
	resetFlags()
	tmpDir := t.TempDir()
	path := writeTestSpec(t, tmpDir, "openapi.yaml")

	_, err := executeCommand(rootCmd, "import", path)
	assert.NoError(t, err)
}

func TestImportCommand_UndecodableFile(t *testing.T) {
	resetFlags()
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "broken.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, err := executeCommand(rootCmd, "import", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to import")
}

func TestConvertCommand_JSONToYAML(t *testing.T) {
	resetFlags()
	tmpDir := t.TempDir()
	specPath := writeTestSpec(t, tmpDir, "openapi.yaml")
	outPath := filepath.Join(tmpDir, "out.json")

	_, err := executeCommand(rootCmd, "convert", specPath, "-o", outPath, "-f", "json")
	require.NoError(t, err)

	doc, err := openapi.DecodeFile(outPath)
	require.NoError(t, err)
	assert.Equal(t, "Test API", doc.Info.Title)
	assert.Contains(t, doc.Paths, "/users")
	require.NotNil(t, doc.Components)
	assert.Contains(t, doc.Components.Schemas, "User")
}

func TestDiffCommand_TwoFiles(t *testing.T) {
	resetFlags()
	tmpDir := t.TempDir()
	oldPath := writeTestSpec(t, tmpDir, "old.yaml")
	newPath := writeTestSpec(t, tmpDir, "new.yaml")

	_, err := executeCommand(rootCmd, "diff", oldPath, newPath)
	assert.NoError(t, err)
}

func TestDiffCommand_WrongArgCount(t *testing.T) {
	resetFlags()
	_, err := executeCommand(rootCmd, "diff", "only-one.yaml")
	assert.Error(t, err)
}

func TestInitCommand_CreatesConfig(t *testing.T) {
	resetFlags()
	tmpDir := t.TempDir()

	cwd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(tmpDir))
	t.Cleanup(func() { _ = os.Chdir(cwd) })

	_, err = executeCommand(rootCmd, "init", "--title", "My API")
	require.NoError(t, err)

	cfg, err := config.Load(filepath.Join(tmpDir, "specdex.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "My API", cfg.Service.Title)
	assert.NoError(t, cfg.Validate())

	// A second init without --force refuses to overwrite.
	_, err = executeCommand(rootCmd, "init")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")

	_, err = executeCommand(rootCmd, "init", "--force")
	assert.NoError(t, err)
}
