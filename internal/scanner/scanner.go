// SPDX-FileCopyrightText: 2026 specdex
// SPDX-License-Identifier: FSL-1.1-MIT

// Package scanner discovers OpenAPI spec files on disk.
package scanner

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/bmatcuk/doublestar/v4"
)

// specExtensions are the file extensions treated as spec files.
var specExtensions = []string{".yaml", ".yml", ".json"}

// SpecFile is one discovered spec file.
type SpecFile struct {
	// Path is the absolute file path
	Path string

	// Content is the raw file content
	Content []byte

	// ModTime is the file modification time
	ModTime time.Time
}

// IsSpecFile reports whether a path has a spec file extension.
func IsSpecFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range specExtensions {
		if ext == e {
			return true
		}
	}
	return false
}

// Config holds scanner configuration.
type Config struct {
	// BasePath is the base directory for scanning (defaults to current directory)
	BasePath string

	// IncludePatterns are glob patterns for files to include (e.g., "**/*.yaml")
	IncludePatterns []string

	// ExcludePatterns are glob patterns for files to exclude (e.g., "vendor/**")
	ExcludePatterns []string
}

// Scanner discovers spec files in a project.
type Scanner struct {
	config Config
}

// New creates a new Scanner with the given configuration.
func New(config Config) *Scanner {
	// Apply defaults
	if config.BasePath == "" {
		config.BasePath = "."
	}
	if len(config.IncludePatterns) == 0 {
		config.IncludePatterns = []string{"**/*.yaml", "**/*.yml", "**/*.json"}
	}

	return &Scanner{
		config: config,
	}
}

// Scan discovers all spec files matching the configuration.
func (s *Scanner) Scan() ([]SpecFile, error) {
	basePath, err := filepath.Abs(s.config.BasePath)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve base path: %w", err)
	}
	return s.ScanPath(basePath)
}

// ScanPath scans a specific path for spec files. A path that does not exist
// on disk but contains glob metacharacters is expanded as a pattern.
func (s *Scanner) ScanPath(path string) ([]SpecFile, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve path: %w", err)
	}

	info, err := os.Stat(absPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			if strings.ContainsAny(path, "*?[{") {
				return s.scanGlob(path)
			}
			return nil, fmt.Errorf("path does not exist: %s", absPath)
		}
		return nil, fmt.Errorf("failed to stat path: %w", err)
	}

	// If path is a file, check if it matches and return it
	if !info.IsDir() {
		if s.shouldIncludeFile(absPath, info) {
			file, err := readSpecFile(absPath, info)
			if err != nil {
				return nil, err
			}
			return []SpecFile{file}, nil
		}
		return nil, nil
	}

	// Walk the directory
	var files []SpecFile
	err = filepath.WalkDir(absPath, func(filePath string, d fs.DirEntry, err error) error {
		if err != nil {
			// Skip inaccessible paths
			return nil
		}

		if d.IsDir() {
			relPath, _ := filepath.Rel(absPath, filePath)
			if s.shouldExcludeDir(relPath) {
				return filepath.SkipDir
			}
			return nil
		}

		info, err := d.Info()
		if err != nil {
			return nil
		}

		if s.shouldIncludeFile(filePath, info) {
			file, err := readSpecFile(filePath, info)
			if err != nil {
				// Skip files we can't read
				return nil
			}
			files = append(files, file)
		}

		return nil
	})

	if err != nil {
		return nil, fmt.Errorf("failed to walk directory: %w", err)
	}

	return files, nil
}

// ScanPaths scans multiple paths for spec files.
func (s *Scanner) ScanPaths(paths []string) ([]SpecFile, error) {
	var allFiles []SpecFile
	seen := make(map[string]bool)

	for _, path := range paths {
		files, err := s.ScanPath(path)
		if err != nil {
			return nil, err
		}
		for _, f := range files {
			if !seen[f.Path] {
				seen[f.Path] = true
				allFiles = append(allFiles, f)
			}
		}
	}

	return allFiles, nil
}

// scanGlob expands a glob pattern into matching spec files.
func (s *Scanner) scanGlob(pattern string) ([]SpecFile, error) {
	matches, err := doublestar.FilepathGlob(pattern)
	if err != nil {
		return nil, fmt.Errorf("invalid glob pattern %q: %w", pattern, err)
	}

	var files []SpecFile
	for _, match := range matches {
		info, err := os.Stat(match)
		if err != nil || info.IsDir() {
			continue
		}
		if !IsSpecFile(match) {
			continue
		}
		absPath, err := filepath.Abs(match)
		if err != nil {
			continue
		}
		file, err := readSpecFile(absPath, info)
		if err != nil {
			continue
		}
		files = append(files, file)
	}
	return files, nil
}

// readSpecFile loads one spec file from disk.
func readSpecFile(path string, info fs.FileInfo) (SpecFile, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return SpecFile{}, fmt.Errorf("failed to read file: %w", err)
	}
	return SpecFile{
		Path:    path,
		Content: content,
		ModTime: info.ModTime(),
	}, nil
}

// shouldIncludeFile checks if a file should be included based on patterns.
func (s *Scanner) shouldIncludeFile(filePath string, info fs.FileInfo) bool {
	if info.IsDir() {
		return false
	}

	if !IsSpecFile(filePath) {
		return false
	}

	// Get relative path for pattern matching
	basePath, _ := filepath.Abs(s.config.BasePath)
	relPath, err := filepath.Rel(basePath, filePath)
	if err != nil {
		relPath = filepath.Base(filePath)
	}

	// Normalize path separators for pattern matching
	relPath = filepath.ToSlash(relPath)

	// Check exclude patterns first
	if s.matchesPatterns(relPath, s.config.ExcludePatterns) {
		return false
	}

	// Check include patterns
	if len(s.config.IncludePatterns) > 0 {
		return s.matchesPatterns(relPath, s.config.IncludePatterns)
	}

	return true
}

// shouldExcludeDir checks if a directory should be excluded.
func (s *Scanner) shouldExcludeDir(relPath string) bool {
	if relPath == "" || relPath == "." {
		return false
	}

	relPath = filepath.ToSlash(relPath)

	for _, pattern := range s.config.ExcludePatterns {
		// Check if the directory matches the start of an exclude pattern
		// e.g., "vendor" matches "vendor/**"
		dirPattern := strings.TrimSuffix(pattern, "/**")
		dirPattern = strings.TrimSuffix(dirPattern, "/*")

		if relPath == dirPattern {
			return true
		}

		// Also check if the pattern would match any file in this directory
		matched, _ := doublestar.Match(pattern, relPath+"/dummy.yaml")
		if matched {
			return true
		}
	}

	return false
}

// matchesPatterns checks if a path matches any of the given patterns.
func (s *Scanner) matchesPatterns(path string, patterns []string) bool {
	for _, pattern := range patterns {
		matched, err := doublestar.Match(pattern, path)
		if err != nil {
			// Invalid pattern, skip
			continue
		}
		if matched {
			return true
		}
	}
	return false
}
