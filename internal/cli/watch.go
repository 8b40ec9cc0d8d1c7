// SPDX-FileCopyrightText: 2026 specdex
// SPDX-License-Identifier: FSL-1.1-MIT

package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/specdex/specdex/internal/config"
	"github.com/specdex/specdex/internal/openapi"
	"github.com/specdex/specdex/internal/scanner"
)

var watchDebounce int

var watchCmd = &cobra.Command{
	Use:   "watch [paths...]",
	Short: "Watch spec files and re-validate on change",
	Long: `Watch spec files and re-validate them on change.

Changed documents are decoded and structurally checked as they are saved,
so errors show up while you edit. Events within the debounce window are
coalesced into a single validation pass.

Example:
  specdex watch                     # Watch the configured source paths
  specdex watch specs/              # Watch a specific directory
  specdex watch --debounce 1000     # Wait 1s before re-validating`,
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().IntVar(&watchDebounce, "debounce", 0, "debounce duration in milliseconds (default from config)")
}

func runWatch(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if watchDebounce > 0 {
		cfg.Watch.Debounce = watchDebounce
	}

	paths := args
	if len(paths) == 0 {
		paths = cfg.Source.Paths
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer watcher.Close()

	if err := addWatchPaths(watcher, paths); err != nil {
		return err
	}

	printVerbose("Watch configuration:")
	printVerbose("  Debounce: %dms", cfg.Watch.Debounce)
	printVerbose("  Paths: %s", strings.Join(paths, ", "))

	printInfo("Watching for changes in: %s", strings.Join(paths, ", "))
	printInfo("Press Ctrl+C to stop")

	// Initial pass so the baseline state is visible.
	validateOnChange(cfg, paths)

	return watchLoop(cmd.Context(), watcher, cfg, paths)
}

// addWatchPaths registers every directory under the given paths, since
// fsnotify watches are not recursive.
func addWatchPaths(watcher *fsnotify.Watcher, paths []string) error {
	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return fmt.Errorf("failed to stat %s: %w", path, err)
		}
		if !info.IsDir() {
			if err := watcher.Add(path); err != nil {
				return fmt.Errorf("failed to watch %s: %w", path, err)
			}
			continue
		}

		err = filepath.WalkDir(path, func(p string, d os.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if !d.IsDir() {
				return nil
			}
			name := d.Name()
			if name != "." && strings.HasPrefix(name, ".") {
				return filepath.SkipDir
			}
			return watcher.Add(p)
		})
		if err != nil {
			return fmt.Errorf("failed to watch %s: %w", path, err)
		}
	}
	return nil
}

// watchLoop coalesces filesystem events with a debounce timer and runs a
// validation pass when the timer fires. It returns when the context is done
// or the watcher closes.
func watchLoop(ctx context.Context, watcher *fsnotify.Watcher, cfg *config.Config, paths []string) error {
	debounce := time.Duration(cfg.Watch.Debounce) * time.Millisecond
	if debounce <= 0 {
		debounce = 500 * time.Millisecond
	}

	timer := time.NewTimer(debounce)
	if !timer.Stop() {
		<-timer.C
	}

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !relevantEvent(event) {
				continue
			}
			printVerbose("Change detected: %s", event.Name)

			// New directories need their own watch.
			if event.Op.Has(fsnotify.Create) {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					_ = watcher.Add(event.Name)
				}
			}
			timer.Reset(debounce)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			printError("watch error: %v", err)

		case <-timer.C:
			validateOnChange(cfg, paths)
		}
	}
}

// relevantEvent reports whether an event should trigger re-validation:
// writes, creates, and removes of spec files, plus directory creation.
func relevantEvent(event fsnotify.Event) bool {
	if !event.Op.Has(fsnotify.Write) && !event.Op.Has(fsnotify.Create) && !event.Op.Has(fsnotify.Remove) && !event.Op.Has(fsnotify.Rename) {
		return false
	}
	if scanner.IsSpecFile(event.Name) {
		return true
	}
	info, err := os.Stat(event.Name)
	return err == nil && info.IsDir()
}

// validateOnChange runs one validation pass over the watched paths.
func validateOnChange(cfg *config.Config, paths []string) {
	files, err := discoverSpecFiles(cfg, paths)
	if err != nil {
		printError("scan failed: %v", err)
		return
	}

	invalid := 0
	for _, file := range files {
		if _, err := openapi.Decode(file.Content, ""); err != nil {
			printError("%s: %v", file.Path, err)
			invalid++
		}
	}

	if invalid > 0 {
		printInfo("[%s] %d of %d document(s) invalid", time.Now().Format("15:04:05"), invalid, len(files))
		return
	}
	printInfo("[%s] %d document(s) valid", time.Now().Format("15:04:05"), len(files))
}
