// SPDX-FileCopyrightText: 2026 specdex
// SPDX-License-Identifier: FSL-1.1-MIT

// Package main is the entry point for the specdex CLI.
package main

import (
	"fmt"
	"os"

	"github.com/specdex/specdex/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
