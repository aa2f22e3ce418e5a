// Copyright (c) 2026 Dicefaces. All rights reserved.
// Author: dev@dicefaces.app

// Package main is the dicefaces command line tool: offline locator
// resolution, catalog inspection, and preload sweeps without running the
// API server.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "dicefaces",
	Short: "Tabletop dice asset tooling",
	Long:  `dicefaces resolves tabletop die faces (numeric and narrative) to canonical image asset locators, inspects the die catalog, and preloads asset sets.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(resolveCmd)
	rootCmd.AddCommand(catalogCmd)
	rootCmd.AddCommand(preloadCmd)
}
