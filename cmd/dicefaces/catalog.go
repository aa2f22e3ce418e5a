// Copyright (c) 2026 Dicefaces. All rights reserved.
// Author: dev@dicefaces.app

package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dicewright/dicefaces/internal/core/die"
)

var catalogJSON bool

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "List every recognized die type and its legal faces",
	RunE:  runCatalog,
}

func init() {
	catalogCmd.Flags().BoolVar(&catalogJSON, "json", false, "print the catalog as JSON")
}

func runCatalog(cmd *cobra.Command, args []string) error {
	catalog := die.Catalog()

	if catalogJSON {
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		return encoder.Encode(catalog)
	}

	for _, descriptor := range catalog {
		fmt.Printf("%-12s %-10s %s\n", descriptor.Type, descriptor.Category,
			strings.Join(descriptor.Faces, ", "))
	}
	return nil
}
