// Copyright (c) 2026 Dicefaces. All rights reserved.
// Author: dev@dicefaces.app

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/dicewright/dicefaces/internal/core/assets"
	"github.com/dicewright/dicefaces/internal/core/die"
	"github.com/dicewright/dicefaces/internal/platform/config"
)

var (
	resolveTheme   string
	resolveFormat  string
	resolveVariant string
	resolveBase    string
	resolveJSON    bool
)

var resolveCmd = &cobra.Command{
	Use:   "resolve <dieType> [face]",
	Short: "Resolve a die face to its asset locator",
	Long: `Resolve validates a (die type, face) pair and prints the canonical asset
locator. The face defaults to 1 when omitted. The base path follows the usual
chain: --base flag, then DICE_ASSET_PATH, then the built-in default.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runResolve,
}

func init() {
	resolveCmd.Flags().StringVar(&resolveTheme, "theme", "", "style-script theme (default white-arabic)")
	resolveCmd.Flags().StringVar(&resolveFormat, "format", "svg", "asset format: svg or png")
	resolveCmd.Flags().StringVar(&resolveVariant, "variant", "standard", "d4 variant: standard, apex, or base")
	resolveCmd.Flags().StringVar(&resolveBase, "base", "", "explicit base path override")
	resolveCmd.Flags().BoolVar(&resolveJSON, "json", false, "print the full resolution as JSON")
}

func runResolve(cmd *cobra.Command, args []string) error {
	service, err := offlineDieService()
	if err != nil {
		return err
	}

	in := die.ResolveInput{
		DieType:  args[0],
		Format:   resolveFormat,
		Variant:  resolveVariant,
		BasePath: resolveBase,
	}
	if len(args) == 2 {
		in.Face = die.ParseFaceText(args[1])
	}
	if resolveTheme != "" {
		in.Theme = resolveTheme
	}

	out, err := service.Resolve(context.Background(), in)
	if err != nil {
		return err
	}

	for _, warning := range out.Warnings {
		fmt.Fprintf(os.Stderr, "warning: %s\n", warning)
	}

	if resolveJSON {
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		return encoder.Encode(out)
	}

	fmt.Println(out.Src)
	return nil
}

// offlineDieService wires a die service against the environment-only base
// path chain (no server, no ambient runtime state).
func offlineDieService() (*die.Service, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
	ambient := assets.NewAmbient("", false, cfg.CacheDuration)
	store := assets.NewMemoryStore()
	loader := noLoader{}

	assetsService := assets.NewService(ambient, store, loader, cfg.AssetBasePath, logger)
	return die.NewService(assetsService, logger), nil
}

// noLoader satisfies the assets loader without performing I/O; resolution is
// a pure computation and never fetches.
type noLoader struct{}

func (noLoader) Load(context.Context, string) error { return nil }
