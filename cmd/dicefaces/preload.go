// Copyright (c) 2026 Dicefaces. All rights reserved.
// Author: dev@dicefaces.app

package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/dicewright/dicefaces/internal/core/assets"
	"github.com/dicewright/dicefaces/internal/core/die"
	"github.com/dicewright/dicefaces/internal/core/render"
	"github.com/dicewright/dicefaces/internal/platform/config"
	redisstore "github.com/dicewright/dicefaces/internal/platform/redis"
)

var (
	preloadTheme  string
	preloadFormat string
)

var preloadCmd = &cobra.Command{
	Use:   "preload",
	Short: "Fetch a theme's full asset set and record it in the shared preloaded set",
	Long: `Preload walks the die catalog (every type, variant, and legal face) for one
theme and format, fetches each asset locator, and records successes. With
REDIS_URL set the preloaded set is shared with running API instances;
otherwise the sweep only reports loadability.`,
	RunE: runPreload,
}

func init() {
	preloadCmd.Flags().StringVar(&preloadTheme, "theme", "", "style-script theme (default white-arabic)")
	preloadCmd.Flags().StringVar(&preloadFormat, "format", "svg", "asset format: svg or png")
}

func runPreload(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		logger.Info("interrupt received, stopping sweep")
		cancel()
	}()

	var store assets.Store = assets.NewMemoryStore()
	if cfg.RedisURL != "" {
		rdb, err := redisstore.NewClient(ctx, cfg.RedisURL, logger)
		if err != nil {
			return err
		}
		defer func() { _ = rdb.Close() }()
		store = assets.NewRedisStore(rdb)
	}

	ambient := assets.NewAmbient("", false, cfg.CacheDuration)
	loader := render.NewHTTPLoader(cfg.AssetOrigin)
	service := assets.NewService(ambient, store, loader, cfg.AssetBasePath, logger)

	report, err := service.Preload(ctx, preloadTheme, die.ParseFormat(preloadFormat))
	if err != nil {
		return err
	}

	fmt.Printf("theme=%s format=%s total=%d loaded=%d skipped=%d failed=%d\n",
		report.Theme.Dir(), report.Format, report.Total, report.Loaded, report.Skipped, report.Failed)
	return nil
}
