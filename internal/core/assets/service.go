// Copyright (c) 2026 Dicefaces. All rights reserved.
// Author: dev@dicefaces.app

package assets

import (
	"context"
	"log/slog"

	"github.com/dicewright/dicefaces/internal/core/die"
	"github.com/dicewright/dicefaces/internal/platform/constants"
	"github.com/dicewright/dicefaces/internal/platform/ctxutil"
)

// Loader fetches a single asset locator. Satisfied by the render package's
// HTTP loader; declared here so this package stays decoupled from transport.
type Loader interface {
	Load(ctx context.Context, locator string) error
}

// Service exposes ambient configuration and preloading operations.
type Service struct {
	ambient *Ambient
	store   Store
	loader  Loader
	envPath string
	logger  *slog.Logger
}

// NewService wires the assets service.
//
// envPath is the raw DICE_ASSET_PATH environment value (may be empty); it
// forms the third tier of the base-path chain.
func NewService(ambient *Ambient, store Store, loader Loader, envPath string, logger *slog.Logger) *Service {
	return &Service{
		ambient: ambient,
		store:   store,
		loader:  loader,
		envPath: envPath,
		logger:  logger,
	}
}

// EffectiveBasePath resolves the normalized base path for a request-level
// override. It implements the die and render packages' BasePathSource.
func (service *Service) EffectiveBasePath(override string) string {
	return EffectiveBasePath(override, service.ambient.View().BasePath, service.envPath, constants.DefaultAssetBasePath)
}

// View returns the ambient snapshot plus the preloaded-set size.
func (service *Service) View(ctx context.Context) (ConfigView, error) {
	count, err := service.store.CountPreloaded(ctx)
	if err != nil {
		return ConfigView{}, err
	}
	return ConfigView{
		Ambient:           service.ambient.View(),
		EffectiveBasePath: service.EffectiveBasePath(""),
		PreloadedCount:    count,
	}, nil
}

// ConfigView is the read-only configuration surface exposed over HTTP.
type ConfigView struct {
	Ambient           AmbientView `json:"ambient"`
	EffectiveBasePath string      `json:"effective_base_path"`
	PreloadedCount    int         `json:"preloaded_count"`
}

// UpdateAmbient applies a patch through the single controlled entry point.
func (service *Service) UpdateAmbient(ctx context.Context, patch AmbientPatch) AmbientView {
	view := service.ambient.Update(patch)
	ctxutil.GetLogger(ctx).InfoContext(ctx, "ambient_config_updated",
		slog.String("base_path", view.BasePath),
		slog.Bool("preload_assets", view.PreloadAssets),
		slog.Duration("cache_duration", view.CacheDuration),
	)
	return view
}

// Preloaded returns the shared preloaded-locator set.
func (service *Service) Preloaded(ctx context.Context) ([]string, error) {
	return service.store.ListPreloaded(ctx)
}

// PreloadReport summarizes one preload sweep.
type PreloadReport struct {
	Theme   die.Theme  `json:"theme"`
	Format  die.Format `json:"format"`
	Total   int        `json:"total"`
	Loaded  int        `json:"loaded"`
	Skipped int        `json:"skipped"`
	Failed  int        `json:"failed"`
}

// Preload walks the full die catalog for one theme and format, loading every
// asset locator not already in the shared set and marking successes.
//
// Individual load failures do not abort the sweep; they are counted and
// logged. Only store or context failures end it early.
func (service *Service) Preload(ctx context.Context, rawTheme string, format die.Format) (*PreloadReport, error) {
	var themeInput any
	if rawTheme != "" {
		themeInput = rawTheme
	}
	theme, warnings := die.ParseTheme(themeInput)
	for _, warning := range warnings {
		ctxutil.GetLogger(ctx).WarnContext(ctx, "theme_degraded", slog.String("warning", warning))
	}
	if !format.IsValid() {
		format = die.FormatSVG
	}

	basePath := service.EffectiveBasePath("")
	cacheTTL := service.ambient.View().CacheDuration
	report := &PreloadReport{Theme: theme, Format: format}

	for _, dieType := range die.CatalogTypes() {
		for _, variant := range die.VariantsOf(dieType) {
			for _, face := range die.FacesOf(dieType) {
				if err := ctx.Err(); err != nil {
					return report, err
				}

				locator := die.ResolvePath(dieType, face, theme, format, variant, basePath)
				report.Total++

				already, err := service.store.IsPreloaded(ctx, locator)
				if err != nil {
					return report, err
				}
				if already {
					report.Skipped++
					continue
				}

				if err := service.loader.Load(ctx, locator); err != nil {
					report.Failed++
					service.logger.WarnContext(ctx, "preload_skip_failed_asset",
						slog.String("locator", locator),
						slog.Any("error", err),
					)
					continue
				}

				if err := service.store.MarkPreloaded(ctx, locator, cacheTTL); err != nil {
					return report, err
				}
				report.Loaded++
			}
		}
	}

	service.logger.InfoContext(ctx, "preload_sweep_finished",
		slog.String("theme", theme.Dir()),
		slog.String("format", string(format)),
		slog.Int("total", report.Total),
		slog.Int("loaded", report.Loaded),
		slog.Int("skipped", report.Skipped),
		slog.Int("failed", report.Failed),
	)
	return report, nil
}
