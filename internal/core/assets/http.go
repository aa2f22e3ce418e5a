// Copyright (c) 2026 Dicefaces. All rights reserved.
// Author: dev@dicefaces.app

package assets

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/dicewright/dicefaces/internal/core/die"
	"github.com/dicewright/dicefaces/internal/platform/respond"
	"github.com/dicewright/dicefaces/internal/platform/validate"
	"github.com/dicewright/dicefaces/pkg/pagination"
)

// Handler exposes ambient configuration and preloading over HTTP.
type Handler struct {
	service *Service
	logger  *slog.Logger
}

// NewHandler creates the assets HTTP handler.
func NewHandler(service *Service, logger *slog.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// Routes returns the chi router for the /assets group.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()
	router.Get("/config", handler.getConfig)
	router.Patch("/config", handler.patchConfig)
	router.Post("/preload", handler.preload)
	router.Get("/preloaded", handler.listPreloaded)
	return router
}

// getConfig handles GET /assets/config.
func (handler *Handler) getConfig(writer http.ResponseWriter, request *http.Request) {
	view, err := handler.service.View(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, view)
}

// ambientPatchBody is the PATCH /assets/config request body.
type ambientPatchBody struct {
	BasePath             *string `json:"base_path"`
	PreloadAssets        *bool   `json:"preload_assets"`
	CacheDurationSeconds *int    `json:"cache_duration_seconds"`
}

// patchConfig handles PATCH /assets/config — the single ambient update
// entry point. Flipping preload_assets on kicks off a background sweep of
// the default theme.
func (handler *Handler) patchConfig(writer http.ResponseWriter, request *http.Request) {
	var body ambientPatchBody
	if err := json.NewDecoder(request.Body).Decode(&body); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	v := &validate.Validator{}
	if body.CacheDurationSeconds != nil {
		v.Custom("cache_duration_seconds", *body.CacheDurationSeconds <= 0, "Must be a positive number of seconds")
	}
	if err := v.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	patch := AmbientPatch{
		BasePath:      body.BasePath,
		PreloadAssets: body.PreloadAssets,
	}
	if body.CacheDurationSeconds != nil {
		d := time.Duration(*body.CacheDurationSeconds) * time.Second
		patch.CacheDuration = &d
	}

	view := handler.service.UpdateAmbient(request.Context(), patch)

	if body.PreloadAssets != nil && *body.PreloadAssets {
		// The sweep outlives the request; detach from its cancellation.
		go func() {
			if _, err := handler.service.Preload(context.WithoutCancel(request.Context()), "", die.FormatSVG); err != nil {
				handler.logger.Error("background_preload_failed", slog.Any("error", err))
			}
		}()
	}

	respond.OK(writer, view)
}

// preloadBody is the POST /assets/preload request body.
type preloadBody struct {
	Theme  string `json:"theme"`
	Format string `json:"format"`
}

// preload handles POST /assets/preload: a synchronous catalog sweep for one
// theme and format.
func (handler *Handler) preload(writer http.ResponseWriter, request *http.Request) {
	var body preloadBody
	if request.Body != nil && request.ContentLength != 0 {
		if err := json.NewDecoder(request.Body).Decode(&body); err != nil {
			respond.Error(writer, request, validate.ErrInvalidJSON)
			return
		}
	}

	format := die.ParseFormat(body.Format)
	v := &validate.Validator{}
	v.OneOf("format", string(format), string(die.FormatSVG), string(die.FormatPNG))
	if err := v.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	report, err := handler.service.Preload(request.Context(), body.Theme, format)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, report)
}

// listPreloaded handles GET /assets/preloaded: a paginated, read-only view
// of the shared preloaded-locator set.
func (handler *Handler) listPreloaded(writer http.ResponseWriter, request *http.Request) {
	locators, err := handler.service.Preloaded(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	params := pagination.FromRequest(request)
	start, end := params.Slice(len(locators))
	respond.Paginated(writer, locators[start:end],
		pagination.NewMeta(params.Page, params.Limit, len(locators)))
}
