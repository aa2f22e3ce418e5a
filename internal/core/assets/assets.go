// Copyright (c) 2026 Dicefaces. All rights reserved.
// Author: dev@dicefaces.app

/*
Package assets owns the asset-location configuration and preloading concerns.

It provides:

  - Ambient: the shared runtime configuration (base path, preload flag,
    cache-duration hint) read by many component instances but mutated only
    through a single controlled update entry point.
  - The effective base-path resolution chain: request override > ambient
    configuration > DICE_ASSET_PATH environment value > built-in default,
    with a normalizer applied to the winning value.
  - The shared, append-only preloaded-locator set (Redis-backed, with an
    in-process fallback) and the preload operation that walks the die catalog.
*/
package assets

import (
	"strings"
	"sync"
	"time"

	"github.com/dicewright/dicefaces/internal/platform/constants"
)

// # Ambient Configuration

// Ambient is the shared asset configuration. Instances never mutate it
// directly; every change goes through [Ambient.Update].
type Ambient struct {
	mu            sync.RWMutex
	basePath      string
	preloadAssets bool
	cacheDuration time.Duration
}

// AmbientView is an immutable snapshot of the ambient configuration.
type AmbientView struct {
	BasePath      string        `json:"base_path,omitempty"`
	PreloadAssets bool          `json:"preload_assets"`
	CacheDuration time.Duration `json:"cache_duration_ns"`
}

// AmbientPatch is a partial update; nil fields are left untouched.
type AmbientPatch struct {
	BasePath      *string        `json:"base_path"`
	PreloadAssets *bool          `json:"preload_assets"`
	CacheDuration *time.Duration `json:"-"`
}

// NewAmbient seeds the ambient configuration from startup values.
func NewAmbient(basePath string, preloadAssets bool, cacheDuration time.Duration) *Ambient {
	if cacheDuration <= 0 {
		cacheDuration = constants.DefaultCacheDuration
	}
	return &Ambient{
		basePath:      basePath,
		preloadAssets: preloadAssets,
		cacheDuration: cacheDuration,
	}
}

// View returns a consistent snapshot of the ambient configuration.
func (a *Ambient) View() AmbientView {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return AmbientView{
		BasePath:      a.basePath,
		PreloadAssets: a.preloadAssets,
		CacheDuration: a.cacheDuration,
	}
}

// Update applies a patch atomically and returns the resulting snapshot.
// This is the single mutation entry point for the shared configuration.
func (a *Ambient) Update(patch AmbientPatch) AmbientView {
	a.mu.Lock()
	defer a.mu.Unlock()

	if patch.BasePath != nil {
		a.basePath = *patch.BasePath
	}
	if patch.PreloadAssets != nil {
		a.preloadAssets = *patch.PreloadAssets
	}
	if patch.CacheDuration != nil && *patch.CacheDuration > 0 {
		a.cacheDuration = *patch.CacheDuration
	}

	return AmbientView{
		BasePath:      a.basePath,
		PreloadAssets: a.preloadAssets,
		CacheDuration: a.cacheDuration,
	}
}

// # Base Path Resolution

// EffectiveBasePath computes the normalized base path from the four-tier
// priority chain, first defined wins. It is pure given its inputs; reading
// the ambient configuration and environment is the caller's job.
func EffectiveBasePath(override, ambient, env, builtin string) string {
	raw := builtin
	switch {
	case strings.TrimSpace(override) != "":
		raw = override
	case strings.TrimSpace(ambient) != "":
		raw = ambient
	case strings.TrimSpace(env) != "":
		raw = env
	}
	return NormalizeBasePath(raw)
}

// NormalizeBasePath canonicalizes a base path:
//
//   - all trailing separators stripped;
//   - the bare root collapses to the empty string;
//   - scheme-qualified ("https://…") and protocol-relative ("//…") locators
//     pass through without leading-separator insertion;
//   - anything else gets exactly one leading separator.
func NormalizeBasePath(raw string) string {
	trimmed := strings.TrimSpace(raw)
	isRemote := strings.Contains(trimmed, "://") || strings.HasPrefix(trimmed, "//")

	out := strings.TrimRight(trimmed, "/")
	if out == "" {
		return ""
	}
	if isRemote {
		return out
	}
	if !strings.HasPrefix(out, "/") {
		out = "/" + out
	}
	return out
}
