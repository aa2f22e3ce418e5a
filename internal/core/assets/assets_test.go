// Copyright (c) 2026 Dicefaces. All rights reserved.
// Author: dev@dicefaces.app

package assets_test

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/dicewright/dicefaces/internal/core/assets"
)

/*
TestNormalizeBasePath verifies every canonicalization rule.
*/
func TestNormalizeBasePath(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"plain_path", "/assets/dice", "/assets/dice"},
		{"trailing_slash", "/assets/dice/", "/assets/dice"},
		{"many_trailing_slashes", "/assets/dice///", "/assets/dice"},
		{"bare_root", "/", ""},
		{"empty", "", ""},
		{"whitespace_only", "   ", ""},
		{"missing_leading_slash", "assets/dice", "/assets/dice"},
		{"url_passthrough", "https://cdn.example.com/dice", "https://cdn.example.com/dice"},
		{"url_trailing_slash", "https://cdn.example.com/dice/", "https://cdn.example.com/dice"},
		{"protocol_relative", "//cdn.example.com/dice", "//cdn.example.com/dice"},
		{"padded_path", "  /assets/dice  ", "/assets/dice"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, assets.NormalizeBasePath(tt.raw))
		})
	}
}

/*
TestNormalizeBasePath_Idempotent verifies that normalizing twice changes
nothing, so the value can be re-normalized safely at any layer.
*/
func TestNormalizeBasePath_Idempotent(t *testing.T) {
	inputs := []string{"/assets/dice/", "assets/dice", "https://cdn.example.com/dice/", "/", ""}

	for _, raw := range inputs {
		once := assets.NormalizeBasePath(raw)
		assert.Equal(t, once, assets.NormalizeBasePath(once), "input %q", raw)
	}
}

/*
TestEffectiveBasePath verifies the four-tier priority chain by removing one
tier at a time.
*/
func TestEffectiveBasePath(t *testing.T) {
	tests := []struct {
		name     string
		override string
		ambient  string
		env      string
		want     string
	}{
		{"override_wins", "/override/", "/ambient", "/env", "/override"},
		{"ambient_next", "", "/ambient/", "/env", "/ambient"},
		{"env_next", "", "", "/env/", "/env"},
		{"builtin_last", "", "", "", "/assets/dice"},
		{"blank_tiers_skipped", "   ", "  ", "", "/assets/dice"},
		{"url_override", "https://cdn.example.com/dice/", "/ambient", "", "https://cdn.example.com/dice"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := assets.EffectiveBasePath(tt.override, tt.ambient, tt.env, "/assets/dice")
			assert.Equal(t, tt.want, got)
		})
	}
}

/*
TestAmbient_Update verifies the patch semantics: nil fields are untouched,
non-positive cache durations are rejected.
*/
func TestAmbient_Update(t *testing.T) {
	ambient := assets.NewAmbient("/assets/dice", false, time.Hour)

	newPath := "/mnt/dice"
	view := ambient.Update(assets.AmbientPatch{BasePath: &newPath})
	assert.Equal(t, "/mnt/dice", view.BasePath)
	assert.False(t, view.PreloadAssets)
	assert.Equal(t, time.Hour, view.CacheDuration)

	preload := true
	shortTTL := 10 * time.Minute
	view = ambient.Update(assets.AmbientPatch{PreloadAssets: &preload, CacheDuration: &shortTTL})
	assert.Equal(t, "/mnt/dice", view.BasePath)
	assert.True(t, view.PreloadAssets)
	assert.Equal(t, 10*time.Minute, view.CacheDuration)

	zero := time.Duration(0)
	view = ambient.Update(assets.AmbientPatch{CacheDuration: &zero})
	assert.Equal(t, 10*time.Minute, view.CacheDuration)
}

/*
TestAmbient_ConcurrentAccess exercises the reader/writer paths together; the
race detector is the real assertion here.
*/
func TestAmbient_ConcurrentAccess(t *testing.T) {
	ambient := assets.NewAmbient("/assets/dice", false, time.Hour)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		path := "/mnt/dice"
		go func() {
			defer wg.Done()
			ambient.Update(assets.AmbientPatch{BasePath: &path})
		}()
		go func() {
			defer wg.Done()
			_ = ambient.View()
		}()
	}
	wg.Wait()

	assert.Equal(t, "/mnt/dice", ambient.View().BasePath)
}
