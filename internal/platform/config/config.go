// Copyright (c) 2026 Dicefaces. All rights reserved.
// Author: dev@dicefaces.app

/*
Package config handles application-wide settings and environment parsing.

It leverages 'caarlos0/env' to map OS environment variables into a strongly-typed
Go struct, providing early validation and default values.

Usage:

	cfg, err := config.Load()
	if err != nil {
	    log.Fatal(err)
	}

Architecture:

  - Immutability: Once loaded, configuration is read-only.
  - DI-Friendly: Passed to core components (ambient assets config, Redis) via constructors.
  - Zero Hidden State: No global variables are used to store config.

This ensures the application is Twelve-Factor compliant by storing config in the env.

Note that DICE_ASSET_PATH is only the third tier of the effective base-path
chain (request override > ambient configuration > environment > built-in
default); its resolution lives in the assets package, not here. This package
merely surfaces the raw environment value.
*/
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// # Configuration Schema

// Config holds all runtime configuration for the Dicefaces API server.
type Config struct {

	// Server settings
	ServerPort  string `env:"SERVER_PORT"  envDefault:"8080"`
	Environment string `env:"ENVIRONMENT"  envDefault:"development"`
	Debug       bool   `env:"DEBUG"        envDefault:"false"`

	// AssetBasePath is the environment tier of the base-path chain.
	// Empty means "not set" and the chain falls through to the built-in default.
	AssetBasePath string `env:"DICE_ASSET_PATH"`

	// AssetOrigin is the origin root-relative locators are fetched against,
	// e.g. "https://cdn.dicefaces.app". Scheme-qualified base paths do not
	// need it.
	AssetOrigin string `env:"DICE_ASSET_ORIGIN"`

	// Key-Value Cache (Redis), optional. When empty the preloaded-asset set
	// is kept in process memory instead.
	RedisURL string `env:"REDIS_URL"`

	// Initial ambient asset configuration. Both can be changed at runtime
	// through the single controlled update entry point.
	PreloadAssets bool          `env:"PRELOAD_ASSETS"  envDefault:"false"`
	CacheDuration time.Duration `env:"CACHE_DURATION"  envDefault:"1h"`

	// Cross-Origin Resource Sharing
	ExtraOrigins string `env:"EXTRA_ORIGINS"`
}

// # Configuration Loading

// Load parses environment variables into a [Config] struct.
func Load() (*Config, error) {

	// Initialize an empty config struct
	cfg := &Config{}

	// Use the 'env' package to map environment variables to struct fields.
	// This will fail if any field marked with 'required' is missing.
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config: failed to parse environment variables: %w", err)
	}

	return cfg, nil
}

// IsDevelopment reports whether the server is running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction reports whether the server is running in production mode.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
