// Copyright (c) 2026 Dicefaces. All rights reserved.
// Author: dev@dicefaces.app

package assets

import (
	"context"
	"time"
)

// Store records which asset locators have been preloaded.
//
// # Contract
//
// The set is append-only: locators are marked, never removed. Membership is
// used purely to skip redundant preload attempts across instances; it is
// never consulted for rendering correctness.
type Store interface {
	// MarkPreloaded adds the locator to the shared set and refreshes its
	// cache marker with the given TTL hint.
	MarkPreloaded(ctx context.Context, locator string, ttl time.Duration) error

	// IsPreloaded reports set membership.
	IsPreloaded(ctx context.Context, locator string) (bool, error)

	// ListPreloaded returns every marked locator in lexical order.
	ListPreloaded(ctx context.Context) ([]string, error)

	// CountPreloaded returns the size of the set.
	CountPreloaded(ctx context.Context) (int, error)
}
