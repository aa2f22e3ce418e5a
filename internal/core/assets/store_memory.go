// Copyright (c) 2026 Dicefaces. All rights reserved.
// Author: dev@dicefaces.app

package assets

import (
	"context"
	"sort"
	"sync"
	"time"
)

// MemoryStore implements [Store] in process memory. It is the fallback when
// no Redis is configured; the set is then local to one instance.
type MemoryStore struct {
	mu       sync.RWMutex
	locators map[string]struct{}
}

// NewMemoryStore creates an empty in-process preload store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{locators: make(map[string]struct{})}
}

var _ Store = (*MemoryStore)(nil)

// MarkPreloaded adds the locator to the set. The TTL hint is meaningless
// without an external cache and is ignored.
func (store *MemoryStore) MarkPreloaded(_ context.Context, locator string, _ time.Duration) error {
	store.mu.Lock()
	defer store.mu.Unlock()
	store.locators[locator] = struct{}{}
	return nil
}

// IsPreloaded reports membership.
func (store *MemoryStore) IsPreloaded(_ context.Context, locator string) (bool, error) {
	store.mu.RLock()
	defer store.mu.RUnlock()
	_, ok := store.locators[locator]
	return ok, nil
}

// ListPreloaded returns every marked locator, sorted for stable pagination.
func (store *MemoryStore) ListPreloaded(_ context.Context) ([]string, error) {
	store.mu.RLock()
	defer store.mu.RUnlock()

	out := make([]string, 0, len(store.locators))
	for locator := range store.locators {
		out = append(out, locator)
	}
	sort.Strings(out)
	return out, nil
}

// CountPreloaded returns the size of the set.
func (store *MemoryStore) CountPreloaded(_ context.Context) (int, error) {
	store.mu.RLock()
	defer store.mu.RUnlock()
	return len(store.locators), nil
}
