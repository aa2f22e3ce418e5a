// Copyright (c) 2026 Dicefaces. All rights reserved.
// Author: dev@dicefaces.app

package assets

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/dicewright/dicefaces/internal/platform/constants"
)

// RedisStore implements [Store] on Redis, making the preloaded set visible
// to every service instance.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore creates a Redis-backed preload store.
func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

var _ Store = (*RedisStore)(nil)

// MarkPreloaded adds the locator to the shared set and writes a per-locator
// cache marker carrying the ambient cache-duration TTL. The set entry itself
// never expires; the marker is what downstream caches key off.
func (store *RedisStore) MarkPreloaded(ctx context.Context, locator string, ttl time.Duration) error {
	if err := store.client.SAdd(ctx, constants.RedisKeyPreloaded, locator).Err(); err != nil {
		return fmt.Errorf("redis_preload_mark_failed: %w", err)
	}

	markerKey := constants.RedisPrefixAssetCache + locator
	if err := store.client.Set(ctx, markerKey, "1", ttl).Err(); err != nil {
		return fmt.Errorf("redis_preload_marker_failed: %w", err)
	}

	return nil
}

// IsPreloaded reports membership in the shared set.
func (store *RedisStore) IsPreloaded(ctx context.Context, locator string) (bool, error) {
	member, err := store.client.SIsMember(ctx, constants.RedisKeyPreloaded, locator).Result()
	if err != nil {
		return false, fmt.Errorf("redis_preload_check_failed: %w", err)
	}
	return member, nil
}

// ListPreloaded returns every marked locator, sorted for stable pagination.
func (store *RedisStore) ListPreloaded(ctx context.Context) ([]string, error) {
	members, err := store.client.SMembers(ctx, constants.RedisKeyPreloaded).Result()
	if err != nil {
		return nil, fmt.Errorf("redis_preload_list_failed: %w", err)
	}
	sort.Strings(members)
	return members, nil
}

// CountPreloaded returns the cardinality of the shared set.
func (store *RedisStore) CountPreloaded(ctx context.Context) (int, error) {
	n, err := store.client.SCard(ctx, constants.RedisKeyPreloaded).Result()
	if err != nil {
		return 0, fmt.Errorf("redis_preload_count_failed: %w", err)
	}
	return int(n), nil
}
