// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// JSONCache stores JSON documents under a common key prefix with a fixed TTL.
type JSONCache struct {
	client redis.Cmdable
	prefix string
	ttl    time.Duration
}

// NewJSONCache creates a cache namespace such as "cinema:movie:".
func NewJSONCache(client redis.Cmdable, prefix string, ttl time.Duration) *JSONCache {
	return &JSONCache{client: client, prefix: prefix, ttl: ttl}
}

// Key returns the full Redis key for id.
func (cache *JSONCache) Key(id string) string {
	return cache.prefix + id
}

// Get decodes the cached document into dest. It reports false on a miss.
func (cache *JSONCache) Get(ctx context.Context, id string, dest any) (bool, error) {
	payload, err := cache.client.Get(ctx, cache.Key(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("redis: get %s: %w", cache.Key(id), err)
	}

	if err := json.Unmarshal(payload, dest); err != nil {
		return false, fmt.Errorf("redis: decode %s: %w", cache.Key(id), err)
	}

	return true, nil
}

// Set stores value under id for the cache TTL.
func (cache *JSONCache) Set(ctx context.Context, id string, value any) error {
	payload, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("redis: encode %s: %w", cache.Key(id), err)
	}

	if err := cache.client.Set(ctx, cache.Key(id), payload, cache.ttl).Err(); err != nil {
		return fmt.Errorf("redis: set %s: %w", cache.Key(id), err)
	}

	return nil
}

// Delete evicts id. Evicting a missing key is not an error.
func (cache *JSONCache) Delete(ctx context.Context, id string) error {
	if err := cache.client.Del(ctx, cache.Key(id)).Err(); err != nil {
		return fmt.Errorf("redis: del %s: %w", cache.Key(id), err)
	}
	return nil
}
