// Package cache provides a small Redis-backed TTL cache for normalized
// provider responses. A panchang for a given date and place does not change
// during the day, so serving it from Redis saves the provider quota.
package cache

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "astro:resp:"

// DefaultTTL is how long a cached response stays fresh.
const DefaultTTL = 1 * time.Hour

// ResponseCache caches normalized records by request key. A nil
// *ResponseCache is valid and behaves as a cache that never hits, so callers
// without Redis configured need no branching.
type ResponseCache struct {
	client *redis.Client
	ttl    time.Duration
}

func New(client *redis.Client, ttl time.Duration) *ResponseCache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &ResponseCache{client: client, ttl: ttl}
}

// Key builds a cache key from the request's identifying parts.
func Key(parts ...string) string {
	return keyPrefix + strings.Join(parts, ":")
}

// Get loads a cached record into out. Any Redis or decode error is a miss.
func (c *ResponseCache) Get(ctx context.Context, key string, out any) bool {
	if c == nil || c.client == nil {
		return false
	}

	data, err := c.client.Get(ctx, key).Result()
	if err != nil {
		return false
	}
	return json.Unmarshal([]byte(data), out) == nil
}

// Set stores a record under key. Errors are dropped: the cache is an
// optimization, never a dependency.
func (c *ResponseCache) Set(ctx context.Context, key string, v any) {
	if c == nil || c.client == nil {
		return
	}

	data, err := json.Marshal(v)
	if err != nil {
		return
	}
	c.client.Set(ctx, key, data, c.ttl)
}
