package provider

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// Credential is a bearer token paired with the instant it stops being safe to
// use. ExpiresAt already includes the safety buffer, so a credential is either
// usable as-is or due for a fresh exchange.
type Credential struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

func (c Credential) Valid(now time.Time) bool {
	return c.Token != "" && now.Before(c.ExpiresAt)
}

// CredentialCache stores the provider credential between requests. Two
// concurrent callers racing past an expired entry may both exchange and both
// Set; the last writer wins and both tokens stay valid upstream, so the race
// is benign.
type CredentialCache interface {
	Get() (Credential, bool)
	Set(Credential)
	Invalidate()
}

// MemoryCache keeps the credential in process memory. This is the default.
type MemoryCache struct {
	mu   sync.Mutex
	cred Credential
	ok   bool
}

func NewMemoryCache() *MemoryCache {
	return &MemoryCache{}
}

func (m *MemoryCache) Get() (Credential, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.cred, m.ok
}

func (m *MemoryCache) Set(c Credential) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.cred = c
	m.ok = true
}

func (m *MemoryCache) Invalidate() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.cred = Credential{}
	m.ok = false
}

const redisCredentialKey = "astro:provider:credential"

// RedisCache shares the credential between replicas so only one of them pays
// for the token exchange. Redis errors are treated as cache misses; the
// caller falls through to a fresh exchange.
type RedisCache struct {
	client *redis.Client
	ctx    context.Context
}

func NewRedisCache(client *redis.Client) *RedisCache {
	return &RedisCache{
		client: client,
		ctx:    context.Background(),
	}
}

func (r *RedisCache) Get() (Credential, bool) {
	data, err := r.client.Get(r.ctx, redisCredentialKey).Result()
	if err != nil {
		return Credential{}, false
	}

	var cred Credential
	if err := json.Unmarshal([]byte(data), &cred); err != nil {
		return Credential{}, false
	}
	return cred, true
}

func (r *RedisCache) Set(c Credential) {
	ttl := time.Until(c.ExpiresAt)
	if ttl <= 0 {
		return
	}

	data, err := json.Marshal(c)
	if err != nil {
		return
	}
	r.client.Set(r.ctx, redisCredentialKey, data, ttl)
}

func (r *RedisCache) Invalidate() {
	r.client.Del(r.ctx, redisCredentialKey)
}
