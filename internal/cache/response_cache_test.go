package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type record struct {
	Date  string `json:"date"`
	Tithi string `json:"tithi"`
}

func newTestCache(t *testing.T, ttl time.Duration) (*ResponseCache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return New(client, ttl), mr
}

func TestKey(t *testing.T) {
	assert.Equal(t, "astro:resp:panchang:2024-10-09:23.1765,75.7885",
		Key("panchang", "2024-10-09", "23.1765,75.7885"))
}

func TestResponseCache_RoundTrip(t *testing.T) {
	c, _ := newTestCache(t, time.Hour)
	ctx := context.Background()
	key := Key("panchang", "2024-10-09")

	var missed record
	assert.False(t, c.Get(ctx, key, &missed))

	c.Set(ctx, key, record{Date: "Wednesday, October 9, 2024", Tithi: "Shashthi"})

	var got record
	require.True(t, c.Get(ctx, key, &got))
	assert.Equal(t, "Wednesday, October 9, 2024", got.Date)
	assert.Equal(t, "Shashthi", got.Tithi)
}

func TestResponseCache_Expiry(t *testing.T) {
	c, mr := newTestCache(t, time.Minute)
	ctx := context.Background()
	key := Key("calendar", "2024-10-09")

	c.Set(ctx, key, record{Tithi: "Saptami"})
	mr.FastForward(2 * time.Minute)

	var got record
	assert.False(t, c.Get(ctx, key, &got))
}

func TestResponseCache_CorruptEntryIsMiss(t *testing.T) {
	c, mr := newTestCache(t, time.Hour)
	key := Key("panchang", "bad")
	require.NoError(t, mr.Set(key, "{not json"))

	var got record
	assert.False(t, c.Get(context.Background(), key, &got))
}

func TestResponseCache_NilIsNoop(t *testing.T) {
	var c *ResponseCache
	ctx := context.Background()

	c.Set(ctx, Key("panchang", "x"), record{Tithi: "Ashtami"})

	var got record
	assert.False(t, c.Get(ctx, Key("panchang", "x"), &got))
}

func TestNew_DefaultTTL(t *testing.T) {
	c := New(nil, 0)
	assert.Equal(t, DefaultTTL, c.ttl)
}
