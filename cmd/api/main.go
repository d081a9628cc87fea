package main

import (
	"context"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/AstroMantra/astro-backend/config"
	"github.com/AstroMantra/astro-backend/internal/bootstrap"
	"github.com/AstroMantra/astro-backend/internal/cache"
	"github.com/AstroMantra/astro-backend/internal/provider"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	bootstrap.SetGinMode(cfg.App.Environment)

	ctx := context.Background()

	var rdb *redis.Client
	if cfg.Redis.Addr != "" {
		rdb, err = bootstrap.OpenRedis(ctx, bootstrap.RedisOptions{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			// The service degrades to per-process caching without Redis.
			log.Printf("redis unavailable, continuing without it: %v", err)
			rdb = nil
		}
	}

	var credCache provider.CredentialCache = provider.NewMemoryCache()
	if rdb != nil {
		credCache = provider.NewRedisCache(rdb)
	}

	tokens := provider.NewTokenSource(
		cfg.Provider.TokenURL,
		cfg.Provider.ClientID,
		cfg.Provider.ClientSecret,
		credCache,
	)

	client := provider.NewClient(provider.ClientOptions{
		BaseURL:       cfg.Provider.BaseURL,
		Timeout:       time.Duration(cfg.Provider.TimeoutSeconds) * time.Second,
		RatePerSecond: cfg.Provider.RatePerSecond,
	}, tokens)

	var respCache *cache.ResponseCache
	if rdb != nil {
		respCache = cache.New(rdb, cache.DefaultTTL)
	}

	r := bootstrap.BuildRouter(bootstrap.RouterDeps{
		ServiceName: "astro-backend",
		Version:     cfg.App.Version,
		Astro:       cfg.Astro,
		Provider:    client,
		Cache:       respCache,
		Redis:       rdb,
	})

	log.Printf("listening on :%s", cfg.Server.Port)
	log.Fatal(r.Run(":" + cfg.Server.Port))
}
