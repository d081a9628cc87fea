package bootstrap

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/AstroMantra/astro-backend/config"
	httpapi "github.com/AstroMantra/astro-backend/internal/api/http"
	"github.com/AstroMantra/astro-backend/internal/api/http/middleware"
	"github.com/AstroMantra/astro-backend/internal/cache"
	"github.com/AstroMantra/astro-backend/internal/horoscope"
	horoscopehttp "github.com/AstroMantra/astro-backend/internal/horoscope/http"
	"github.com/AstroMantra/astro-backend/internal/matching"
	matchinghttp "github.com/AstroMantra/astro-backend/internal/matching/http"
	"github.com/AstroMantra/astro-backend/internal/numerology"
	numerologyhttp "github.com/AstroMantra/astro-backend/internal/numerology/http"
	"github.com/AstroMantra/astro-backend/internal/panchang"
	panchanghttp "github.com/AstroMantra/astro-backend/internal/panchang/http"
	"github.com/AstroMantra/astro-backend/internal/provider"
)

type RouterDeps struct {
	ServiceName string
	Version     string
	Astro       config.AstroConfig
	Provider    *provider.Client
	Cache       *cache.ResponseCache
	Redis       *redis.Client
}

func BuildRouter(dep RouterDeps) *gin.Engine {
	r := gin.Default()
	r.Use(cors.Default())

	healthHandler := httpapi.NewHealthHandler(dep.ServiceName, dep.Version, dep.Redis)
	healthHandler.RegisterRoutes(r)

	api := r.Group("/api/v1")
	api.Use(middleware.RequestIDMiddleware())

	panchanghttp.New(panchang.NewService(dep.Provider, dep.Cache), dep.Astro).Register(api)
	horoscopehttp.New(horoscope.NewService(dep.Provider), dep.Astro).Register(api)
	matchinghttp.New(matching.NewService(dep.Provider), dep.Astro).Register(api)
	numerologyhttp.New(numerology.NewService(dep.Provider)).Register(api)

	return r
}

func SetGinMode(env string) {
	if env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
}
