package config

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Server   ServerConfig
	Provider ProviderConfig
	Astro    AstroConfig
	Redis    RedisConfig
	App      AppConfig
}

type ServerConfig struct {
	Port string
}

// ProviderConfig holds the credentials and endpoints for the upstream
// astrology data provider.
type ProviderConfig struct {
	ClientID       string
	ClientSecret   string
	TokenURL       string
	BaseURL        string
	TimeoutSeconds int
	RatePerSecond  float64
}

// AstroConfig holds request defaults applied when the caller omits them.
// The reference city is Ujjain, the traditional origin for panchang
// calculations.
type AstroConfig struct {
	DefaultLatitude  float64
	DefaultLongitude float64
	Ayanamsa         string
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

type AppConfig struct {
	Environment string
	LogLevel    string
	Version     string
}

func Load() (*Config, error) {
	// Load .env file if it exists (ignore error in production)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := &Config{
		Server: ServerConfig{
			Port: getEnv("PORT", "8080"),
		},
		Provider: ProviderConfig{
			ClientID:       getEnv("PROVIDER_CLIENT_ID", ""),
			ClientSecret:   getEnv("PROVIDER_CLIENT_SECRET", ""),
			TokenURL:       getEnv("PROVIDER_TOKEN_URL", "https://api.prokerala.com/token"),
			BaseURL:        getEnv("PROVIDER_BASE_URL", "https://api.prokerala.com/v2/astrology"),
			TimeoutSeconds: getEnvAsInt("PROVIDER_TIMEOUT_SECONDS", 10),
			RatePerSecond:  getEnvAsFloat("PROVIDER_RATE_PER_SECOND", 5),
		},
		Astro: AstroConfig{
			DefaultLatitude:  getEnvAsFloat("DEFAULT_LATITUDE", 23.1765),
			DefaultLongitude: getEnvAsFloat("DEFAULT_LONGITUDE", 75.7885),
			Ayanamsa:         getEnv("DEFAULT_AYANAMSA", "1"),
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", ""),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvAsInt("REDIS_DB", 0),
		},
		App: AppConfig{
			Environment: getEnv("APP_ENV", "development"),
			LogLevel:    getEnv("LOG_LEVEL", "info"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("PORT is required")
	}

	if c.Provider.ClientID == "" {
		return fmt.Errorf("PROVIDER_CLIENT_ID is required")
	}

	if c.Provider.ClientSecret == "" {
		return fmt.Errorf("PROVIDER_CLIENT_SECRET is required")
	}

	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid integer for %s, using default: %d", key, defaultValue)
		return defaultValue
	}

	return value
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		log.Printf("Warning: Invalid number for %s, using default: %g", key, defaultValue)
		return defaultValue
	}

	return value
}
