// README: Config loader with env defaults for HTTP, Redis cache, and the LLM key.
package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	HTTP struct {
		Addr string
	}
	Redis struct {
		// Addr empty means the itinerary cache is disabled.
		Addr     string
		CacheTTL time.Duration
	}
	AI struct {
		GeminiKey string
	}
}

func Load() (Config, error) {
	var cfg Config
	cfg.HTTP.Addr = envOrDefault("YATRA_HTTP_ADDR", ":8080")
	cfg.Redis.Addr = envOrDefault("YATRA_REDIS_ADDR", "")
	cfg.Redis.CacheTTL = time.Duration(envOrDefaultInt("YATRA_CACHE_TTL_MINUTES", 60)) * time.Minute
	cfg.AI.GeminiKey = envOrError("GEMINI_API_KEY")
	return cfg, nil
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envOrError(key string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	panic("environment variable " + key + " is required")
}

func envOrDefaultInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}
