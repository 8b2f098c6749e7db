package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	// Server
	Port string
	Env  string

	// Reka Vision API. APIKey and BaseURL are deliberately optional here:
	// their absence is reported per request by the call sites, matching the
	// deployed behavior, instead of refusing to boot.
	APIKey          string
	BaseURL         string
	VideoQAEndpoint string

	// Video list cache
	CacheTTLSeconds int

	// API rate limiting
	RateLimitPerMin int
}

func Load() *Config {
	// Load .env file if it exists
	godotenv.Load()

	cfg := &Config{
		Port:            getEnvOrDefault("PORT", "8080"),
		Env:             getEnvOrDefault("ENV", "development"),
		APIKey:          os.Getenv("API_KEY"),
		BaseURL:         strings.TrimRight(os.Getenv("BASE_URL"), "/"),
		VideoQAEndpoint: os.Getenv("REKA_VIDEO_QA_ENDPOINT"),
		CacheTTLSeconds: getEnvAsIntOrDefault("VIDEO_CACHE_TTL_SECONDS", 60),
		RateLimitPerMin: getEnvAsIntOrDefault("API_RATE_LIMIT_PER_MINUTE", 60),
	}

	return cfg
}

func getEnvOrDefault(key, defaultVal string) string {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	return val
}

func getEnvAsIntOrDefault(key string, defaultVal int) int {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		return defaultVal
	}
	return n
}
