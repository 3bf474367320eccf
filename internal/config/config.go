package config

import (
	"os"
)

// DefaultAPIKey is the shared-quota key baked into the server so it works
// out of the box. Set NASA_API_KEY to your own key from api.nasa.gov to
// avoid the shared rate limit.
const DefaultAPIKey = "gWIJqBXp1aTBXFaTDnd7GI9xOYlHfQBMe15cq4qd"

// Config holds all application configuration loaded from environment variables.
type Config struct {
	// Environment
	Env string // "development", "production", etc.

	// Server
	ServerAddr string

	// Upstream
	NASAAPIKey string

	// CORS
	CORSOrigins string // Comma-separated allowed origins, "*" allows all
}

// Load reads configuration from environment variables with sensible defaults.
func Load() *Config {
	return &Config{
		Env:         getEnv("ENV", "development"),
		ServerAddr:  getEnv("SERVER_ADDR", ":5001"),
		NASAAPIKey:  getEnv("NASA_API_KEY", DefaultAPIKey),
		CORSOrigins: getEnv("CORS_ORIGINS", "*"),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// IsDev returns true if the environment is set to development.
func (c *Config) IsDev() bool {
	return c.Env == "development" || c.Env == "dev"
}
