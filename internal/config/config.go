package config

import (
	"os"
	"strconv"
	"time"

	"freewise-server/internal/domain"
)

// AppConfig implements the domain.Config interface
type AppConfig struct {
	ServerPort           string
	LogLevel             string
	SupabaseURL          string
	SupabaseKey          string
	SessionIdleThreshold time.Duration
}

// NewConfig creates a new configuration instance with default values
func NewConfig() domain.Config {
	return &AppConfig{
		// Cloud Run (and many PaaS) provide the listening port via PORT.
		// Keep SERVER_PORT for local/dev compatibility.
		ServerPort:           getEnvOrDefault("PORT", getEnvOrDefault("SERVER_PORT", "8080")),
		LogLevel:             getEnvOrDefault("LOG_LEVEL", "info"),
		SupabaseURL:          getEnvOrDefault("SUPABASE_URL", ""),
		SupabaseKey:          getEnvOrDefault("SUPABASE_SERVICE_KEY", ""),
		SessionIdleThreshold: time.Duration(getEnvIntOrDefault("REVIEW_SESSION_TTL_HOURS", 24)) * time.Hour,
	}
}

// GetServerPort returns the server port
func (c *AppConfig) GetServerPort() string {
	return c.ServerPort
}

// GetLogLevel returns the logging level
func (c *AppConfig) GetLogLevel() string {
	return c.LogLevel
}

// GetSupabaseURL returns the Supabase URL
func (c *AppConfig) GetSupabaseURL() string {
	return c.SupabaseURL
}

// GetSupabaseKey returns the Supabase service key
func (c *AppConfig) GetSupabaseKey() string {
	return c.SupabaseKey
}

// GetSessionIdleThreshold returns how long a review pass stays resumable
func (c *AppConfig) GetSessionIdleThreshold() time.Duration {
	return c.SessionIdleThreshold
}

// Helper functions for environment variable handling
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
