package config

import (
	"testing"
	"time"
)

func TestNewConfig_Defaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("SERVER_PORT", "")
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("SUPABASE_URL", "")
	t.Setenv("SUPABASE_SERVICE_KEY", "")
	t.Setenv("REVIEW_SESSION_TTL_HOURS", "")

	cfg := NewConfig()

	if cfg.GetServerPort() != "8080" {
		t.Fatalf("expected default server port 8080, got %s", cfg.GetServerPort())
	}
	if cfg.GetLogLevel() != "info" {
		t.Fatalf("expected default log level info, got %s", cfg.GetLogLevel())
	}
	if cfg.GetSupabaseURL() != "" {
		t.Fatalf("expected default supabase url empty, got %s", cfg.GetSupabaseURL())
	}
	if cfg.GetSupabaseKey() != "" {
		t.Fatalf("expected default supabase key empty, got %s", cfg.GetSupabaseKey())
	}
	if cfg.GetSessionIdleThreshold() != 24*time.Hour {
		t.Fatalf("expected default session idle threshold 24h, got %s", cfg.GetSessionIdleThreshold())
	}
}

func TestNewConfig_Overrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("SERVER_PORT", "7070")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("SUPABASE_URL", "http://localhost:54321")
	t.Setenv("SUPABASE_SERVICE_KEY", "test-key")
	t.Setenv("REVIEW_SESSION_TTL_HOURS", "48")

	cfg := NewConfig()

	if cfg.GetServerPort() != "9090" {
		t.Fatalf("expected server port 9090, got %s", cfg.GetServerPort())
	}
	if cfg.GetLogLevel() != "debug" {
		t.Fatalf("expected log level debug, got %s", cfg.GetLogLevel())
	}
	if cfg.GetSupabaseURL() != "http://localhost:54321" {
		t.Fatalf("expected supabase url http://localhost:54321, got %s", cfg.GetSupabaseURL())
	}
	if cfg.GetSupabaseKey() != "test-key" {
		t.Fatalf("expected supabase key test-key, got %s", cfg.GetSupabaseKey())
	}
	if cfg.GetSessionIdleThreshold() != 48*time.Hour {
		t.Fatalf("expected session idle threshold 48h, got %s", cfg.GetSessionIdleThreshold())
	}
}

func TestNewConfig_Fallbacks(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("SERVER_PORT", "9091")
	t.Setenv("REVIEW_SESSION_TTL_HOURS", "not-a-number")

	cfg := NewConfig()

	if cfg.GetServerPort() != "9091" {
		t.Fatalf("expected server port 9091, got %s", cfg.GetServerPort())
	}
	if cfg.GetSessionIdleThreshold() != 24*time.Hour {
		t.Fatalf("expected fallback session idle threshold 24h, got %s", cfg.GetSessionIdleThreshold())
	}
}
