package config

import (
	"testing"
	"time"
)

func TestLoadConfigDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "SEARCH_DEPTH", "DATABASE_URL", "DATABASE_URI", "ALLOWED_ORIGINS", "SESSION_TTL_MINUTES"} {
		t.Setenv(key, "")
	}

	cfg := LoadConfig()
	if cfg.Port != "8000" {
		t.Errorf("Port = %q", cfg.Port)
	}
	if cfg.SearchDepth != 5 {
		t.Errorf("SearchDepth = %d", cfg.SearchDepth)
	}
	if cfg.DatabaseURL != "" {
		t.Errorf("DatabaseURL = %q", cfg.DatabaseURL)
	}
	if cfg.SessionTTL != 24*time.Hour {
		t.Errorf("SessionTTL = %v", cfg.SessionTTL)
	}
	if len(cfg.AllowedOrigins) != 2 {
		t.Errorf("AllowedOrigins = %v", cfg.AllowedOrigins)
	}
	if AppConfig != cfg {
		t.Errorf("AppConfig not set")
	}
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("SEARCH_DEPTH", "7")
	t.Setenv("ALLOWED_ORIGINS", " https://a.example , ,https://b.example")
	t.Setenv("LOG_PRETTY", "true")

	cfg := LoadConfig()
	if cfg.SearchDepth != 7 {
		t.Errorf("SearchDepth = %d", cfg.SearchDepth)
	}
	want := []string{cfg.FrontendURL, "http://localhost:5173", "https://a.example", "https://b.example"}
	if len(cfg.AllowedOrigins) != len(want) {
		t.Fatalf("AllowedOrigins = %v", cfg.AllowedOrigins)
	}
	for i := range want {
		if cfg.AllowedOrigins[i] != want[i] {
			t.Errorf("AllowedOrigins[%d] = %q, want %q", i, cfg.AllowedOrigins[i], want[i])
		}
	}
	if !cfg.LogPretty {
		t.Errorf("LogPretty = false")
	}
}

func TestSearchDepthClamped(t *testing.T) {
	t.Setenv("SEARCH_DEPTH", "0")
	if cfg := LoadConfig(); cfg.SearchDepth != 1 {
		t.Errorf("SearchDepth = %d, want 1", cfg.SearchDepth)
	}
}

func TestGetEnvFallbacks(t *testing.T) {
	t.Setenv("C4_INT", "abc")
	t.Setenv("C4_BOOL", "maybe")
	if got := GetEnvAsInt("C4_INT", 3); got != 3 {
		t.Errorf("GetEnvAsInt = %d", got)
	}
	if got := GetEnvAsBool("C4_BOOL", true); !got {
		t.Errorf("GetEnvAsBool = %v", got)
	}
	if got := GetEnv("C4_MISSING", "x"); got != "x" {
		t.Errorf("GetEnv = %q", got)
	}
}
