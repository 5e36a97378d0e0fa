package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned unexpected error: %v", err)
	}

	if cfg.App.Env != AppEnvDev {
		t.Fatalf("expected App.Env to default to %q, got %q", AppEnvDev, cfg.App.Env)
	}

	if cfg.App.Port != "8000" {
		t.Fatalf("expected default port 8000, got %q", cfg.App.Port)
	}

	if got := cfg.Server.ReadTimeout; got != 10*time.Second {
		t.Fatalf("expected read timeout 10s, got %v", got)
	}

	if len(cfg.CORS.AllowedOrigins) != 1 || cfg.CORS.AllowedOrigins[0] != "http://localhost:3000" {
		t.Fatalf("unexpected default CORS origins: %v", cfg.CORS.AllowedOrigins)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv(EnvAppEnv, "production")
	t.Setenv(EnvPort, "9090")
	t.Setenv(EnvCORSOrigins, "https://a.example.com,https://b.example.com")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned unexpected error: %v", err)
	}

	if !cfg.App.IsProd() {
		t.Fatalf("expected IsProd() for env %q", cfg.App.Env)
	}
	if cfg.App.IsDev() {
		t.Fatal("expected IsDev() to be false in production")
	}
	if cfg.App.Port != "9090" {
		t.Fatalf("expected port 9090, got %q", cfg.App.Port)
	}
	if len(cfg.CORS.AllowedOrigins) != 2 {
		t.Fatalf("expected 2 CORS origins, got %v", cfg.CORS.AllowedOrigins)
	}
}

func TestLoad_InvalidDuration(t *testing.T) {
	t.Setenv("ITEMSTORE_SERVER_READ_TIMEOUT", "not-a-duration")

	if _, err := Load(); err == nil {
		t.Fatal("expected invalid duration to return an error")
	}
}
