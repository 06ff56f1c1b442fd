package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.HTTPAddr != ":8080" {
		t.Errorf("expected default addr :8080, got %q", cfg.HTTPAddr)
	}
	if cfg.ShutdownTimeout != 15*time.Second {
		t.Errorf("expected default shutdown timeout 15s, got %v", cfg.ShutdownTimeout)
	}
	if cfg.RateLimitBurst != 20 {
		t.Errorf("expected default burst 20, got %d", cfg.RateLimitBurst)
	}
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("CATALOG_HTTP_ADDR", ":9090")
	t.Setenv("CATALOG_RATE_LIMIT_BURST", "5")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.HTTPAddr != ":9090" {
		t.Errorf("expected addr :9090 from environment, got %q", cfg.HTTPAddr)
	}
	if cfg.RateLimitBurst != 5 {
		t.Errorf("expected burst 5 from environment, got %d", cfg.RateLimitBurst)
	}
}
