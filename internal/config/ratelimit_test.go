package config

import (
	"testing"
	"time"
)

func TestLoadRateLimitConfigDefaults(t *testing.T) {
	cfg := LoadRateLimitConfig()
	if !cfg.Enabled {
		t.Fatal("want rate limiting enabled by default")
	}
	if cfg.Limit != 60 || cfg.Window != time.Minute {
		t.Fatalf("unexpected defaults: limit=%d window=%s", cfg.Limit, cfg.Window)
	}
}

func TestLoadRateLimitConfigClampsSubSecondWindow(t *testing.T) {
	t.Setenv("RATE_LIMIT_WINDOW", "500ms")
	cfg := LoadRateLimitConfig()
	if cfg.Window < time.Second {
		t.Fatalf("window %s is below the one-second bucket granularity", cfg.Window)
	}
}

func TestLoadRateLimitConfigClampsZeroLimit(t *testing.T) {
	t.Setenv("RATE_LIMIT_LIMIT", "0")
	cfg := LoadRateLimitConfig()
	if cfg.Limit < 1 {
		t.Fatalf("limit %d would block every request", cfg.Limit)
	}
}
