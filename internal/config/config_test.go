package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	for _, k := range []string{
		"PORT", "DB_DSN", "DATABASE_URL", "DOG_API_BASE_URL", "DOG_API_KEY", "API_KEY",
		"DOG_API_TIMEOUT", "DOG_API_RPS", "REDIS_ADDR", "CATALOG_CACHE_TTL",
		"RATE_LIMIT_RPS", "RATE_LIMIT_BURST", "RATE_LIMIT_TRUST_PROXY", "METRICS_ENABLED",
	} {
		t.Setenv(k, "")
	}

	cfg := Load()

	if cfg.Port != "8080" {
		t.Fatalf("expected default port 8080, got %q", cfg.Port)
	}
	if cfg.DB.DSN != "" {
		t.Fatalf("expected empty dsn, got %q", cfg.DB.DSN)
	}
	if cfg.DogAPI.BaseURL != defaultDogAPIBaseURL {
		t.Fatalf("unexpected base url %q", cfg.DogAPI.BaseURL)
	}
	if cfg.DogAPI.Timeout != 10*time.Second {
		t.Fatalf("unexpected timeout %v", cfg.DogAPI.Timeout)
	}
	if cfg.Redis.CacheTTL != 0 {
		t.Fatalf("expected cache disabled by default, got %v", cfg.Redis.CacheTTL)
	}
	if cfg.RateLimit.RPS != 0 {
		t.Fatalf("expected inbound rate limit disabled, got %v", cfg.RateLimit.RPS)
	}
	if cfg.RateLimit.TrustProxy {
		t.Fatalf("expected proxy headers untrusted by default")
	}
	if !cfg.Metrics {
		t.Fatalf("expected metrics enabled by default")
	}
}

func TestLoad_LegacyAliases(t *testing.T) {
	t.Setenv("DB_DSN", "")
	t.Setenv("DATABASE_URL", "postgres://u:p@localhost/dogs")
	t.Setenv("DOG_API_KEY", "")
	t.Setenv("API_KEY", "secret")

	cfg := Load()

	if cfg.DB.DSN != "postgres://u:p@localhost/dogs" {
		t.Fatalf("expected DATABASE_URL fallback, got %q", cfg.DB.DSN)
	}
	if cfg.DogAPI.APIKey != "secret" {
		t.Fatalf("expected API_KEY fallback, got %q", cfg.DogAPI.APIKey)
	}
}

func TestLoad_InvalidValuesFallBack(t *testing.T) {
	t.Setenv("DOG_API_TIMEOUT", "soon")
	t.Setenv("DOG_API_RPS", "-3")
	t.Setenv("RATE_LIMIT_BURST", "many")
	t.Setenv("METRICS_ENABLED", "nope")

	cfg := Load()

	if cfg.DogAPI.Timeout != defaultDogAPITimeout {
		t.Fatalf("expected default timeout, got %v", cfg.DogAPI.Timeout)
	}
	if cfg.DogAPI.RPS != defaultDogAPIRPS {
		t.Fatalf("expected default rps, got %v", cfg.DogAPI.RPS)
	}
	if cfg.RateLimit.Burst != 20 {
		t.Fatalf("expected default burst, got %d", cfg.RateLimit.Burst)
	}
	if !cfg.Metrics {
		t.Fatalf("expected metrics default on invalid bool")
	}
}

func TestLoad_TrustProxy(t *testing.T) {
	t.Setenv("RATE_LIMIT_TRUST_PROXY", "true")

	if cfg := Load(); !cfg.RateLimit.TrustProxy {
		t.Fatalf("expected RATE_LIMIT_TRUST_PROXY=true to enable proxy headers")
	}
}
