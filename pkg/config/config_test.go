package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := Load()

	if cfg.Port != "8080" {
		t.Fatalf("default port: got %q", cfg.Port)
	}
	if cfg.AccessTokenTTL != 60*time.Minute {
		t.Fatalf("default token TTL: got %v", cfg.AccessTokenTTL)
	}
	if cfg.JWTSecret == "" {
		t.Fatal("secret must never be empty")
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("ACCESS_TOKEN_EXPIRE_MINUTES", "15")
	t.Setenv("JWT_SECRET", "from-env")

	cfg := Load()

	if cfg.Port != "9090" {
		t.Fatalf("port override: got %q", cfg.Port)
	}
	if cfg.AccessTokenTTL != 15*time.Minute {
		t.Fatalf("ttl override: got %v", cfg.AccessTokenTTL)
	}
	if cfg.JWTSecret != "from-env" {
		t.Fatalf("secret override: got %q", cfg.JWTSecret)
	}
}

func TestLoad_BadIntFallsBack(t *testing.T) {
	t.Setenv("ACCESS_TOKEN_EXPIRE_MINUTES", "not-a-number")

	cfg := Load()
	if cfg.AccessTokenTTL != 60*time.Minute {
		t.Fatalf("bad int should fall back to default, got %v", cfg.AccessTokenTTL)
	}
}
