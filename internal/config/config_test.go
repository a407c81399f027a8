package config

import (
	"errors"
	"testing"
	"time"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("APP_NAME", "jobhunter")
	t.Setenv("APP_ENV", "test")
	t.Setenv("HTTP_PORT", "8080")
	t.Setenv("AUTH_PASSWORD_HASH", "$2a$10$abcdefghijklmnopqrstuv")
	t.Setenv("JWT_ACCESS_SECRET", "access-secret")
	t.Setenv("JWT_REFRESH_SECRET", "refresh-secret")
}

func TestLoad_MissingRequired(t *testing.T) {
	t.Setenv("APP_NAME", "")
	t.Setenv("APP_ENV", "")
	t.Setenv("HTTP_PORT", "")
	t.Setenv("AUTH_PASSWORD_HASH", "")
	t.Setenv("JWT_ACCESS_SECRET", "")
	t.Setenv("JWT_REFRESH_SECRET", "")

	_, err := Load()
	if !errors.Is(err, errMissingRequiredEnv) {
		t.Fatalf("expected errMissingRequiredEnv, got %v", err)
	}
}

func TestLoad_Defaults(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("ANTHROPIC_MODEL", "")
	t.Setenv("SEARCH_CRON_SPEC", "")
	t.Setenv("JWT_ACCESS_EXPIRES_IN", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if cfg.AI.Model != "claude-sonnet-4-5" {
		t.Fatalf("unexpected default model: %s", cfg.AI.Model)
	}
	if cfg.Worker.SearchCronSpec != "@daily" {
		t.Fatalf("unexpected default cron spec: %s", cfg.Worker.SearchCronSpec)
	}
	if cfg.Auth.AccessExpiresIn != 15*time.Minute {
		t.Fatalf("unexpected default access expiry: %s", cfg.Auth.AccessExpiresIn)
	}
}

func TestLoad_DurationOverride(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("JWT_ACCESS_EXPIRES_IN", "30m")
	t.Setenv("DB_POOL_MAX_CONNS", "8")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if cfg.Auth.AccessExpiresIn != 30*time.Minute {
		t.Fatalf("expected 30m, got %s", cfg.Auth.AccessExpiresIn)
	}
	if cfg.Database.PoolMaxConns != 8 {
		t.Fatalf("expected 8 max conns, got %d", cfg.Database.PoolMaxConns)
	}
}
