package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if cfg.App.Addr() == "" {
		t.Error("empty bind address")
	}
	if cfg.Auth.CookieName == "" {
		t.Error("empty cookie name")
	}
	if cfg.Auth.SessionTTL() <= 0 {
		t.Error("non-positive session TTL")
	}
	if cfg.Tenant.RegistryCacheTTL <= 0 {
		t.Error("non-positive registry cache TTL")
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("APP_PORT", "9090")
	t.Setenv("AUTH_SESSION_TTL_MINUTES", "60")
	t.Setenv("REDIS_DB", "3")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if !cfg.App.IsProduction() {
		t.Error("APP_ENV=production not detected")
	}
	if cfg.App.Port != "9090" {
		t.Errorf("port = %q", cfg.App.Port)
	}
	if cfg.Auth.SessionTTL() != time.Hour {
		t.Errorf("session TTL = %v, want 1h", cfg.Auth.SessionTTL())
	}
	if cfg.Redis.DB != 3 {
		t.Errorf("redis db = %d", cfg.Redis.DB)
	}
}

func TestLoadRejectsBadRedisDB(t *testing.T) {
	t.Setenv("REDIS_DB", "not-a-number")
	if _, err := Load(); err == nil {
		t.Fatal("invalid REDIS_DB accepted")
	}
}

func TestDurationFallbacks(t *testing.T) {
	if (AuthConfig{}).SessionTTL() != 12*time.Hour {
		t.Error("zero session TTL must fall back to 12h")
	}
	if (IdentityConfig{}).CallTimeout() != 5*time.Second {
		t.Error("zero call timeout must fall back to 5s")
	}
	if (AppConfig{RequestTimeoutSeconds: 15}).RequestTimeout() != 15*time.Second {
		t.Error("request timeout not derived from seconds")
	}
}
