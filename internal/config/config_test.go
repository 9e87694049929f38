package config_test

import (
	"testing"

	"client-scheduler/internal/config"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"ADDR", "AUDIT_LOG", "AUTH_SCHEME", "DB_ACTOR", "LOGIN_RPS", "LOGIN_BURST"} {
		t.Setenv(key, "")
	}

	cfg := config.Load()
	if cfg.Addr != ":8080" {
		t.Errorf("addr: got %s", cfg.Addr)
	}
	if cfg.AuditLog != "login_activity.txt" {
		t.Errorf("audit log: got %s", cfg.AuditLog)
	}
	if cfg.AuthScheme != "plain" {
		t.Errorf("auth scheme: got %s", cfg.AuthScheme)
	}
	if cfg.Actor != "app" {
		t.Errorf("actor: got %s", cfg.Actor)
	}
	if cfg.LoginRPS != 5 || cfg.LoginBurst != 10 {
		t.Errorf("limiter defaults: got %v/%d", cfg.LoginRPS, cfg.LoginBurst)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("ADDR", ":9999")
	t.Setenv("AUTH_SCHEME", "bcrypt")
	t.Setenv("LOGIN_BURST", "3")

	cfg := config.Load()
	if cfg.Addr != ":9999" {
		t.Errorf("addr: got %s", cfg.Addr)
	}
	if cfg.AuthScheme != "bcrypt" {
		t.Errorf("auth scheme: got %s", cfg.AuthScheme)
	}
	if cfg.LoginBurst != 3 {
		t.Errorf("burst: got %d", cfg.LoginBurst)
	}
}

func TestLoadIgnoresMalformedNumbers(t *testing.T) {
	t.Setenv("LOGIN_RPS", "not-a-number")
	t.Setenv("LOGIN_BURST", "many")

	cfg := config.Load()
	if cfg.LoginRPS != 5 || cfg.LoginBurst != 10 {
		t.Errorf("expected fallbacks, got %v/%d", cfg.LoginRPS, cfg.LoginBurst)
	}
}
