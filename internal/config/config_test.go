package config

import (
	"testing"
	"time"
)

func TestNewConfig_Defaults(t *testing.T) {
	cfg, err := NewConfig()
	if err != nil {
		t.Fatalf("NewConfig: %v", err)
	}

	if cfg.App.Env != EnvLocal {
		t.Fatalf("got env %q, want local", cfg.App.Env)
	}
	if cfg.HTTP.Port != "8080" {
		t.Fatalf("got port %q, want 8080", cfg.HTTP.Port)
	}
	if cfg.App.Timezone != "America/Sao_Paulo" {
		t.Fatalf("got timezone %q", cfg.App.Timezone)
	}
	if cfg.Location().String() != "America/Sao_Paulo" {
		t.Fatalf("got location %q", cfg.Location())
	}
	if len(cfg.Auth.BasicClients) != 1 || cfg.Auth.BasicClients[0].Username != "schedule_slots" {
		t.Fatalf("got basic clients %+v", cfg.Auth.BasicClients)
	}
}

func TestNewConfig_EnvIsLowercased(t *testing.T) {
	t.Setenv("APP_ENV", "PRODUCTION")

	cfg, err := NewConfig()
	if err != nil {
		t.Fatalf("NewConfig: %v", err)
	}
	if cfg.App.Env != EnvProduction {
		t.Fatalf("got env %q, want production", cfg.App.Env)
	}
	if !cfg.IsNotLocal() {
		t.Fatal("production must not be local")
	}
}

func TestNewConfig_MultipleBasicClients(t *testing.T) {
	t.Setenv("AUTH_BASIC_CLIENTS", "web:secret1,mobile:secret2")

	cfg, err := NewConfig()
	if err != nil {
		t.Fatalf("NewConfig: %v", err)
	}
	if len(cfg.Auth.BasicClients) != 2 {
		t.Fatalf("got %d clients, want 2", len(cfg.Auth.BasicClients))
	}
	if cfg.Auth.BasicClients[1].Username != "mobile" || cfg.Auth.BasicClients[1].Password != "secret2" {
		t.Fatalf("got %+v", cfg.Auth.BasicClients[1])
	}
}

func TestNewConfig_CacheRequiresRabbitMQ(t *testing.T) {
	t.Setenv("CACHE_ENABLED", "true")
	t.Setenv("RABBITMQ_ENABLED", "false")

	cfg, err := NewConfig()
	if err != nil {
		t.Fatalf("NewConfig: %v", err)
	}
	if cfg.Cache.Enabled {
		t.Fatal("cache must be disabled without the event bus")
	}
}

func TestNewConfig_CacheWithRabbitMQ(t *testing.T) {
	t.Setenv("CACHE_ENABLED", "true")
	t.Setenv("RABBITMQ_ENABLED", "true")

	cfg, err := NewConfig()
	if err != nil {
		t.Fatalf("NewConfig: %v", err)
	}
	if !cfg.Cache.Enabled {
		t.Fatal("cache must stay enabled with the event bus on")
	}
	if cfg.MonthOverviewTTL() != 5*time.Minute {
		t.Fatalf("got TTL %v, want 5m", cfg.MonthOverviewTTL())
	}
}

func TestNewConfig_BadTimezone(t *testing.T) {
	t.Setenv("APP_TIMEZONE", "Not/AZone")

	if _, err := NewConfig(); err == nil {
		t.Fatal("expected an error for unknown timezone")
	}
}

func TestConfig_LocationFallback(t *testing.T) {
	cfg := &Config{}
	if cfg.Location() != time.Local {
		t.Fatal("zero config must fall back to local timezone")
	}
}
