package config

import (
	"reflect"
	"strings"
	"testing"
	"time"
)

// TestLoadDefaults verifies Load matches Default with no overrides set
func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !reflect.DeepEqual(cfg, Default()) {
		t.Errorf("Expected defaults %+v, got %+v", Default(), cfg)
	}
	if cfg.Server.Addr() != ":18000" {
		t.Errorf("Expected :18000, got %s", cfg.Server.Addr())
	}
}

// TestLoadOverrides verifies environment variables take precedence over defaults
func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("CORS_ORIGINS", "http://a.test,http://b.test")
	t.Setenv("RATE_LIMIT_RPS", "2.5")
	t.Setenv("EVENTS_DEFAULT_LIMIT", "0")
	t.Setenv("SIM_ENABLED", "false")
	t.Setenv("SIM_TICK_INTERVAL", "250ms")
	t.Setenv("SEED_PATH", "/tmp/world.yaml")
	t.Setenv("LOG_PRETTY", "true")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Server.Port != 9090 {
		t.Errorf("Expected port 9090, got %d", cfg.Server.Port)
	}
	if !reflect.DeepEqual(cfg.Server.CORSOrigins, []string{"http://a.test", "http://b.test"}) {
		t.Errorf("Unexpected CORS origins %v", cfg.Server.CORSOrigins)
	}
	if cfg.Server.ReadTimeout != 10*time.Second {
		t.Errorf("Unset fields should keep defaults, got %s", cfg.Server.ReadTimeout)
	}
	if cfg.RateLimit.RequestsPerSecond != 2.5 || cfg.RateLimit.Burst != 40 {
		t.Errorf("Unexpected rate limit %+v", cfg.RateLimit)
	}
	if cfg.Query.EventsDefaultLimit != 0 {
		t.Errorf("Expected events limit 0, got %d", cfg.Query.EventsDefaultLimit)
	}
	if cfg.Simulation.Enabled || cfg.Simulation.TickInterval != 250*time.Millisecond || cfg.Simulation.SeedPath != "/tmp/world.yaml" {
		t.Errorf("Unexpected simulation %+v", cfg.Simulation)
	}
	if !cfg.Observability.LogPretty || cfg.Observability.LogLevel != "info" {
		t.Errorf("Unexpected observability %+v", cfg.Observability)
	}
}

// TestLoadRejectsBadValues verifies parse and range errors surface from Load
func TestLoadRejectsBadValues(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
		want  string
	}{
		{"non-numeric port", "PORT", "http", "parse env:"},
		{"port out of range", "PORT", "70000", "PORT out of range"},
		{"bad duration", "SIM_TICK_INTERVAL", "soon", "parse env:"},
		{"zero tick", "SIM_TICK_INTERVAL", "0s", "SIM_TICK_INTERVAL"},
		{"negative limit", "EVENTS_DEFAULT_LIMIT", "-5", "EVENTS_DEFAULT_LIMIT"},
		{"zero burst", "RATE_LIMIT_BURST", "0", "rate limit"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)

			_, err := Load()
			if err == nil {
				t.Fatal("Expected error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("Expected error containing %q, got %v", tt.want, err)
			}
		})
	}
}
