// Package config provides centralized configuration management.
// Every tunable of the server lives here.
//
// Each section has a DefaultX constructor holding the built-in values and an
// XFromEnv variant that applies environment overrides on top of them.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// =============================================================================
// SERVER CONFIGURATION
// =============================================================================

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port            int           `env:"PORT"`
	ReadTimeout     time.Duration `env:"HTTP_READ_TIMEOUT"`
	WriteTimeout    time.Duration `env:"HTTP_WRITE_TIMEOUT"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT"`
	CORSOrigins     []string      `env:"CORS_ORIGINS" envSeparator:","`
}

// DefaultServer returns the default server configuration.
func DefaultServer() ServerConfig {
	return ServerConfig{
		Port:            18000,
		ReadTimeout:     10 * time.Second,
		WriteTimeout:    10 * time.Second,
		ShutdownTimeout: 10 * time.Second,
	}
}

// ServerFromEnv returns server configuration with environment variable overrides.
func ServerFromEnv() (ServerConfig, error) {
	cfg := DefaultServer()
	if err := parseEnv(&cfg); err != nil {
		return cfg, err
	}
	if cfg.Port <= 0 || cfg.Port > 65535 {
		return cfg, fmt.Errorf("PORT out of range: %d", cfg.Port)
	}
	return cfg, nil
}

// Addr is the listen address for the API server.
func (c ServerConfig) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}

// =============================================================================
// RATE LIMIT CONFIGURATION
// =============================================================================

// RateLimitConfig controls per-IP request throttling.
type RateLimitConfig struct {
	RequestsPerSecond float64       `env:"RATE_LIMIT_RPS"`
	Burst             int           `env:"RATE_LIMIT_BURST"`
	CleanupInterval   time.Duration `env:"RATE_LIMIT_CLEANUP"`
}

// DefaultRateLimit returns the default rate limit configuration.
func DefaultRateLimit() RateLimitConfig {
	return RateLimitConfig{
		RequestsPerSecond: 20,
		Burst:             40,
		CleanupInterval:   5 * time.Minute,
	}
}

// RateLimitFromEnv returns rate limit configuration with environment variable overrides.
func RateLimitFromEnv() (RateLimitConfig, error) {
	cfg := DefaultRateLimit()
	if err := parseEnv(&cfg); err != nil {
		return cfg, err
	}
	if cfg.RequestsPerSecond <= 0 || cfg.Burst <= 0 {
		return cfg, fmt.Errorf("rate limit must be positive, got %v/s burst %d", cfg.RequestsPerSecond, cfg.Burst)
	}
	return cfg, nil
}

// =============================================================================
// QUERY CONFIGURATION
// =============================================================================

// QueryConfig holds projection query defaults.
type QueryConfig struct {
	EventsDefaultLimit int `env:"EVENTS_DEFAULT_LIMIT"`
}

// DefaultQuery returns the default query configuration.
func DefaultQuery() QueryConfig {
	return QueryConfig{EventsDefaultLimit: 50}
}

// QueryFromEnv returns query configuration with environment variable overrides.
func QueryFromEnv() (QueryConfig, error) {
	cfg := DefaultQuery()
	if err := parseEnv(&cfg); err != nil {
		return cfg, err
	}
	if cfg.EventsDefaultLimit < 0 {
		return cfg, fmt.Errorf("EVENTS_DEFAULT_LIMIT must not be negative, got %d", cfg.EventsDefaultLimit)
	}
	return cfg, nil
}

// =============================================================================
// SIMULATION CONFIGURATION
// =============================================================================

// SimulationConfig controls world loading and the date advancer.
type SimulationConfig struct {
	SeedPath     string        `env:"SEED_PATH"`
	Enabled      bool          `env:"SIM_ENABLED"`
	TickInterval time.Duration `env:"SIM_TICK_INTERVAL"`
	DaysPerTick  int           `env:"SIM_DAYS_PER_TICK"`
}

// DefaultSimulation returns the default simulation configuration.
func DefaultSimulation() SimulationConfig {
	return SimulationConfig{
		SeedPath:     "data/world.yaml",
		Enabled:      true,
		TickInterval: 30 * time.Second,
		DaysPerTick:  1,
	}
}

// SimulationFromEnv returns simulation configuration with environment variable overrides.
func SimulationFromEnv() (SimulationConfig, error) {
	cfg := DefaultSimulation()
	if err := parseEnv(&cfg); err != nil {
		return cfg, err
	}
	if cfg.TickInterval <= 0 {
		return cfg, fmt.Errorf("SIM_TICK_INTERVAL must be positive, got %s", cfg.TickInterval)
	}
	if cfg.DaysPerTick <= 0 {
		return cfg, fmt.Errorf("SIM_DAYS_PER_TICK must be positive, got %d", cfg.DaysPerTick)
	}
	return cfg, nil
}

// =============================================================================
// OBSERVABILITY CONFIGURATION
// =============================================================================

// ObservabilityConfig controls the private debug server and logging.
type ObservabilityConfig struct {
	DebugEnabled bool   `env:"DEBUG_SERVER_ENABLED"`
	DebugAddr    string `env:"DEBUG_SERVER_ADDR"`
	DebugUser    string `env:"DEBUG_BASIC_AUTH_USER"`
	DebugPass    string `env:"DEBUG_BASIC_AUTH_PASS"`
	LogLevel     string `env:"LOG_LEVEL"`
	LogPretty    bool   `env:"LOG_PRETTY"`
}

// DefaultObservability returns the default observability configuration.
func DefaultObservability() ObservabilityConfig {
	return ObservabilityConfig{
		DebugEnabled: true,
		DebugAddr:    "127.0.0.1:6060",
		LogLevel:     "info",
	}
}

// ObservabilityFromEnv returns observability configuration with environment variable overrides.
func ObservabilityFromEnv() (ObservabilityConfig, error) {
	cfg := DefaultObservability()
	err := parseEnv(&cfg)
	return cfg, err
}

// =============================================================================
// COMPLETE APP CONFIGURATION
// =============================================================================

// AppConfig holds the complete application configuration.
type AppConfig struct {
	Server        ServerConfig
	RateLimit     RateLimitConfig
	Query         QueryConfig
	Simulation    SimulationConfig
	Observability ObservabilityConfig
}

// Default returns the complete configuration without environment overrides.
func Default() AppConfig {
	return AppConfig{
		Server:        DefaultServer(),
		RateLimit:     DefaultRateLimit(),
		Query:         DefaultQuery(),
		Simulation:    DefaultSimulation(),
		Observability: DefaultObservability(),
	}
}

// Load returns the complete configuration with environment overrides.
func Load() (AppConfig, error) {
	var (
		cfg AppConfig
		err error
	)
	if cfg.Server, err = ServerFromEnv(); err != nil {
		return cfg, err
	}
	if cfg.RateLimit, err = RateLimitFromEnv(); err != nil {
		return cfg, err
	}
	if cfg.Query, err = QueryFromEnv(); err != nil {
		return cfg, err
	}
	if cfg.Simulation, err = SimulationFromEnv(); err != nil {
		return cfg, err
	}
	if cfg.Observability, err = ObservabilityFromEnv(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// =============================================================================
// HELPER FUNCTIONS
// =============================================================================

// parseEnv overlays environment variables onto target. Fields whose variable
// is unset keep their current value.
func parseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}
