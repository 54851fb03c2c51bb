// Strategist - Conference Schedule Recommendation Engine
// Copyright 2026 Summitry
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/summitry/strategist

// Package config loads service configuration in three layers: struct
// defaults, an optional YAML file, and environment variables, with later
// layers overriding earlier ones. Environment variables use the
// STRATEGIST_ prefix: STRATEGIST_SERVER_PORT maps to server.port.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

const envPrefix = "STRATEGIST_"

// Config is the full service configuration.
type Config struct {
	Server  ServerConfig  `koanf:"server"`
	Logging LoggingConfig `koanf:"logging"`
	Catalog CatalogConfig `koanf:"catalog"`
	Store   StoreConfig   `koanf:"store"`
	Engine  EngineConfig  `koanf:"engine"`
}

// ServerConfig controls the HTTP listener.
type ServerConfig struct {
	Host            string        `koanf:"host"`
	Port            int           `koanf:"port"`
	ReadTimeout     time.Duration `koanf:"read_timeout"`
	WriteTimeout    time.Duration `koanf:"write_timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`

	// RateLimitPerMinute bounds requests per client IP. Zero disables
	// rate limiting.
	RateLimitPerMinute int `koanf:"rate_limit_per_minute"`

	// CORSOrigins lists allowed origins. Empty allows none.
	CORSOrigins []string `koanf:"cors_origins"`
}

// Addr returns the listen address.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// LoggingConfig controls log output.
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	Caller bool   `koanf:"caller"`
}

// CatalogConfig locates the catalog files and controls background refresh.
type CatalogConfig struct {
	EventsPath     string `koanf:"events_path"`
	ExhibitorsPath string `koanf:"exhibitors_path"`

	// RefreshInterval between background reloads. Zero disables refresh.
	RefreshInterval time.Duration `koanf:"refresh_interval"`
}

// StoreConfig selects and configures the plan store backend.
type StoreConfig struct {
	// Backend is "badger" or "memory".
	Backend string `koanf:"backend"`

	// Dir is the badger data directory.
	Dir string `koanf:"dir"`

	// Breaker wraps the store in a circuit breaker when true.
	Breaker bool `koanf:"breaker"`
}

// EngineConfig points at an optional JSON file of engine weight overrides.
// Absent or empty, the engine runs its calibrated defaults.
type EngineConfig struct {
	ConfigPath string `koanf:"config_path"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Host:               "0.0.0.0",
			Port:               8080,
			ReadTimeout:        15 * time.Second,
			WriteTimeout:       30 * time.Second,
			ShutdownTimeout:    10 * time.Second,
			RateLimitPerMinute: 120,
			CORSOrigins:        []string{},
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
		Catalog: CatalogConfig{
			EventsPath:      "data/events.json",
			ExhibitorsPath:  "data/exhibitors.json",
			RefreshInterval: 5 * time.Minute,
		},
		Store: StoreConfig{
			Backend: "memory",
			Dir:     "data/plans",
			Breaker: true,
		},
	}
}

// Load builds the configuration from defaults, an optional YAML file, and
// the environment. An empty path searches the default locations.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(Default(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("load defaults: %w", err)
	}

	if path == "" {
		path = findConfigFile()
	}
	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("load config file %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider(envPrefix, ".", envTransform), nil); err != nil {
		return nil, fmt.Errorf("load environment: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks cross-field constraints the type system cannot.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port out of range: %d", c.Server.Port)
	}
	switch c.Store.Backend {
	case "memory":
	case "badger":
		if c.Store.Dir == "" {
			return fmt.Errorf("store.dir required for badger backend")
		}
	default:
		return fmt.Errorf("unknown store.backend %q", c.Store.Backend)
	}
	if c.Catalog.EventsPath == "" {
		return fmt.Errorf("catalog.events_path is required")
	}
	if c.Catalog.RefreshInterval < 0 {
		return fmt.Errorf("catalog.refresh_interval must not be negative")
	}
	return nil
}

// envTransform maps STRATEGIST_SERVER_READ_TIMEOUT to server.read_timeout:
// the first underscore after the section name becomes the path separator.
func envTransform(key string) string {
	key = strings.ToLower(strings.TrimPrefix(key, envPrefix))
	return strings.Replace(key, "_", ".", 1)
}

// findConfigFile returns the first config file present in the default
// search paths, or empty.
func findConfigFile() string {
	for _, candidate := range []string{
		"strategist.yaml",
		"config/strategist.yaml",
		"/etc/strategist/strategist.yaml",
	} {
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}
	return ""
}
