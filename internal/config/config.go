// Package config reads the server settings from the environment.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// Config holds the runtime settings. Values come from environment
// variables; a .env file is loaded by main before Load runs.
type Config struct {
	Port            string `validate:"required,numeric"`
	GinMode         string `validate:"oneof=debug release test"`
	LogLevel        string `validate:"oneof=debug info warn error"`
	LogFormat       string `validate:"oneof=json console"`
	DefaultLanguage string `validate:"oneof=de en"`
	StatsEnabled    bool
	SessionLimit    int           `validate:"min=1"`
	SessionTTL      time.Duration `validate:"min=1s"`
	// TrustedProxies lists the proxy addresses or CIDRs whose
	// X-Forwarded-For header is believed. Empty trusts none.
	TrustedProxies []string `validate:"dive,ip|cidr"`
}

// Default returns the settings used when nothing is configured.
func Default() Config {
	return Config{
		Port:            "8080",
		GinMode:         "release",
		LogLevel:        "info",
		LogFormat:       "json",
		DefaultLanguage: "de",
		SessionLimit:    10000,
		SessionTTL:      24 * time.Hour,
	}
}

// Load builds a Config from the process environment.
func Load() (Config, error) {
	return FromLookup(os.LookupEnv)
}

// FromLookup builds a Config from an arbitrary variable source.
func FromLookup(lookup func(string) (string, bool)) (Config, error) {
	cfg := Default()

	get := func(key string, dst *string) {
		if v, ok := lookup(key); ok && strings.TrimSpace(v) != "" {
			*dst = strings.TrimSpace(v)
		}
	}
	get("PORT", &cfg.Port)
	get("GIN_MODE", &cfg.GinMode)
	get("LOG_LEVEL", &cfg.LogLevel)
	get("LOG_FORMAT", &cfg.LogFormat)
	get("DEFAULT_LANGUAGE", &cfg.DefaultLanguage)
	cfg.LogLevel = strings.ToLower(cfg.LogLevel)
	cfg.DefaultLanguage = strings.ToLower(cfg.DefaultLanguage)

	if v, ok := lookup("STATS_ENABLED"); ok && v != "" {
		enabled, err := strconv.ParseBool(v)
		if err != nil {
			return Config{}, fmt.Errorf("STATS_ENABLED: %w", err)
		}
		cfg.StatsEnabled = enabled
	}

	if v, ok := lookup("SESSION_LIMIT"); ok && v != "" {
		limit, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, fmt.Errorf("SESSION_LIMIT: %w", err)
		}
		cfg.SessionLimit = limit
	}
	if v, ok := lookup("SESSION_TTL"); ok && v != "" {
		ttl, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("SESSION_TTL: %w", err)
		}
		cfg.SessionTTL = ttl
	}
	if v, ok := lookup("TRUSTED_PROXIES"); ok {
		for _, p := range strings.Split(v, ",") {
			if p = strings.TrimSpace(p); p != "" {
				cfg.TrustedProxies = append(cfg.TrustedProxies, p)
			}
		}
	}

	if err := validator.New().Struct(cfg); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// Addr is the listen address for the HTTP server.
func (c Config) Addr() string {
	return ":" + c.Port
}
