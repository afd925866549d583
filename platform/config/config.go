// Package config provides application configuration loading.
// This is part of the platform layer and contains no business logic.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// =============================================================================
// Module-Specific Config Interfaces (Principle of Least Privilege)
// =============================================================================

// HTTPConfig provides settings for the HTTP server.
type HTTPConfig interface {
	GetHTTPAddr() string
	GetCORSAllowAll() bool
	GetCORSOrigins() []string
	GetRateLimitRPS() float64
	GetRateLimitBurst() int
}

// GeocodingConfig provides settings for the geocoding tier selection.
// The presence of the API key is the sole switch between the API-backed
// resolver and the static fallback table.
type GeocodingConfig interface {
	GetOpenCageAPIKey() string
	IsGeocodingEnabled() bool
}

// MapConfig provides settings for map artifact generation.
type MapConfig interface {
	GetMapOutputDir() string
}

// =============================================================================
// Main Config Struct
// =============================================================================

// Config holds all application configuration values.
type Config struct {
	Env            string
	HTTPAddr       string
	CORSAllowAll   bool
	CORSOrigins    []string
	OpenCageAPIKey string
	MapOutputDir   string
	RateLimitRPS   float64
	RateLimitBurst int
}

// Load reads configuration from the environment, with .env support for
// local development. The geocoding credential is optional; everything else
// has a sensible default.
func Load() (*Config, error) {
	_ = godotenv.Load()

	corsOrigins := splitCSV(getEnv("CORS_ORIGINS", "http://localhost:4200"))
	corsAllowAll := strings.EqualFold(getEnv("CORS_ALLOW_ALL", "false"), "true")
	if containsWildcard(corsOrigins) {
		corsAllowAll = true
	}

	cfg := &Config{
		Env:            getEnv("APP_ENV", "development"),
		HTTPAddr:       getEnv("HTTP_ADDR", ":8080"),
		CORSAllowAll:   corsAllowAll,
		CORSOrigins:    corsOrigins,
		OpenCageAPIKey: strings.TrimSpace(getEnv("OPENCAGE_API_KEY", "")),
		MapOutputDir:   getEnv("MAP_OUTPUT_DIR", "maps"),
		RateLimitRPS:   mustFloat(getEnv("RATE_LIMIT_RPS", "10")),
		RateLimitBurst: mustInt(getEnv("RATE_LIMIT_BURST", "20")),
	}

	if cfg.MapOutputDir == "" {
		return nil, fmt.Errorf("MAP_OUTPUT_DIR cannot be empty")
	}
	if cfg.RateLimitRPS <= 0 || cfg.RateLimitBurst <= 0 {
		return nil, fmt.Errorf("RATE_LIMIT_RPS and RATE_LIMIT_BURST must be positive")
	}

	return cfg, nil
}

// Interface implementations.

func (c *Config) GetHTTPAddr() string        { return c.HTTPAddr }
func (c *Config) GetCORSAllowAll() bool      { return c.CORSAllowAll }
func (c *Config) GetCORSOrigins() []string   { return c.CORSOrigins }
func (c *Config) GetRateLimitRPS() float64   { return c.RateLimitRPS }
func (c *Config) GetRateLimitBurst() int     { return c.RateLimitBurst }
func (c *Config) GetOpenCageAPIKey() string  { return c.OpenCageAPIKey }
func (c *Config) IsGeocodingEnabled() bool   { return c.OpenCageAPIKey != "" }
func (c *Config) GetMapOutputDir() string    { return c.MapOutputDir }

func getEnv(key, fallback string) string {
	if val, ok := os.LookupEnv(key); ok {
		return val
	}
	return fallback
}

func mustFloat(value string) float64 {
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0
	}
	return f
}

func mustInt(value string) int {
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0
	}
	return n
}

func splitCSV(value string) []string {
	parts := strings.Split(value, ",")
	results := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			results = append(results, trimmed)
		}
	}
	return results
}

func containsWildcard(values []string) bool {
	for _, value := range values {
		if value == "*" {
			return true
		}
	}
	return false
}
