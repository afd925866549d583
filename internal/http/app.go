// Package http provides HTTP server infrastructure including module registration.
package http

import (
	"phonelookup_backend/platform/config"
	"phonelookup_backend/platform/logger"
)

// RouterConfig combines the config interfaces needed by the HTTP router.
// Geocoding config is included only so the health endpoint can report
// whether the API-backed resolver tier is active.
type RouterConfig interface {
	config.HTTPConfig
	config.GeocodingConfig
}

// App holds the fully initialized application dependencies.
// This is populated by main.go (the composition root) and passed to the router.
type App struct {
	// Config holds the router configuration.
	Config RouterConfig
	// Logger is the structured logger.
	Logger *logger.Logger
	// Modules contains all HTTP-facing domain modules.
	Modules []Module
}
