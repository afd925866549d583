// Package geocode resolves country names to approximate coordinates.
//
// Resolution is two-tier: when an OpenCage API key is configured the resolver
// queries the API, otherwise it falls back to a small static table of country
// centroids. The two tiers are mutually exclusive; an API failure degrades to
// a sentinel location, it never falls through to the static table.
package geocode

import (
	"context"

	"phonelookup_backend/platform/config"
	"phonelookup_backend/platform/logger"
)

// unknownLabel is the sentinel formatted label used when the API tier
// cannot produce a match.
const unknownLabel = "Unknown"

// Resolver resolves a country name to coordinates. Behavior is a pure
// function of (query, configuration); the credential is read once at
// construction and never mutated.
type Resolver struct {
	client   *Client
	fallback map[string]Coordinates
	log      *logger.Logger
}

// NewResolver creates a resolver. When the geocoding credential is absent
// the API client is not constructed at all and every lookup uses the
// static fallback table.
func NewResolver(cfg config.GeocodingConfig, log *logger.Logger) (*Resolver, error) {
	table, err := loadFallbackTable()
	if err != nil {
		return nil, err
	}

	r := &Resolver{
		fallback: table,
		log:      log,
	}
	if cfg.IsGeocodingEnabled() {
		r.client = NewClient(cfg.GetOpenCageAPIKey(), log)
	}

	return r, nil
}

// APIEnabled reports whether the API-backed tier is active.
func (r *Resolver) APIEnabled() bool {
	return r.client != nil
}

// Resolve returns coordinates for a country name. It never fails: any API
// error or empty result set degrades to the (0, 0, "Unknown") sentinel, and
// a fallback-table miss echoes the queried name at (0, 0). Geolocation is
// advisory, so degradation is logged but never propagated.
func (r *Resolver) Resolve(ctx context.Context, countryName string) Coordinates {
	if r.client == nil {
		return r.resolveStatic(countryName)
	}

	matches, err := r.client.Geocode(ctx, countryName)
	if err != nil {
		r.log.GeocodeDegraded(countryName, err.Error())
		return Coordinates{Formatted: unknownLabel}
	}
	if len(matches) == 0 {
		r.log.GeocodeDegraded(countryName, "no results")
		return Coordinates{Formatted: unknownLabel}
	}

	first := matches[0]
	return Coordinates{
		Latitude:  first.Latitude,
		Longitude: first.Longitude,
		Formatted: first.Formatted,
	}
}

func (r *Resolver) resolveStatic(countryName string) Coordinates {
	if coords, ok := r.fallback[countryName]; ok {
		return coords
	}
	// An untabulated country is still a known name, so echo it rather
	// than reporting "Unknown".
	return Coordinates{Formatted: countryName}
}
