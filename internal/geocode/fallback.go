package geocode

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed fallback.yaml
var fallbackYAML []byte

type fallbackEntry struct {
	Country string  `yaml:"country"`
	Lat     float64 `yaml:"lat"`
	Lng     float64 `yaml:"lng"`
}

// loadFallbackTable parses the embedded centroid table into a lookup map.
// The table is read once at resolver construction and never mutated.
func loadFallbackTable() (map[string]Coordinates, error) {
	var entries []fallbackEntry
	if err := yaml.Unmarshal(fallbackYAML, &entries); err != nil {
		return nil, fmt.Errorf("parse fallback table: %w", err)
	}
	if len(entries) == 0 {
		return nil, fmt.Errorf("fallback table is empty")
	}

	table := make(map[string]Coordinates, len(entries))
	for _, entry := range entries {
		if entry.Country == "" {
			return nil, fmt.Errorf("fallback table entry missing country name")
		}
		table[entry.Country] = Coordinates{
			Latitude:  entry.Lat,
			Longitude: entry.Lng,
			Formatted: entry.Country,
		}
	}

	return table, nil
}
