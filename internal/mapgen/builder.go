// Package mapgen renders phone lookup results as self-contained Leaflet
// HTML map artifacts.
package mapgen

import (
	"fmt"
	"os"
	"path/filepath"

	"phonelookup_backend/platform/logger"
	"phonelookup_backend/platform/sanitize"
)

const (
	// DefaultFilename is used when the caller does not choose an artifact name.
	// Concurrent requests sharing the default name race on the write; callers
	// needing isolation must supply unique filenames.
	DefaultFilename = "phone_location.html"

	zoomLevel      = 5
	coverageRadius = 500000 // meters
)

// MapData is the popup content for a rendered artifact. It is deliberately
// decoupled from the lookup package types so this package stays a leaf.
type MapData struct {
	Number    string
	Country   string
	Carrier   string
	Timezone  string
	Latitude  float64
	Longitude float64
	Label     string
}

// Builder writes map artifacts into a single output directory.
type Builder struct {
	outputDir string
	log       *logger.Logger
}

// NewBuilder creates a Builder, ensuring the output directory exists.
func NewBuilder(outputDir string, log *logger.Logger) (*Builder, error) {
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return nil, fmt.Errorf("create map output dir: %w", err)
	}
	return &Builder{outputDir: outputDir, log: log}, nil
}

// Build renders the map centered on the given coordinates with a single
// marker and a coverage circle, then writes it under filename in the output
// directory. The write goes through a temp file and a rename so a failure
// mid-write never leaves a truncated artifact behind.
func (b *Builder) Build(data MapData, filename string) (string, error) {
	name, err := sanitize.Filename(filename)
	if err != nil {
		return "", err
	}
	if filepath.Ext(name) != ".html" {
		name += ".html"
	}

	tmp, err := os.CreateTemp(b.outputDir, ".map-*.html")
	if err != nil {
		return "", fmt.Errorf("create temp artifact: %w", err)
	}
	tmpName := tmp.Name()

	if err := mapTemplate.Execute(tmp, templateData(data)); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return "", fmt.Errorf("render map: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return "", fmt.Errorf("close temp artifact: %w", err)
	}

	finalPath := filepath.Join(b.outputDir, name)
	if err := os.Rename(tmpName, finalPath); err != nil {
		os.Remove(tmpName)
		return "", fmt.Errorf("persist artifact: %w", err)
	}

	b.log.Debug("map artifact written", "path", finalPath)
	return name, nil
}

// ArtifactPath resolves a previously written artifact by filename.
// A missing file is reported as an error so the HTTP layer can 404.
func (b *Builder) ArtifactPath(filename string) (string, error) {
	name, err := sanitize.Filename(filename)
	if err != nil {
		return "", err
	}

	path := filepath.Join(b.outputDir, name)
	info, err := os.Stat(path)
	if err != nil {
		return "", fmt.Errorf("artifact %q not found", name)
	}
	if info.IsDir() {
		return "", fmt.Errorf("artifact %q not found", name)
	}

	return path, nil
}

type mapTemplateData struct {
	Number    string
	Country   string
	Carrier   string
	Timezone  string
	Latitude  float64
	Longitude float64
	Label     string
	Zoom      int
	Radius    int
}

func templateData(data MapData) mapTemplateData {
	return mapTemplateData{
		Number:    data.Number,
		Country:   data.Country,
		Carrier:   data.Carrier,
		Timezone:  data.Timezone,
		Latitude:  data.Latitude,
		Longitude: data.Longitude,
		Label:     data.Label,
		Zoom:      zoomLevel,
		Radius:    coverageRadius,
	}
}
