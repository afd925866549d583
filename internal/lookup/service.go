// Package lookup implements the phone metadata and location pipeline:
// normalization, numbering-plan validation, metadata extraction, location
// resolution, and optional map artifact generation.
package lookup

import (
	"context"
	"time"

	"phonelookup_backend/internal/geocode"
	"phonelookup_backend/internal/mapgen"
	"phonelookup_backend/platform/apperr"
	"phonelookup_backend/platform/logger"
	"phonelookup_backend/platform/validator"
)

// Service runs the lookup pipeline. Each invocation is a straight
// sequential pass with no shared mutable state between invocations.
type Service struct {
	resolver *geocode.Resolver
	maps     *mapgen.Builder
	val      *validator.Validator
	log      *logger.Logger
}

// NewService creates the lookup service.
func NewService(resolver *geocode.Resolver, maps *mapgen.Builder, val *validator.Validator, log *logger.Logger) *Service {
	return &Service{
		resolver: resolver,
		maps:     maps,
		val:      val,
		log:      log,
	}
}

// Track runs the full pipeline for one raw phone number candidate.
// A ParseFailure is returned for input, parse, and validity failures; every
// other failure mode (geocoding, artifact write) degrades into sentinel
// values on a success Result instead.
func (s *Service) Track(ctx context.Context, req TrackRequest) (*Result, *ParseFailure) {
	if err := s.val.Struct(req); err != nil {
		return nil, &ParseFailure{Kind: FailureInput, Detail: "invalid request: " + err.Error()}
	}

	normalized := Normalize(req.PhoneNumber)
	if normalized == "" {
		return nil, &ParseFailure{Kind: FailureInput, Detail: "phone number is required"}
	}

	parsed, failure := Validate(normalized)
	if failure != nil {
		return nil, failure
	}

	meta := Extract(parsed)
	location := s.resolver.Resolve(ctx, meta.Country)

	result := &Result{
		Success:        true,
		Number:         meta.InternationalFormat,
		Country:        meta.Country,
		CountryCode:    meta.CountryCode,
		Carrier:        meta.Carrier,
		Timezones:      meta.Timezones,
		IsValid:        true,
		NationalNumber: meta.NationalNumber,
		Location:       location,
		Timestamp:      time.Now().UTC(),
	}

	if req.CreateMap == nil || *req.CreateMap {
		result.MapFile = s.buildArtifact(meta, location, req.MapFilename)
	}

	return result, nil
}

// Validate runs only the normalization and validation stages. It has no
// side effects, so repeated calls with the same input yield the same answer.
func (s *Service) Validate(raw string) ValidationResult {
	normalized := Normalize(raw)
	if normalized == "" {
		return ValidationResult{Valid: false, Message: "phone number is required"}
	}

	if _, failure := Validate(normalized); failure != nil {
		return ValidationResult{Valid: false, Message: failure.Detail}
	}

	return ValidationResult{Valid: true, Message: "valid phone number"}
}

// buildArtifact writes the map artifact and returns its filename, or nil
// when the write failed. An artifact failure never downgrades the Result.
func (s *Service) buildArtifact(meta Metadata, location geocode.Coordinates, filename string) *string {
	if filename == "" {
		filename = mapgen.DefaultFilename
	}

	data := mapgen.MapData{
		Number:    meta.InternationalFormat,
		Country:   meta.Country,
		Carrier:   meta.Carrier,
		Timezone:  meta.Timezones[0],
		Latitude:  location.Latitude,
		Longitude: location.Longitude,
		Label:     meta.Country,
	}

	name, err := s.maps.Build(data, filename)
	if err != nil {
		s.log.ArtifactError(filename, err)
		return nil
	}

	return &name
}

// ArtifactPath resolves a stored artifact filename to its path on disk.
// A missing or unsafe filename surfaces as a typed not-found error.
func (s *Service) ArtifactPath(filename string) (string, error) {
	path, err := s.maps.ArtifactPath(filename)
	if err != nil {
		return "", apperr.Wrap(apperr.KindNotFound, "map not found", err)
	}
	return path, nil
}
