package lookup

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"phonelookup_backend/internal/geocode"
	"phonelookup_backend/internal/mapgen"
	"phonelookup_backend/platform/logger"
	"phonelookup_backend/platform/validator"
)

// noKeyConfig forces the static fallback tier.
type noKeyConfig struct{}

func (noKeyConfig) GetOpenCageAPIKey() string { return "" }
func (noKeyConfig) IsGeocodingEnabled() bool  { return false }

func newTestService(t *testing.T) (*Service, string) {
	t.Helper()
	log := logger.New("development")

	resolver, err := geocode.NewResolver(noKeyConfig{}, log)
	if err != nil {
		t.Fatalf("new resolver: %v", err)
	}

	dir := t.TempDir()
	maps, err := mapgen.NewBuilder(dir, log)
	if err != nil {
		t.Fatalf("new builder: %v", err)
	}

	return NewService(resolver, maps, validator.New(), log), dir
}

func TestTrack_ValidNumberWithMap(t *testing.T) {
	svc, dir := newTestService(t)

	result, failure := svc.Track(context.Background(), TrackRequest{
		PhoneNumber: "+14155552671",
		MapFilename: "test_lookup.html",
	})
	if failure != nil {
		t.Fatalf("expected success, got failure: %v", failure)
	}

	if !result.Success || !result.IsValid {
		t.Fatal("expected success and is_valid to be true")
	}
	if result.Country != "United States" {
		t.Fatalf("expected country United States, got %q", result.Country)
	}
	if result.CountryCode != "+1" {
		t.Fatalf("expected country code +1, got %q", result.CountryCode)
	}
	if len(result.Timezones) == 0 {
		t.Fatal("expected non-empty timezones")
	}
	if result.Location.Latitude != 37.0902 || result.Location.Longitude != -95.7129 {
		t.Fatalf("expected US centroid, got %f,%f", result.Location.Latitude, result.Location.Longitude)
	}
	if result.Timestamp.IsZero() {
		t.Fatal("expected timestamp to be stamped")
	}

	if result.MapFile == nil {
		t.Fatal("expected map_file to be set")
	}
	if _, err := os.Stat(filepath.Join(dir, *result.MapFile)); err != nil {
		t.Fatalf("expected artifact on disk: %v", err)
	}
}

func TestTrack_MapDisabled(t *testing.T) {
	svc, _ := newTestService(t)

	createMap := false
	result, failure := svc.Track(context.Background(), TrackRequest{
		PhoneNumber: "+14155552671",
		CreateMap:   &createMap,
	})
	if failure != nil {
		t.Fatalf("expected success, got failure: %v", failure)
	}
	if result.MapFile != nil {
		t.Fatalf("expected no map artifact, got %q", *result.MapFile)
	}
}

func TestTrack_ParseFailureShortCircuits(t *testing.T) {
	svc, dir := newTestService(t)

	result, failure := svc.Track(context.Background(), TrackRequest{PhoneNumber: "not-a-number"})
	if result != nil {
		t.Fatal("expected no result on parse failure")
	}
	if failure == nil || failure.Kind != FailureParse {
		t.Fatalf("expected FailureParse, got %v", failure)
	}
	if !strings.Contains(failure.Detail, "parse") {
		t.Fatalf("expected detail to mention parse failure, got %q", failure.Detail)
	}

	// Later stages never ran: no artifact was written.
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("read dir: %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("expected empty artifact dir, found %d entries", len(entries))
	}
}

func TestTrack_WhitespaceInputRejectedBeforeParsing(t *testing.T) {
	svc, _ := newTestService(t)

	_, failure := svc.Track(context.Background(), TrackRequest{PhoneNumber: "   "})
	if failure == nil || failure.Kind != FailureInput {
		t.Fatalf("expected FailureInput, got %v", failure)
	}
}

func TestTrack_BadArtifactNameDoesNotFailResult(t *testing.T) {
	svc, _ := newTestService(t)

	result, failure := svc.Track(context.Background(), TrackRequest{
		PhoneNumber: "+14155552671",
		MapFilename: "nested/dir.html",
	})
	if failure != nil {
		t.Fatalf("expected success, got failure: %v", failure)
	}
	if result.MapFile != nil {
		t.Fatal("expected map_file to be nil after artifact failure")
	}
	if !result.Success {
		t.Fatal("artifact failure must not downgrade the result")
	}
}

func TestValidate_Idempotent(t *testing.T) {
	svc, _ := newTestService(t)

	for _, input := range []string{"+14155552671", "not-a-number", ""} {
		first := svc.Validate(input)
		second := svc.Validate(input)
		if first != second {
			t.Fatalf("expected identical results for %q, got %+v then %+v", input, first, second)
		}
	}

	if !svc.Validate("+14155552671").Valid {
		t.Fatal("expected valid number to validate")
	}
	if svc.Validate("not-a-number").Valid {
		t.Fatal("expected unparseable input to be invalid")
	}
}
