package lookup

import (
	"testing"

	"github.com/nyaruka/phonenumbers"
)

func mustParse(t *testing.T, number string) *phonenumbers.PhoneNumber {
	t.Helper()
	parsed, err := phonenumbers.Parse(number, "")
	if err != nil {
		t.Fatalf("parse %s: %v", number, err)
	}
	return parsed
}

func TestExtract_USNumber(t *testing.T) {
	meta := Extract(mustParse(t, "+14155552671"))

	if meta.Country != "United States" {
		t.Fatalf("expected country United States, got %q", meta.Country)
	}
	if meta.CountryCode != "+1" {
		t.Fatalf("expected country code +1, got %q", meta.CountryCode)
	}
	if meta.NationalNumber != 4155552671 {
		t.Fatalf("expected national number 4155552671, got %d", meta.NationalNumber)
	}
	if meta.InternationalFormat != "+1 415-555-2671" {
		t.Fatalf("expected international format +1 415-555-2671, got %q", meta.InternationalFormat)
	}
	if len(meta.Timezones) == 0 {
		t.Fatal("expected at least one timezone")
	}
	if meta.Carrier == "" {
		t.Fatal("expected carrier to be populated, defaulted if necessary")
	}
}

func TestExtract_IndianNumber(t *testing.T) {
	meta := Extract(mustParse(t, "+919876543210"))

	if meta.Country != "India" {
		t.Fatalf("expected country India, got %q", meta.Country)
	}
	if meta.CountryCode != "+91" {
		t.Fatalf("expected country code +91, got %q", meta.CountryCode)
	}
	if len(meta.Timezones) == 0 {
		t.Fatal("expected at least one timezone")
	}
}

func TestExtract_TimezonesNeverEmpty(t *testing.T) {
	// Even a number with no usable region data yields a non-empty set,
	// substituting ["Unknown"] when the capability has nothing.
	if got := timezones(&phonenumbers.PhoneNumber{}); len(got) == 0 {
		t.Fatal("expected a non-empty timezone set")
	}
}
