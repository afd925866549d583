package lookup

import (
	"strings"
	"testing"
)

func TestNormalize_TrimsWhitespace(t *testing.T) {
	if got := Normalize("  +14155552671\t"); got != "+14155552671" {
		t.Fatalf("expected trimmed number, got %q", got)
	}
	if got := Normalize("   "); got != "" {
		t.Fatalf("expected empty string, got %q", got)
	}
}

func TestValidate_ValidNumber(t *testing.T) {
	parsed, failure := Validate("+14155552671")
	if failure != nil {
		t.Fatalf("expected success, got failure: %v", failure)
	}
	if parsed.GetCountryCode() != 1 {
		t.Fatalf("expected country code 1, got %d", parsed.GetCountryCode())
	}
	if parsed.GetNationalNumber() != 4155552671 {
		t.Fatalf("expected national number 4155552671, got %d", parsed.GetNationalNumber())
	}
}

func TestValidate_UnparseableInput(t *testing.T) {
	_, failure := Validate("not-a-number")
	if failure == nil {
		t.Fatal("expected a parse failure")
	}
	if failure.Kind != FailureParse {
		t.Fatalf("expected FailureParse, got %d", failure.Kind)
	}
	if !strings.Contains(failure.Detail, "parse error") {
		t.Fatalf("expected detail to mention parse error, got %q", failure.Detail)
	}
}

func TestValidate_ParseableButInvalid(t *testing.T) {
	// Parses with country code 1 but is far too short to be a real number.
	_, failure := Validate("+12345")
	if failure == nil {
		t.Fatal("expected an invalid-number failure")
	}
	if failure.Kind != FailureInvalid {
		t.Fatalf("expected FailureInvalid, got %d", failure.Kind)
	}
}
