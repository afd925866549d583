package sanitize

import "testing"

func TestFilename_Valid(t *testing.T) {
	for _, name := range []string{"map.html", "phone_location.html", "a-b.c", "  padded.html  "} {
		if _, err := Filename(name); err != nil {
			t.Fatalf("expected %q to be accepted: %v", name, err)
		}
	}

	got, err := Filename("  padded.html  ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "padded.html" {
		t.Fatalf("expected trimmed name, got %q", got)
	}
}

func TestFilename_Rejected(t *testing.T) {
	for _, name := range []string{"", "   ", "../map.html", "a/b.html", `a\b.html`, ".hidden", "a b.html", "semi;colon"} {
		if _, err := Filename(name); err == nil {
			t.Fatalf("expected %q to be rejected", name)
		}
	}
}
