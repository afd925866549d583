package lookup

import (
	"strings"

	"github.com/nyaruka/phonenumbers"
)

// Normalize trims surrounding whitespace from raw input. Empty-after-trim
// input must be rejected by the caller before Validate is invoked.
func Normalize(raw string) string {
	return strings.TrimSpace(raw)
}

// Validate parses a normalized candidate against the numbering plan.
// The input must carry its country code prefix; no default region is
// assumed. The three failure modes are preserved as distinct kinds and
// never coerced to a default value.
func Validate(normalized string) (*phonenumbers.PhoneNumber, *ParseFailure) {
	parsed, err := phonenumbers.Parse(normalized, "")
	if err != nil {
		return nil, &ParseFailure{
			Kind:   FailureParse,
			Detail: "parse error: " + err.Error(),
		}
	}
	if parsed == nil {
		return nil, &ParseFailure{
			Kind:   FailureUnexpected,
			Detail: "unexpected error: parser returned no number",
		}
	}

	if !phonenumbers.IsValidNumber(parsed) {
		return nil, &ParseFailure{
			Kind:   FailureInvalid,
			Detail: "invalid phone number",
		}
	}

	return parsed, nil
}
