package lookup

import (
	"time"

	"phonelookup_backend/internal/geocode"
)

// FailureKind classifies why a lookup never produced metadata.
type FailureKind int

const (
	// FailureInput is empty or whitespace-only input, rejected before the
	// numbering-plan parser is ever invoked.
	FailureInput FailureKind = iota
	// FailureParse is a string the numbering-plan parser rejected outright.
	FailureParse
	// FailureInvalid is a parseable number that fails numbering-plan
	// validity rules.
	FailureInvalid
	// FailureUnexpected is any uncategorized parser failure.
	FailureUnexpected
)

// ParseFailure is the terminal failure variant of the validation stage.
// No further pipeline stages run once one is produced.
type ParseFailure struct {
	Kind   FailureKind
	Detail string
}

func (f *ParseFailure) Error() string {
	return f.Detail
}

// Metadata is the structured telecom information derived from a validated
// number. Timezones is guaranteed non-empty.
type Metadata struct {
	Country             string
	CountryCode         string
	Carrier             string
	Timezones           []string
	InternationalFormat string
	NationalNumber      uint64
}

// Result is the success envelope returned across the pipeline boundary.
// Coordinates are always present; the resolver degrades to a sentinel
// rather than failing. MapFile is nil when no artifact was requested or
// when building one failed.
type Result struct {
	Success        bool                `json:"success"`
	Number         string              `json:"number"`
	Country        string              `json:"country"`
	CountryCode    string              `json:"country_code"`
	Carrier        string              `json:"carrier"`
	Timezones      []string            `json:"timezones"`
	IsValid        bool                `json:"is_valid"`
	NationalNumber uint64              `json:"national_number"`
	MapFile        *string             `json:"map_file"`
	Location       geocode.Coordinates `json:"location"`
	Timestamp      time.Time           `json:"timestamp"`
}

// Failure is the failure envelope. It carries only the flag and a
// human-readable message so callers never see a raw fault.
type Failure struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// ValidationResult is the output of the validation-only contract.
type ValidationResult struct {
	Valid   bool   `json:"valid"`
	Message string `json:"message"`
}

// TrackRequest is the lookup request body.
type TrackRequest struct {
	PhoneNumber string `json:"phone_number" binding:"required"`
	// CreateMap defaults to true when omitted.
	CreateMap *bool `json:"create_map"`
	// MapFilename optionally overrides the default artifact name. Callers
	// issuing concurrent requests should pass unique names.
	MapFilename string `json:"map_filename" validate:"omitempty,max=128"`
}

// ValidateRequest is the validation-only request body.
type ValidateRequest struct {
	PhoneNumber string `json:"phone_number" binding:"required"`
}
