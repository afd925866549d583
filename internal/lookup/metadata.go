package lookup

import (
	"fmt"

	"github.com/nyaruka/phonenumbers"
	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

const unknown = "Unknown"

// Extract derives telecom metadata from an already-validated number.
// Pure: no network or disk I/O. Empty capability answers are substituted
// with "Unknown" so every field is always populated.
func Extract(parsed *phonenumbers.PhoneNumber) Metadata {
	meta := Metadata{
		Country:             countryName(parsed),
		CountryCode:         fmt.Sprintf("+%d", parsed.GetCountryCode()),
		Carrier:             carrierName(parsed),
		Timezones:           timezones(parsed),
		InternationalFormat: phonenumbers.Format(parsed, phonenumbers.INTERNATIONAL),
		NationalNumber:      parsed.GetNationalNumber(),
	}
	return meta
}

// countryName maps the number's region to an English country name.
// Location precision is country-level throughout the pipeline, so the
// region display name is used rather than prefix-level geocoding data.
func countryName(parsed *phonenumbers.PhoneNumber) string {
	regionCode := phonenumbers.GetRegionCodeForNumber(parsed)
	if regionCode == "" || regionCode == "ZZ" {
		return unknown
	}

	region, err := language.ParseRegion(regionCode)
	if err != nil {
		return unknown
	}

	name := display.English.Regions().Name(region)
	if name == "" {
		return unknown
	}
	return name
}

func carrierName(parsed *phonenumbers.PhoneNumber) string {
	carrier, err := phonenumbers.GetCarrierForNumber(parsed, "en")
	if err != nil || carrier == "" {
		return unknown
	}
	return carrier
}

// timezones returns the number's timezones, guaranteed non-empty.
func timezones(parsed *phonenumbers.PhoneNumber) []string {
	zones, err := phonenumbers.GetTimezonesForNumber(parsed)
	if err != nil || len(zones) == 0 {
		return []string{unknown}
	}
	return zones
}
