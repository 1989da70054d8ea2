package utils

import "time"

// fhirDateLayouts covers the variable precision of the FHIR dateTime type,
// most precise first.
var fhirDateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
	"2006-01",
	"2006",
}

// ParseFHIRDate parses a FHIR date/dateTime string. The boolean is false for
// missing or unparsable values; callers drop such items from chronological
// views rather than guessing a date.
func ParseFHIRDate(value string) (time.Time, bool) {
	if value == "" {
		return time.Time{}, false
	}
	for _, layout := range fhirDateLayouts {
		if parsed, err := time.Parse(layout, value); err == nil {
			return parsed, true
		}
	}
	return time.Time{}, false
}
