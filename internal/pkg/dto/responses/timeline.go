package responses

const (
	TimelineKindDocument  = "document"
	TimelineKindEncounter = "encounter"
)

// Timeline is the merged, strictly descending record stream. The newest item
// is split out so the UI can render it with distinct emphasis.
type Timeline struct {
	Latest  *TimelineItem  `json:"latest,omitempty"`
	Earlier []TimelineItem `json:"earlier"`
}

type TimelineItem struct {
	Kind      string            `json:"kind"`
	Date      string            `json:"date"`
	Document  *DocumentSummary  `json:"document,omitempty"`
	Encounter *EncounterSummary `json:"encounter,omitempty"`
}

type EncounterSummary struct {
	ID           string `json:"id"`
	Date         string `json:"date,omitempty"`
	ServiceType  string `json:"service_type,omitempty"`
	Organization string `json:"organization,omitempty"`
}
