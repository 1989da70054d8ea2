package responses

type DocumentSummary struct {
	ID           string `json:"id"`
	TypeCode     string `json:"type_code,omitempty"`
	TypeLabel    string `json:"type_label,omitempty"`
	Title        string `json:"title"`
	Date         string `json:"date,omitempty"`
	Organization string `json:"organization"`
}

// DocumentDetail is the expanded view of one summary document: its sections
// in document order with resolved entries, plus the current selection state
// for this view session.
type DocumentDetail struct {
	Document     DocumentSummary   `json:"document"`
	Sections     []DocumentSection `json:"sections"`
	Selection    map[string]bool   `json:"selection"`
	TextSections map[string]bool   `json:"text_sections"`
}

type DocumentSection struct {
	Code          string         `json:"code,omitempty"`
	Title         string         `json:"title,omitempty"`
	Label         string         `json:"label"`
	Category      string         `json:"category"`
	NarrativeHTML string         `json:"narrative_html,omitempty"`
	Items         []ResolvedItem `json:"items,omitempty"`
}

type ResolvedItem struct {
	ID           string `json:"id"`
	ResourceType string `json:"resource_type"`
	Display      string `json:"display"`
	HighRisk     bool   `json:"high_risk,omitempty"`
	Reference    string `json:"reference,omitempty"`
}
