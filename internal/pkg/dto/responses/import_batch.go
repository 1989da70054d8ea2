package responses

import "carelink-service/internal/pkg/fhir_dto"

// ImportBatch is the user-confirmed, category-grouped preview. Group order
// follows the fixed import-section declaration order; items keep their
// resolution order within a group.
type ImportBatch struct {
	Groups []ImportGroup `json:"groups"`
	Total  int           `json:"total"`
}

type ImportGroup struct {
	Key   string       `json:"key"`
	Label string       `json:"label"`
	Icon  string       `json:"icon,omitempty"`
	Items []ImportItem `json:"items"`
}

// ImportItem is either a selected structured resource or an opted-in
// narrative section. Narrative items carry the raw HTML fragment; the two
// wrapped text categories additionally carry a DocumentReference-shaped
// payload for the receiving system.
type ImportItem struct {
	ID            string                      `json:"id,omitempty"`
	ResourceType  string                      `json:"resource_type,omitempty"`
	Display       string                      `json:"display,omitempty"`
	HighRisk      bool                        `json:"high_risk,omitempty"`
	Reference     string                      `json:"reference,omitempty"`
	SectionCode   string                      `json:"section_code,omitempty"`
	NarrativeHTML string                      `json:"narrative_html,omitempty"`
	Document      *fhir_dto.DocumentReference `json:"document,omitempty"`
}
