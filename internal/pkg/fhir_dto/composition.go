package fhir_dto

type Composition struct {
	ResourceType string               `json:"resourceType"`
	ID           string               `json:"id,omitempty"`
	Type         *CodeableConcept     `json:"type,omitempty"`
	Subject      *Reference           `json:"subject,omitempty"`
	Date         string               `json:"date,omitempty"`
	Title        string               `json:"title,omitempty"`
	Custodian    *Reference           `json:"custodian,omitempty"`
	Section      []CompositionSection `json:"section,omitempty"`
}

type CompositionSection struct {
	Title string           `json:"title,omitempty"`
	Code  *CodeableConcept `json:"code,omitempty"`
	Text  *Narrative       `json:"text,omitempty"`
	Entry []Reference      `json:"entry,omitempty"`
}

// TypeCode returns the LOINC document type code of the composition.
func (c *Composition) TypeCode() string {
	return c.Type.FirstCode()
}

// SectionCode returns the section's classification code.
func (s *CompositionSection) SectionCode() string {
	return s.Code.FirstCode()
}

// HasNarrative reports whether the section carries a narrative fragment.
func (s *CompositionSection) HasNarrative() bool {
	return s.Text != nil && s.Text.Div != ""
}
