package fhir_dto

import "strings"

type Patient struct {
	ResourceType string       `json:"resourceType"`
	ID           string       `json:"id,omitempty"`
	Identifier   []Identifier `json:"identifier,omitempty"`
	Name         []HumanName  `json:"name,omitempty"`
	Gender       string       `json:"gender,omitempty"`
	BirthDate    string       `json:"birthDate,omitempty"`
}

// DisplayName renders the first name entry, preferring the free-text form
// over the structured one.
func (p *Patient) DisplayName() string {
	if len(p.Name) == 0 {
		return ""
	}
	name := p.Name[0]
	if strings.TrimSpace(name.Text) != "" {
		return name.Text
	}
	parts := append([]string{}, name.Family)
	parts = append(parts, name.Given...)
	return strings.TrimSpace(strings.Join(parts, " "))
}
