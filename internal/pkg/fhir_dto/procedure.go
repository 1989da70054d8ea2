package fhir_dto

type Procedure struct {
	ResourceType      string           `json:"resourceType"`
	ID                string           `json:"id,omitempty"`
	Status            string           `json:"status,omitempty"`
	Code              *CodeableConcept `json:"code,omitempty"`
	Subject           *Reference       `json:"subject,omitempty"`
	PerformedDateTime string           `json:"performedDateTime,omitempty"`
	PerformedPeriod   *Period          `json:"performedPeriod,omitempty"`
}

func (p *Procedure) ResourceID() string { return p.ID }

func (p *Procedure) TypeName() string { return "Procedure" }

func (p *Procedure) DisplayText() string {
	return p.Code.DisplayText("Unnamed Procedure")
}

func (p *Procedure) HighRisk() bool { return false }
