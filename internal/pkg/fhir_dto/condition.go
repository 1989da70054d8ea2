package fhir_dto

type Condition struct {
	ResourceType       string           `json:"resourceType"`
	ID                 string           `json:"id,omitempty"`
	ClinicalStatus     *CodeableConcept `json:"clinicalStatus,omitempty"`
	VerificationStatus *CodeableConcept `json:"verificationStatus,omitempty"`
	Code               *CodeableConcept `json:"code,omitempty"`
	Subject            *Reference       `json:"subject,omitempty"`
	OnsetDateTime      string           `json:"onsetDateTime,omitempty"`
	RecordedDate       string           `json:"recordedDate,omitempty"`
	Note               []Annotation     `json:"note,omitempty"`
}

func (c *Condition) ResourceID() string { return c.ID }

func (c *Condition) TypeName() string { return "Condition" }

func (c *Condition) DisplayText() string {
	return c.Code.DisplayText("Unnamed Condition")
}

func (c *Condition) HighRisk() bool { return false }
