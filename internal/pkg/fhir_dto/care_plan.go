package fhir_dto

type CarePlan struct {
	ResourceType string            `json:"resourceType"`
	ID           string            `json:"id,omitempty"`
	Status       string            `json:"status,omitempty"`
	Intent       string            `json:"intent,omitempty"`
	Title        string            `json:"title,omitempty"`
	Description  string            `json:"description,omitempty"`
	Category     []CodeableConcept `json:"category,omitempty"`
	Subject      *Reference        `json:"subject,omitempty"`
}

func (c *CarePlan) ResourceID() string { return c.ID }

func (c *CarePlan) TypeName() string { return "CarePlan" }

func (c *CarePlan) DisplayText() string {
	if c.Title != "" {
		return c.Title
	}
	if c.Description != "" {
		return c.Description
	}
	if len(c.Category) > 0 {
		return c.Category[0].DisplayText("Care Plan")
	}
	return "Care Plan"
}

func (c *CarePlan) HighRisk() bool { return false }
