package fhir_dto

type DiagnosticReport struct {
	ResourceType      string           `json:"resourceType"`
	ID                string           `json:"id,omitempty"`
	Status            string           `json:"status,omitempty"`
	Code              *CodeableConcept `json:"code,omitempty"`
	Subject           *Reference       `json:"subject,omitempty"`
	EffectiveDateTime string           `json:"effectiveDateTime,omitempty"`
	Conclusion        string           `json:"conclusion,omitempty"`
	Result            []Reference      `json:"result,omitempty"`
}

func (d *DiagnosticReport) ResourceID() string { return d.ID }

func (d *DiagnosticReport) TypeName() string { return "DiagnosticReport" }

func (d *DiagnosticReport) DisplayText() string {
	display := d.Code.DisplayText("Unnamed Report")
	if d.Conclusion != "" {
		display += ": " + d.Conclusion
	}
	return display
}

func (d *DiagnosticReport) HighRisk() bool { return false }
