package fhir_dto

import "fmt"

type Observation struct {
	ResourceType      string            `json:"resourceType"`
	ID                string            `json:"id,omitempty"`
	Status            string            `json:"status,omitempty"`
	Code              *CodeableConcept  `json:"code,omitempty"`
	Subject           *Reference        `json:"subject,omitempty"`
	EffectiveDateTime string            `json:"effectiveDateTime,omitempty"`
	ValueQuantity     *Quantity         `json:"valueQuantity,omitempty"`
	ValueString       string            `json:"valueString,omitempty"`
	Interpretation    []CodeableConcept `json:"interpretation,omitempty"`
}

func (o *Observation) ResourceID() string { return o.ID }

func (o *Observation) TypeName() string { return "Observation" }

func (o *Observation) DisplayText() string {
	display := o.Code.DisplayText("Unnamed Observation")
	switch {
	case o.ValueQuantity != nil:
		display += fmt.Sprintf(": %g %s", o.ValueQuantity.Value, o.ValueQuantity.Unit)
	case o.ValueString != "":
		display += ": " + o.ValueString
	}
	return display
}

// HighRisk flags results carrying an abnormal interpretation coding.
func (o *Observation) HighRisk() bool {
	for _, interp := range o.Interpretation {
		code := interp.FirstCode()
		if code != "" && code != "N" {
			return true
		}
	}
	return false
}
