package fhir_dto

type Encounter struct {
	ResourceType    string           `json:"resourceType"`
	ID              string           `json:"id,omitempty"`
	Status          string           `json:"status,omitempty"`
	Class           Coding           `json:"class,omitempty"`
	ServiceType     *CodeableConcept `json:"serviceType,omitempty"`
	Subject         *Reference       `json:"subject,omitempty"`
	Period          *Period          `json:"period,omitempty"`
	ServiceProvider *Reference       `json:"serviceProvider,omitempty"`
}

// DerivedDate is the instant the encounter is placed on the timeline:
// period start, falling back to period end. Empty when neither is present,
// in which case the encounter is dropped from the timeline.
func (e *Encounter) DerivedDate() string {
	if e.Period == nil {
		return ""
	}
	if e.Period.Start != "" {
		return e.Period.Start
	}
	return e.Period.End
}
