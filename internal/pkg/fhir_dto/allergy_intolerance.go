package fhir_dto

import "carelink-service/internal/pkg/constvars"

type AllergyIntolerance struct {
	ResourceType       string           `json:"resourceType"`
	ID                 string           `json:"id,omitempty"`
	ClinicalStatus     *CodeableConcept `json:"clinicalStatus,omitempty"`
	VerificationStatus *CodeableConcept `json:"verificationStatus,omitempty"`
	Type               string           `json:"type,omitempty"`
	Category           []string         `json:"category,omitempty"`
	Criticality        string           `json:"criticality,omitempty"`
	Code               *CodeableConcept `json:"code,omitempty"`
	Patient            *Reference       `json:"patient,omitempty"`
}

func (a *AllergyIntolerance) ResourceID() string { return a.ID }

func (a *AllergyIntolerance) TypeName() string { return "AllergyIntolerance" }

func (a *AllergyIntolerance) DisplayText() string {
	display := a.Code.DisplayText("Unknown Allergy")
	if a.HighRisk() {
		display += " (High Risk)"
	}
	return display
}

func (a *AllergyIntolerance) HighRisk() bool {
	return a.Criticality == constvars.FhirAllergyCriticalityHigh
}
