package fhir_dto

import (
	"carelink-service/internal/pkg/constvars"
	"carelink-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
)

// ClinicalResource is the closed set of resource kinds a summary document may
// reference. Every kind carries its own display rule, so adding a variant
// forces a decode arm and a renderer.
type ClinicalResource interface {
	ResourceID() string
	TypeName() string
	DisplayText() string
	HighRisk() bool
}

type resourceEnvelope struct {
	ResourceType string `json:"resourceType"`
}

// DecodeClinicalResource decodes a raw FHIR resource into its concrete
// variant. Resource types outside the closed set are rejected; the resolver
// drops such entries instead of guessing at their shape.
func DecodeClinicalResource(raw json.RawMessage) (ClinicalResource, error) {
	var envelope resourceEnvelope
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return nil, exceptions.ErrDecodeResponse(err, "unknown")
	}

	var (
		resource ClinicalResource
		err      error
	)
	switch envelope.ResourceType {
	case constvars.ResourceCondition:
		target := new(Condition)
		err = json.Unmarshal(raw, target)
		resource = target
	case constvars.ResourceMedicationStatement:
		target := new(MedicationStatement)
		err = json.Unmarshal(raw, target)
		resource = target
	case constvars.ResourceMedicationRequest:
		target := new(MedicationRequest)
		err = json.Unmarshal(raw, target)
		resource = target
	case constvars.ResourceAllergyIntolerance:
		target := new(AllergyIntolerance)
		err = json.Unmarshal(raw, target)
		resource = target
	case constvars.ResourceProcedure:
		target := new(Procedure)
		err = json.Unmarshal(raw, target)
		resource = target
	case constvars.ResourceObservation:
		target := new(Observation)
		err = json.Unmarshal(raw, target)
		resource = target
	case constvars.ResourceDiagnosticReport:
		target := new(DiagnosticReport)
		err = json.Unmarshal(raw, target)
		resource = target
	case constvars.ResourceCarePlan:
		target := new(CarePlan)
		err = json.Unmarshal(raw, target)
		resource = target
	default:
		return nil, exceptions.ErrUnknownResourceType(envelope.ResourceType)
	}
	if err != nil {
		return nil, exceptions.ErrDecodeResponse(err, envelope.ResourceType)
	}
	return resource, nil
}
