package encounters

import (
	"context"

	"carelink-service/internal/pkg/fhir_dto"
)

type EncounterFhirClient interface {
	FindEncountersByPatient(ctx context.Context, patientID string) (*fhir_dto.FHIRBundle, error)
}
