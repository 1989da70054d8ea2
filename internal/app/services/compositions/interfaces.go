package compositions

import (
	"context"

	"carelink-service/internal/pkg/fhir_dto"
)

type CompositionFhirClient interface {
	FindCompositionsByPatient(ctx context.Context, patientID string) (*fhir_dto.FHIRBundle, error)
	FindCompositionByID(ctx context.Context, compositionID string) (*fhir_dto.Composition, error)
}
