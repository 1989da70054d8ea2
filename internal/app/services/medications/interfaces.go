package medications

import (
	"context"

	"carelink-service/internal/pkg/dto/responses"
	"carelink-service/internal/pkg/fhir_dto"
)

type MedicationFhirClient interface {
	FindMedicationStatementsByEncounter(ctx context.Context, encounterID string) (*fhir_dto.FHIRBundle, error)
}

type MedicationUsecase interface {
	ListEncounterMedications(ctx context.Context, encounterID string) ([]responses.MedicationSummary, error)
}
