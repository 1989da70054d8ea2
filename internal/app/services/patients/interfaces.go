package patients

import (
	"context"

	"carelink-service/internal/pkg/dto/requests"
	"carelink-service/internal/pkg/dto/responses"
	"carelink-service/internal/pkg/fhir_dto"
)

type PatientFhirClient interface {
	FindPatientByNationalID(ctx context.Context, nationalID string) (*fhir_dto.FHIRBundle, error)
	FindPatientByNhiCard(ctx context.Context, cardNumber string) (*fhir_dto.FHIRBundle, error)
}

type PatientUsecase interface {
	SearchPatients(ctx context.Context, request *requests.SearchPatientRequest) ([]responses.PatientSummary, error)
}
