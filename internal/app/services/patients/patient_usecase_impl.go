package patients

import (
	"context"

	"carelink-service/internal/pkg/constvars"
	"carelink-service/internal/pkg/dto/requests"
	"carelink-service/internal/pkg/dto/responses"
	"carelink-service/internal/pkg/exceptions"
	"carelink-service/internal/pkg/fhir_dto"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type patientUsecase struct {
	PatientFhirClient PatientFhirClient
	Log               *zap.Logger
}

func NewPatientUsecase(patientFhirClient PatientFhirClient, logger *zap.Logger) PatientUsecase {
	return &patientUsecase{
		PatientFhirClient: patientFhirClient,
		Log:               logger,
	}
}

func (uc *patientUsecase) SearchPatients(ctx context.Context, request *requests.SearchPatientRequest) ([]responses.PatientSummary, error) {
	var (
		bundle *fhir_dto.FHIRBundle
		err    error
	)
	switch {
	case request.NationalID != "":
		bundle, err = uc.PatientFhirClient.FindPatientByNationalID(ctx, request.NationalID)
	case request.NhiCard != "":
		bundle, err = uc.PatientFhirClient.FindPatientByNhiCard(ctx, request.NhiCard)
	default:
		return nil, exceptions.ErrMissingIdentifier(nil)
	}
	if err != nil {
		return nil, err
	}

	summaries := []responses.PatientSummary{}
	if bundle == nil {
		return summaries, nil
	}

	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	for _, entry := range bundle.Entry {
		patient := new(fhir_dto.Patient)
		if err := json.Unmarshal(entry.Resource, patient); err != nil {
			uc.Log.Warn("patientUsecase.SearchPatients skipping undecodable entry",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
			continue
		}
		summaries = append(summaries, responses.PatientSummary{
			ID:        patient.ID,
			Name:      patient.DisplayName(),
			Gender:    patient.Gender,
			BirthDate: patient.BirthDate,
		})
	}
	return summaries, nil
}
