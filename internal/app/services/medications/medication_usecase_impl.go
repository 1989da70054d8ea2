package medications

import (
	"context"

	"carelink-service/internal/pkg/constvars"
	"carelink-service/internal/pkg/dto/responses"
	"carelink-service/internal/pkg/fhir_dto"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type medicationUsecase struct {
	MedicationFhirClient MedicationFhirClient
	Log                  *zap.Logger
}

func NewMedicationUsecase(medicationFhirClient MedicationFhirClient, logger *zap.Logger) MedicationUsecase {
	return &medicationUsecase{
		MedicationFhirClient: medicationFhirClient,
		Log:                  logger,
	}
}

func (uc *medicationUsecase) ListEncounterMedications(ctx context.Context, encounterID string) ([]responses.MedicationSummary, error) {
	bundle, err := uc.MedicationFhirClient.FindMedicationStatementsByEncounter(ctx, encounterID)
	if err != nil {
		return nil, err
	}

	summaries := []responses.MedicationSummary{}
	if bundle == nil {
		return summaries, nil
	}

	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	for _, entry := range bundle.Entry {
		statement := new(fhir_dto.MedicationStatement)
		if err := json.Unmarshal(entry.Resource, statement); err != nil {
			uc.Log.Warn("medicationUsecase.ListEncounterMedications skipping undecodable entry",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
			continue
		}
		summaries = append(summaries, responses.MedicationSummary{
			ID:      statement.ID,
			Display: statement.DisplayText(),
			Status:  statement.Status,
		})
	}
	return summaries, nil
}
