package medications

import (
	"context"
	"fmt"
	"strings"

	"carelink-service/internal/app/services/shared/fhirclient"
	"carelink-service/internal/pkg/constvars"
	"carelink-service/internal/pkg/fhir_dto"

	"go.uber.org/zap"
)

type medicationFhirClient struct {
	Client fhirclient.Client
	Log    *zap.Logger
}

func NewMedicationFhirClient(client fhirclient.Client, logger *zap.Logger) MedicationFhirClient {
	return &medicationFhirClient{
		Client: client,
		Log:    logger,
	}
}

func (c *medicationFhirClient) FindMedicationStatementsByEncounter(ctx context.Context, encounterID string) (*fhir_dto.FHIRBundle, error) {
	if c.Client == nil || strings.TrimSpace(encounterID) == "" {
		return nil, nil
	}
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("medicationFhirClient.FindMedicationStatementsByEncounter called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEncounterIDKey, encounterID),
	)

	raw, err := c.Client.RequestWithParams(ctx, constvars.ResourceMedicationStatement, map[string]string{
		constvars.FhirSearchParamContext: fmt.Sprintf("%s/%s", constvars.ResourceEncounter, encounterID),
	})
	if err != nil {
		return nil, err
	}
	return fhirclient.DecodeBundle(raw, constvars.ResourceMedicationStatement)
}
