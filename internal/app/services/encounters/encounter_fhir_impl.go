package encounters

import (
	"context"
	"fmt"
	"strings"

	"carelink-service/internal/app/services/shared/fhirclient"
	"carelink-service/internal/pkg/constvars"
	"carelink-service/internal/pkg/fhir_dto"

	"go.uber.org/zap"
)

type encounterFhirClient struct {
	Client fhirclient.Client
	Log    *zap.Logger
}

func NewEncounterFhirClient(client fhirclient.Client, logger *zap.Logger) EncounterFhirClient {
	return &encounterFhirClient{
		Client: client,
		Log:    logger,
	}
}

func (c *encounterFhirClient) FindEncountersByPatient(ctx context.Context, patientID string) (*fhir_dto.FHIRBundle, error) {
	if c.Client == nil || strings.TrimSpace(patientID) == "" {
		return nil, nil
	}
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("encounterFhirClient.FindEncountersByPatient called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patientID),
	)

	raw, err := c.Client.RequestWithParams(ctx, constvars.ResourceEncounter, map[string]string{
		constvars.FhirSearchParamSubject: fmt.Sprintf("%s/%s", constvars.ResourcePatient, patientID),
		constvars.FhirSearchParamSort:    constvars.FhirSortDateDescending,
	})
	if err != nil {
		return nil, err
	}
	return fhirclient.DecodeBundle(raw, constvars.ResourceEncounter)
}
