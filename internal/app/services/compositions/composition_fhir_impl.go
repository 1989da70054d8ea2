package compositions

import (
	"context"
	"fmt"
	"strings"

	"carelink-service/internal/app/services/shared/fhirclient"
	"carelink-service/internal/pkg/constvars"
	"carelink-service/internal/pkg/exceptions"
	"carelink-service/internal/pkg/fhir_dto"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type compositionFhirClient struct {
	Client fhirclient.Client
	Log    *zap.Logger
}

func NewCompositionFhirClient(client fhirclient.Client, logger *zap.Logger) CompositionFhirClient {
	return &compositionFhirClient{
		Client: client,
		Log:    logger,
	}
}

// FindCompositionsByPatient fetches every Composition for the patient, newest
// first. Type filtering happens on our side so one search serves both the
// timeline and the document list.
func (c *compositionFhirClient) FindCompositionsByPatient(ctx context.Context, patientID string) (*fhir_dto.FHIRBundle, error) {
	if c.Client == nil || strings.TrimSpace(patientID) == "" {
		return nil, nil
	}
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("compositionFhirClient.FindCompositionsByPatient called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patientID),
	)

	raw, err := c.Client.RequestWithParams(ctx, constvars.ResourceComposition, map[string]string{
		constvars.FhirSearchParamSubject: fmt.Sprintf("%s/%s", constvars.ResourcePatient, patientID),
		constvars.FhirSearchParamSort:    constvars.FhirSortDateDescending,
	})
	if err != nil {
		return nil, err
	}
	return fhirclient.DecodeBundle(raw, constvars.ResourceComposition)
}

func (c *compositionFhirClient) FindCompositionByID(ctx context.Context, compositionID string) (*fhir_dto.Composition, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("compositionFhirClient.FindCompositionByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingCompositionIDKey, compositionID),
	)

	raw, err := c.Client.Request(ctx, fmt.Sprintf("%s/%s", constvars.ResourceComposition, compositionID))
	if err != nil {
		return nil, err
	}

	composition := new(fhir_dto.Composition)
	if err := json.Unmarshal(raw, composition); err != nil {
		return nil, exceptions.ErrDecodeResponse(err, constvars.ResourceComposition)
	}
	if composition.ID == "" {
		return nil, exceptions.ErrDocumentNotFound(nil)
	}
	return composition, nil
}
