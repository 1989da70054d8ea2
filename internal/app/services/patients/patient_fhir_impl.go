package patients

import (
	"context"
	"fmt"
	"strings"

	"carelink-service/internal/app/services/shared/fhirclient"
	"carelink-service/internal/pkg/constvars"
	"carelink-service/internal/pkg/fhir_dto"

	"go.uber.org/zap"
)

type patientFhirClient struct {
	Client fhirclient.Client
	Log    *zap.Logger
}

func NewPatientFhirClient(client fhirclient.Client, logger *zap.Logger) PatientFhirClient {
	return &patientFhirClient{
		Client: client,
		Log:    logger,
	}
}

// FindPatientByNationalID searches by the Taiwan national-ID identifier
// system. The identifier value is upper-cased before substitution. A missing
// client or blank identifier yields a nil bundle, not an error.
func (c *patientFhirClient) FindPatientByNationalID(ctx context.Context, nationalID string) (*fhir_dto.FHIRBundle, error) {
	if c.Client == nil || strings.TrimSpace(nationalID) == "" {
		return nil, nil
	}
	identifier := fmt.Sprintf("%s|%s", constvars.IdentifierSystemNationalID, strings.ToUpper(nationalID))
	return c.searchByIdentifier(ctx, identifier)
}

// FindPatientByNhiCard searches by the NHI card number identifier system.
// The card number is not case-normalized.
func (c *patientFhirClient) FindPatientByNhiCard(ctx context.Context, cardNumber string) (*fhir_dto.FHIRBundle, error) {
	if c.Client == nil || strings.TrimSpace(cardNumber) == "" {
		return nil, nil
	}
	identifier := fmt.Sprintf("%s|%s", constvars.IdentifierSystemNhiCard, cardNumber)
	return c.searchByIdentifier(ctx, identifier)
}

func (c *patientFhirClient) searchByIdentifier(ctx context.Context, identifier string) (*fhir_dto.FHIRBundle, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("patientFhirClient.searchByIdentifier called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	raw, err := c.Client.RequestWithParams(ctx, constvars.ResourcePatient, map[string]string{
		constvars.FhirSearchParamIdentifier: identifier,
	})
	if err != nil {
		return nil, err
	}

	bundle, err := fhirclient.DecodeBundle(raw, constvars.ResourcePatient)
	if err != nil {
		return nil, err
	}

	c.Log.Info("patientFhirClient.searchByIdentifier succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingPatientCountKey, len(bundle.Entry)),
	)
	return bundle, nil
}
