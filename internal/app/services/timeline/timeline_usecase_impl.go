package timeline

import (
	"context"

	"carelink-service/internal/app/services/documents"
	"carelink-service/internal/app/services/encounters"
	"carelink-service/internal/pkg/constvars"
	"carelink-service/internal/pkg/dto/responses"
	"carelink-service/internal/pkg/fhir_dto"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type timelineUsecase struct {
	DocumentUsecase     documents.DocumentUsecase
	EncounterFhirClient encounters.EncounterFhirClient
	Log                 *zap.Logger
}

func NewTimelineUsecase(documentUsecase documents.DocumentUsecase, encounterFhirClient encounters.EncounterFhirClient, logger *zap.Logger) TimelineUsecase {
	return &timelineUsecase{
		DocumentUsecase:     documentUsecase,
		EncounterFhirClient: encounterFhirClient,
		Log:                 logger,
	}
}

// GetPatientTimeline merges the patient's summary documents and ambulatory
// encounters into one descending sequence. The two searches have no data
// dependency, so they run concurrently and the merge waits for both.
func (uc *timelineUsecase) GetPatientTimeline(ctx context.Context, patientID string) (*responses.Timeline, error) {
	type documentsResult struct {
		items []responses.DocumentSummary
		err   error
	}
	type encountersResult struct {
		bundle *fhir_dto.FHIRBundle
		err    error
	}

	documentsChan := make(chan documentsResult, 1)
	encountersChan := make(chan encountersResult, 1)

	go func() {
		items, err := uc.DocumentUsecase.ListDocuments(ctx, patientID)
		documentsChan <- documentsResult{items: items, err: err}
	}()
	go func() {
		bundle, err := uc.EncounterFhirClient.FindEncountersByPatient(ctx, patientID)
		encountersChan <- encountersResult{bundle: bundle, err: err}
	}()

	docs := <-documentsChan
	encs := <-encountersChan
	if docs.err != nil {
		return nil, docs.err
	}
	if encs.err != nil {
		return nil, encs.err
	}

	documentItems := make([]responses.TimelineItem, 0, len(docs.items))
	for i := range docs.items {
		document := docs.items[i]
		documentItems = append(documentItems, responses.TimelineItem{
			Kind:     responses.TimelineKindDocument,
			Date:     document.Date,
			Document: &document,
		})
	}

	return Merge(documentItems, uc.buildEncounterItems(ctx, encs.bundle)), nil
}

// buildEncounterItems keeps ambulatory encounters that carry at least one
// period instant; everything else is dropped from the timeline.
func (uc *timelineUsecase) buildEncounterItems(ctx context.Context, bundle *fhir_dto.FHIRBundle) []responses.TimelineItem {
	items := []responses.TimelineItem{}
	if bundle == nil {
		return items
	}

	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	for _, entry := range bundle.Entry {
		encounter := new(fhir_dto.Encounter)
		if err := json.Unmarshal(entry.Resource, encounter); err != nil {
			uc.Log.Warn("timelineUsecase.buildEncounterItems skipping undecodable entry",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
			continue
		}
		if encounter.Class.Code != constvars.FhirEncounterClassAmbulatory {
			continue
		}
		date := encounter.DerivedDate()
		if date == "" {
			continue
		}

		organization := ""
		if encounter.ServiceProvider != nil {
			organization = encounter.ServiceProvider.Display
		}
		items = append(items, responses.TimelineItem{
			Kind: responses.TimelineKindEncounter,
			Date: date,
			Encounter: &responses.EncounterSummary{
				ID:           encounter.ID,
				Date:         date,
				ServiceType:  encounter.ServiceType.DisplayText(""),
				Organization: organization,
			},
		})
	}
	return items
}
