package documents

import (
	"context"
	"fmt"
	"sync"
	"time"

	"carelink-service/internal/app/config"
	"carelink-service/internal/app/services/compositions"
	"carelink-service/internal/app/services/shared/redis"
	"carelink-service/internal/observability/metrics"
	"carelink-service/internal/pkg/constvars"
	"carelink-service/internal/pkg/dto/requests"
	"carelink-service/internal/pkg/dto/responses"
	"carelink-service/internal/pkg/exceptions"
	"carelink-service/internal/pkg/fhir_dto"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

const unknownHospital = "Unknown Hospital"

// cachedView is the redis payload for one expanded document within a view
// session: the composition, its resolved entries and the selection state.
type cachedView struct {
	Composition *fhir_dto.Composition `json:"composition"`
	Entries     []ResolvedEntry       `json:"entries"`
	State       *ViewState            `json:"state"`
}

type documentUsecase struct {
	CompositionFhirClient compositions.CompositionFhirClient
	Resolver              Resolver
	RedisRepository       redis.RedisRepository
	Metrics               *metrics.Metrics
	InternalConfig        *config.InternalConfig
	Log                   *zap.Logger

	viewLocks sync.Map
}

func NewDocumentUsecase(
	compositionFhirClient compositions.CompositionFhirClient,
	resolver Resolver,
	redisRepository redis.RedisRepository,
	m *metrics.Metrics,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) DocumentUsecase {
	return &documentUsecase{
		CompositionFhirClient: compositionFhirClient,
		Resolver:              resolver,
		RedisRepository:       redisRepository,
		Metrics:               m,
		InternalConfig:        internalConfig,
		Log:                   logger,
	}
}

// ListDocuments returns the patient's discharge and transfer summaries,
// newest first. The upstream search is unfiltered by type, so the two-code
// filter happens here.
func (uc *documentUsecase) ListDocuments(ctx context.Context, patientID string) ([]responses.DocumentSummary, error) {
	bundle, err := uc.CompositionFhirClient.FindCompositionsByPatient(ctx, patientID)
	if err != nil {
		return nil, err
	}

	summaries := []responses.DocumentSummary{}
	if bundle == nil {
		return summaries, nil
	}

	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	for _, entry := range bundle.Entry {
		composition := new(fhir_dto.Composition)
		if err := json.Unmarshal(entry.Resource, composition); err != nil {
			uc.Log.Warn("documentUsecase.ListDocuments skipping undecodable entry",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
			continue
		}
		if !IsSummaryType(composition.TypeCode()) {
			continue
		}
		summaries = append(summaries, buildDocumentSummary(composition))
	}
	return summaries, nil
}

// GetDocumentDetail expands one document for a view session. The first call
// resolves every section entry and caches the resolved set together with the
// default selection; later calls within the session reuse the cache so a
// document is resolved exactly once per view.
func (uc *documentUsecase) GetDocumentDetail(ctx context.Context, sessionID, compositionID string) (*responses.DocumentDetail, error) {
	view, err := uc.loadView(ctx, sessionID, compositionID)
	if err != nil {
		return nil, err
	}
	if view == nil {
		view, err = uc.expand(ctx, sessionID, compositionID)
		if err != nil {
			return nil, err
		}
	}

	detail := &responses.DocumentDetail{
		Document:     buildDocumentSummary(view.Composition),
		Sections:     buildSections(view),
		Selection:    view.State.Selection,
		TextSections: view.State.TextSections,
	}
	return detail, nil
}

// UpdateSelection applies one selection operation to an already expanded
// document and persists the new state for the rest of the session. The
// load-modify-save cycle is serialized per view; concurrent requests on the
// same session and document would otherwise lose updates.
func (uc *documentUsecase) UpdateSelection(ctx context.Context, sessionID, compositionID string, request *requests.UpdateSelectionRequest) (*ViewState, error) {
	lock := uc.viewLock(sessionID, compositionID)
	lock.Lock()
	defer lock.Unlock()

	view, err := uc.loadView(ctx, sessionID, compositionID)
	if err != nil {
		return nil, err
	}
	if view == nil {
		return nil, exceptions.ErrDocumentNotExpanded(nil)
	}

	switch request.Op {
	case requests.SelectionOpToggle:
		if request.ResourceID == "" || !isToggleable(view.Entries, request.ResourceID) {
			return nil, exceptions.ErrInputValidation(nil)
		}
		view.State.Toggle(request.ResourceID)
	case requests.SelectionOpSelectAll:
		view.State.SetAll(view.Entries, request.ResourceTypes, true)
	case requests.SelectionOpDeselectAll:
		view.State.SetAll(view.Entries, request.ResourceTypes, false)
	case requests.SelectionOpSetText:
		if request.SectionCode == "" {
			return nil, exceptions.ErrInputValidation(nil)
		}
		view.State.SetTextSection(request.SectionCode, request.Selected)
	default:
		return nil, exceptions.ErrInputValidation(nil)
	}

	if err := uc.saveView(ctx, sessionID, compositionID, view); err != nil {
		return nil, err
	}
	return view.State, nil
}

// BuildImportPreview builds the import batch for the current selection of an
// already expanded document. The build is pure; nothing is written anywhere.
func (uc *documentUsecase) BuildImportPreview(ctx context.Context, sessionID, compositionID string) (*responses.ImportBatch, error) {
	view, err := uc.loadView(ctx, sessionID, compositionID)
	if err != nil {
		return nil, err
	}
	if view == nil {
		return nil, exceptions.ErrDocumentNotExpanded(nil)
	}

	batch := BuildImportBatch(view.Composition, view.Entries, view.State)
	if uc.Metrics != nil {
		uc.Metrics.ImportBatchesBuilt.Inc()
	}
	return &batch, nil
}

func (uc *documentUsecase) expand(ctx context.Context, sessionID, compositionID string) (*cachedView, error) {
	composition, err := uc.CompositionFhirClient.FindCompositionByID(ctx, compositionID)
	if err != nil {
		return nil, err
	}

	entries, err := uc.Resolver.Resolve(ctx, composition)
	if err != nil {
		return nil, err
	}

	view := &cachedView{
		Composition: composition,
		Entries:     entries,
		State:       NewViewState(composition, entries),
	}
	if err := uc.saveView(ctx, sessionID, compositionID, view); err != nil {
		return nil, err
	}
	return view, nil
}

func (uc *documentUsecase) loadView(ctx context.Context, sessionID, compositionID string) (*cachedView, error) {
	data, err := uc.RedisRepository.Get(ctx, viewStateKey(sessionID, compositionID))
	if err != nil {
		return nil, err
	}
	if data == "" {
		return nil, nil
	}

	view := new(cachedView)
	if err := json.Unmarshal([]byte(data), view); err != nil {
		return nil, exceptions.ErrCannotParseJSON(err)
	}

	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	rehydrated := view.Entries[:0]
	for i := range view.Entries {
		if err := view.Entries[i].Rehydrate(); err != nil {
			uc.Log.Warn("documentUsecase.loadView dropping stale cached entry",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingReferenceKey, view.Entries[i].Reference),
				zap.Error(err),
			)
			continue
		}
		rehydrated = append(rehydrated, view.Entries[i])
	}
	view.Entries = rehydrated
	return view, nil
}

func (uc *documentUsecase) saveView(ctx context.Context, sessionID, compositionID string, view *cachedView) error {
	ttl := time.Duration(uc.InternalConfig.App.ViewStateTTLInMinute) * time.Minute
	if ttl <= 0 {
		ttl = constvars.ViewStateDefaultTTLHours * time.Hour
	}
	return uc.RedisRepository.Set(ctx, viewStateKey(sessionID, compositionID), view, ttl)
}

func viewStateKey(sessionID, compositionID string) string {
	return fmt.Sprintf(constvars.ViewStateKeyFormat, sessionID, compositionID)
}

func (uc *documentUsecase) viewLock(sessionID, compositionID string) *sync.Mutex {
	lock, _ := uc.viewLocks.LoadOrStore(viewStateKey(sessionID, compositionID), &sync.Mutex{})
	return lock.(*sync.Mutex)
}

func buildDocumentSummary(composition *fhir_dto.Composition) responses.DocumentSummary {
	typeCode := composition.TypeCode()
	title := composition.Title
	if title == "" {
		title = DocumentTypeLabel(typeCode)
	}
	organization := unknownHospital
	if composition.Custodian != nil && composition.Custodian.Display != "" {
		organization = composition.Custodian.Display
	}
	return responses.DocumentSummary{
		ID:           composition.ID,
		TypeCode:     typeCode,
		TypeLabel:    DocumentTypeLabel(typeCode),
		Title:        title,
		Date:         composition.Date,
		Organization: organization,
	}
}

func buildSections(view *cachedView) []responses.DocumentSection {
	sections := []responses.DocumentSection{}
	for i := range view.Composition.Section {
		section := &view.Composition.Section[i]

		out := responses.DocumentSection{
			Code:     section.SectionCode(),
			Title:    section.Title,
			Label:    SectionLabel(section.SectionCode(), section.Title),
			Category: ClassifySection(section),
		}
		if section.HasNarrative() {
			out.NarrativeHTML = section.Text.Div
		}
		for _, entry := range view.Entries {
			if entry.SectionIndex != i || entry.Resource == nil {
				continue
			}
			out.Items = append(out.Items, responses.ResolvedItem{
				ID:           entry.Resource.ResourceID(),
				ResourceType: entry.Resource.TypeName(),
				Display:      entry.Resource.DisplayText(),
				HighRisk:     entry.Resource.HighRisk(),
				Reference:    entry.Reference,
			})
		}
		sections = append(sections, out)
	}
	return sections
}
