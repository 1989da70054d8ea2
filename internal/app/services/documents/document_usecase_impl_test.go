package documents

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"carelink-service/internal/app/config"
	"carelink-service/internal/pkg/dto/requests"
	"carelink-service/internal/pkg/exceptions"
	"carelink-service/internal/pkg/fhir_dto"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type MockCompositionFhirClient struct {
	mock.Mock
}

func (m *MockCompositionFhirClient) FindCompositionsByPatient(ctx context.Context, patientID string) (*fhir_dto.FHIRBundle, error) {
	args := m.Called(ctx, patientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*fhir_dto.FHIRBundle), args.Error(1)
}

func (m *MockCompositionFhirClient) FindCompositionByID(ctx context.Context, compositionID string) (*fhir_dto.Composition, error) {
	args := m.Called(ctx, compositionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*fhir_dto.Composition), args.Error(1)
}

type MockResolver struct {
	mock.Mock
}

func (m *MockResolver) Resolve(ctx context.Context, composition *fhir_dto.Composition) ([]ResolvedEntry, error) {
	args := m.Called(ctx, composition)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]ResolvedEntry), args.Error(1)
}

// memoryRedis is an in-memory stand-in for the redis repository.
type memoryRedis struct {
	values map[string]string
}

func newMemoryRedis() *memoryRedis {
	return &memoryRedis{values: map[string]string{}}
}

func (r *memoryRedis) Set(ctx context.Context, key string, value interface{}, exp time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	r.values[key] = string(data)
	return nil
}

func (r *memoryRedis) Get(ctx context.Context, key string) (string, error) {
	return r.values[key], nil
}

func (r *memoryRedis) Delete(ctx context.Context, key string) error {
	delete(r.values, key)
	return nil
}

// slowRedis is a memoryRedis with per-call latency, wide enough for two
// unserialized load-modify-save cycles to interleave.
type slowRedis struct {
	mu     sync.Mutex
	values map[string]string
}

func newSlowRedis() *slowRedis {
	return &slowRedis{values: map[string]string{}}
}

func (r *slowRedis) Set(ctx context.Context, key string, value interface{}, exp time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	time.Sleep(2 * time.Millisecond)
	r.mu.Lock()
	defer r.mu.Unlock()
	r.values[key] = string(data)
	return nil
}

func (r *slowRedis) Get(ctx context.Context, key string) (string, error) {
	time.Sleep(2 * time.Millisecond)
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.values[key], nil
}

func (r *slowRedis) Delete(ctx context.Context, key string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.values, key)
	return nil
}

func testInternalConfig() *config.InternalConfig {
	return &config.InternalConfig{
		App: config.App{ViewStateTTLInMinute: 30},
	}
}

func expandableComposition() *fhir_dto.Composition {
	return &fhir_dto.Composition{
		ResourceType: "Composition",
		ID:           "comp-1",
		Title:        "出院病歷摘要",
		Type:         &fhir_dto.CodeableConcept{Coding: []fhir_dto.Coding{{Code: "18842-5"}}},
		Custodian:    &fhir_dto.Reference{Display: "臺大醫院"},
		Date:         "2024-03-01",
		Section: []fhir_dto.CompositionSection{
			{
				Title: "Allergies",
				Code:  &fhir_dto.CodeableConcept{Coding: []fhir_dto.Coding{{Code: "48765-2"}}},
				Entry: []fhir_dto.Reference{{Reference: "AllergyIntolerance/a1"}},
			},
		},
	}
}

func allergyEntry() ResolvedEntry {
	raw := json.RawMessage(`{"resourceType":"AllergyIntolerance","id":"a1","criticality":"high","code":{"text":"Penicillin"}}`)
	resource, _ := fhir_dto.DecodeClinicalResource(raw)
	return ResolvedEntry{
		Reference:    "AllergyIntolerance/a1",
		SectionIndex: 0,
		SectionTitle: "Allergies",
		SectionCode:  "48765-2",
		Raw:          raw,
		Resource:     resource,
	}
}

func conditionEntry(id string) ResolvedEntry {
	raw := json.RawMessage(fmt.Sprintf(`{"resourceType":"Condition","id":"%s","code":{"text":"Pneumonia"}}`, id))
	resource, _ := fhir_dto.DecodeClinicalResource(raw)
	return ResolvedEntry{
		Reference:    "Condition/" + id,
		SectionIndex: 0,
		SectionTitle: "Allergies",
		SectionCode:  "48765-2",
		Raw:          raw,
		Resource:     resource,
	}
}

func carePlanEntry(id string) ResolvedEntry {
	raw := json.RawMessage(fmt.Sprintf(`{"resourceType":"CarePlan","id":"%s","title":"回診追蹤"}`, id))
	resource, _ := fhir_dto.DecodeClinicalResource(raw)
	return ResolvedEntry{
		Reference:    "CarePlan/" + id,
		SectionIndex: 0,
		SectionTitle: "Allergies",
		SectionCode:  "48765-2",
		Raw:          raw,
		Resource:     resource,
	}
}

func TestGetDocumentDetail_ResolvesOncePerViewSession(t *testing.T) {
	compositionClient := new(MockCompositionFhirClient)
	compositionClient.On("FindCompositionByID", mock.Anything, "comp-1").Return(expandableComposition(), nil).Once()

	resolver := new(MockResolver)
	resolver.On("Resolve", mock.Anything, mock.Anything).Return([]ResolvedEntry{allergyEntry()}, nil).Once()

	usecase := NewDocumentUsecase(compositionClient, resolver, newMemoryRedis(), nil, testInternalConfig(), zap.NewNop())

	first, err := usecase.GetDocumentDetail(context.Background(), "session-1", "comp-1")
	assert.NoError(t, err)
	assert.True(t, first.Selection["a1"], "allergy pre-selected at resolution")
	assert.Len(t, first.Sections, 1)
	assert.Equal(t, CategoryAllergies, first.Sections[0].Category)
	assert.Equal(t, "Penicillin (High Risk)", first.Sections[0].Items[0].Display)

	second, err := usecase.GetDocumentDetail(context.Background(), "session-1", "comp-1")
	assert.NoError(t, err)
	assert.Equal(t, first.Selection, second.Selection)

	compositionClient.AssertNumberOfCalls(t, "FindCompositionByID", 1)
	resolver.AssertNumberOfCalls(t, "Resolve", 1)
}

func TestGetDocumentDetail_SessionsAreIndependent(t *testing.T) {
	compositionClient := new(MockCompositionFhirClient)
	compositionClient.On("FindCompositionByID", mock.Anything, "comp-1").Return(expandableComposition(), nil)

	resolver := new(MockResolver)
	resolver.On("Resolve", mock.Anything, mock.Anything).Return([]ResolvedEntry{allergyEntry()}, nil)

	usecase := NewDocumentUsecase(compositionClient, resolver, newMemoryRedis(), nil, testInternalConfig(), zap.NewNop())

	_, err := usecase.GetDocumentDetail(context.Background(), "session-1", "comp-1")
	assert.NoError(t, err)
	_, err = usecase.GetDocumentDetail(context.Background(), "session-2", "comp-1")
	assert.NoError(t, err)

	resolver.AssertNumberOfCalls(t, "Resolve", 2)
}

func TestUpdateSelection_RequiresExpandedDocument(t *testing.T) {
	usecase := NewDocumentUsecase(new(MockCompositionFhirClient), new(MockResolver), newMemoryRedis(), nil, testInternalConfig(), zap.NewNop())

	_, err := usecase.UpdateSelection(context.Background(), "session-1", "comp-1", &requests.UpdateSelectionRequest{
		Op:         requests.SelectionOpToggle,
		ResourceID: "a1",
	})

	customErr, ok := err.(*exceptions.CustomError)
	assert.True(t, ok)
	assert.Equal(t, 409, customErr.StatusCode)
}

func TestUpdateSelection_TogglePersistsAcrossLoads(t *testing.T) {
	compositionClient := new(MockCompositionFhirClient)
	compositionClient.On("FindCompositionByID", mock.Anything, "comp-1").Return(expandableComposition(), nil)

	resolver := new(MockResolver)
	resolver.On("Resolve", mock.Anything, mock.Anything).Return([]ResolvedEntry{allergyEntry()}, nil)

	usecase := NewDocumentUsecase(compositionClient, resolver, newMemoryRedis(), nil, testInternalConfig(), zap.NewNop())

	_, err := usecase.GetDocumentDetail(context.Background(), "session-1", "comp-1")
	assert.NoError(t, err)

	state, err := usecase.UpdateSelection(context.Background(), "session-1", "comp-1", &requests.UpdateSelectionRequest{
		Op:         requests.SelectionOpToggle,
		ResourceID: "a1",
	})
	assert.NoError(t, err)
	assert.False(t, state.Selection["a1"])

	detail, err := usecase.GetDocumentDetail(context.Background(), "session-1", "comp-1")
	assert.NoError(t, err)
	assert.False(t, detail.Selection["a1"])
}

func TestUpdateSelection_ConcurrentTogglesKeepEveryUpdate(t *testing.T) {
	compositionClient := new(MockCompositionFhirClient)
	compositionClient.On("FindCompositionByID", mock.Anything, "comp-1").Return(expandableComposition(), nil)

	resolver := new(MockResolver)
	resolver.On("Resolve", mock.Anything, mock.Anything).Return([]ResolvedEntry{conditionEntry("c1"), conditionEntry("c2")}, nil)

	usecase := NewDocumentUsecase(compositionClient, resolver, newSlowRedis(), nil, testInternalConfig(), zap.NewNop())

	for round := 0; round < 20; round++ {
		sessionID := fmt.Sprintf("session-%d", round)
		_, err := usecase.GetDocumentDetail(context.Background(), sessionID, "comp-1")
		assert.NoError(t, err)

		var wg sync.WaitGroup
		for _, resourceID := range []string{"c1", "c2"} {
			wg.Add(1)
			go func(resourceID string) {
				defer wg.Done()
				_, err := usecase.UpdateSelection(context.Background(), sessionID, "comp-1", &requests.UpdateSelectionRequest{
					Op:         requests.SelectionOpToggle,
					ResourceID: resourceID,
				})
				assert.NoError(t, err)
			}(resourceID)
		}
		wg.Wait()

		detail, err := usecase.GetDocumentDetail(context.Background(), sessionID, "comp-1")
		assert.NoError(t, err)
		assert.True(t, detail.Selection["c1"], "round %d lost the c1 toggle", round)
		assert.True(t, detail.Selection["c2"], "round %d lost the c2 toggle", round)
	}
}

func TestUpdateSelection_RejectsResourcesOutsideImportTaxonomy(t *testing.T) {
	compositionClient := new(MockCompositionFhirClient)
	compositionClient.On("FindCompositionByID", mock.Anything, "comp-1").Return(expandableComposition(), nil)

	resolver := new(MockResolver)
	resolver.On("Resolve", mock.Anything, mock.Anything).Return([]ResolvedEntry{allergyEntry(), carePlanEntry("cp1")}, nil)

	usecase := NewDocumentUsecase(compositionClient, resolver, newMemoryRedis(), nil, testInternalConfig(), zap.NewNop())

	_, err := usecase.GetDocumentDetail(context.Background(), "session-1", "comp-1")
	assert.NoError(t, err)

	// A resolved CarePlan renders in the detail view but no import section
	// counts it, so it cannot enter the selection map.
	_, err = usecase.UpdateSelection(context.Background(), "session-1", "comp-1", &requests.UpdateSelectionRequest{
		Op:         requests.SelectionOpToggle,
		ResourceID: "cp1",
	})
	customErr, ok := err.(*exceptions.CustomError)
	assert.True(t, ok)
	assert.Equal(t, 400, customErr.StatusCode)

	_, err = usecase.UpdateSelection(context.Background(), "session-1", "comp-1", &requests.UpdateSelectionRequest{
		Op:         requests.SelectionOpToggle,
		ResourceID: "no-such-resource",
	})
	assert.Error(t, err)

	batch, err := usecase.BuildImportPreview(context.Background(), "session-1", "comp-1")
	assert.NoError(t, err)
	assert.Equal(t, 1, batch.Total, "only the pre-selected allergy counts")

	selected := 0
	detail, err := usecase.GetDocumentDetail(context.Background(), "session-1", "comp-1")
	assert.NoError(t, err)
	for _, isSelected := range detail.Selection {
		if isSelected {
			selected++
		}
	}
	assert.Equal(t, batch.Total, selected, "batch total matches the true entries of the selection map")
}

func TestBuildImportPreview_UsesCurrentSelection(t *testing.T) {
	compositionClient := new(MockCompositionFhirClient)
	compositionClient.On("FindCompositionByID", mock.Anything, "comp-1").Return(expandableComposition(), nil)

	resolver := new(MockResolver)
	resolver.On("Resolve", mock.Anything, mock.Anything).Return([]ResolvedEntry{allergyEntry()}, nil)

	usecase := NewDocumentUsecase(compositionClient, resolver, newMemoryRedis(), nil, testInternalConfig(), zap.NewNop())

	_, err := usecase.GetDocumentDetail(context.Background(), "session-1", "comp-1")
	assert.NoError(t, err)

	batch, err := usecase.BuildImportPreview(context.Background(), "session-1", "comp-1")
	assert.NoError(t, err)
	assert.Equal(t, 1, batch.Total)
	assert.Equal(t, "allergies", batch.Groups[0].Key)
	assert.True(t, batch.Groups[0].Items[0].HighRisk)
}

func TestListDocuments_FiltersToSummaryTypes(t *testing.T) {
	bundle := &fhir_dto.FHIRBundle{
		ResourceType: "Bundle",
		Entry: []fhir_dto.Entry{
			{Resource: json.RawMessage(`{"resourceType":"Composition","id":"d1","title":"出院","type":{"coding":[{"code":"18842-5"}]},"date":"2024-03-01"}`)},
			{Resource: json.RawMessage(`{"resourceType":"Composition","id":"d2","type":{"coding":[{"code":"11488-4"}]},"date":"2024-02-01"}`)},
			{Resource: json.RawMessage(`{"resourceType":"Composition","id":"d3","type":{"coding":[{"code":"18761-7"}]},"date":"2024-01-01"}`)},
		},
	}
	compositionClient := new(MockCompositionFhirClient)
	compositionClient.On("FindCompositionsByPatient", mock.Anything, "p1").Return(bundle, nil)

	usecase := NewDocumentUsecase(compositionClient, new(MockResolver), newMemoryRedis(), nil, testInternalConfig(), zap.NewNop())

	documents, err := usecase.ListDocuments(context.Background(), "p1")
	assert.NoError(t, err)
	assert.Len(t, documents, 2)
	assert.Equal(t, "d1", documents[0].ID)
	assert.Equal(t, "出院病摘", documents[0].TypeLabel)
	assert.Equal(t, "Unknown Hospital", documents[0].Organization)
	assert.Equal(t, "d3", documents[1].ID)
	assert.Equal(t, "轉院病摘", documents[1].Title, "missing title falls back to the type label")
}
