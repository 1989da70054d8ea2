package documents

import (
	"encoding/base64"
	"testing"

	"carelink-service/internal/pkg/fhir_dto"

	"github.com/stretchr/testify/assert"
)

func narrativeComposition() *fhir_dto.Composition {
	return &fhir_dto.Composition{
		ResourceType: "Composition",
		ID:           "comp-1",
		Title:        "出院病歷摘要",
		Section: []fhir_dto.CompositionSection{
			{
				Title: "Chief Complaint",
				Code:  &fhir_dto.CodeableConcept{Coding: []fhir_dto.Coding{{Code: "10154-3"}}},
				Text:  &fhir_dto.Narrative{Status: "generated", Div: "<div>Chest pain for two days</div>"},
			},
			{
				Title: "Past Medical History",
				Code:  &fhir_dto.CodeableConcept{Coding: []fhir_dto.Coding{{Code: "11348-0"}}},
				Text:  &fhir_dto.Narrative{Status: "generated", Div: "<div>Hypertension</div>"},
			},
		},
	}
}

func resolvedEntries() []ResolvedEntry {
	return []ResolvedEntry{
		{Reference: "AllergyIntolerance/a1", Resource: &fhir_dto.AllergyIntolerance{ID: "a1", Criticality: "high", Code: &fhir_dto.CodeableConcept{Text: "Penicillin"}}},
		{Reference: "Condition/c1", Resource: &fhir_dto.Condition{ID: "c1", Code: &fhir_dto.CodeableConcept{Text: "Pneumonia"}}},
		{Reference: "Observation/o1", Resource: &fhir_dto.Observation{ID: "o1", Code: &fhir_dto.CodeableConcept{Text: "WBC"}}},
	}
}

func TestNewViewState_AllergiesPreSelected(t *testing.T) {
	state := NewViewState(narrativeComposition(), resolvedEntries())

	assert.True(t, state.Selection["a1"])
	_, conditionPresent := state.Selection["c1"]
	assert.False(t, conditionPresent)
	_, observationPresent := state.Selection["o1"]
	assert.False(t, observationPresent)
}

func TestNewViewState_HistoryTextSectionDefaultsIn(t *testing.T) {
	state := NewViewState(narrativeComposition(), nil)

	assert.True(t, state.TextSections["11348-0"])
	assert.False(t, state.TextSections["10154-3"])
}

func TestNewViewState_NoHistoryNarrativeNoDefault(t *testing.T) {
	composition := &fhir_dto.Composition{
		Section: []fhir_dto.CompositionSection{
			{Code: &fhir_dto.CodeableConcept{Coding: []fhir_dto.Coding{{Code: "11348-0"}}}},
		},
	}
	state := NewViewState(composition, nil)

	assert.False(t, state.TextSections["11348-0"])
}

func TestViewState_Toggle(t *testing.T) {
	state := NewViewState(narrativeComposition(), resolvedEntries())

	state.Toggle("c1")
	assert.True(t, state.Selection["c1"])
	state.Toggle("c1")
	assert.False(t, state.Selection["c1"])
}

func TestViewState_SetAllIsIdempotentAndScoped(t *testing.T) {
	entries := resolvedEntries()
	state := NewViewState(narrativeComposition(), entries)

	state.SetAll(entries, []string{"Condition", "Observation"}, true)
	assert.True(t, state.Selection["c1"])
	assert.True(t, state.Selection["o1"])
	assert.True(t, state.Selection["a1"], "allergy default untouched")

	state.SetAll(entries, []string{"Condition", "Observation"}, true)
	assert.True(t, state.Selection["c1"], "second apply is a no-op")

	state.SetAll(entries, []string{"Condition", "Observation"}, false)
	assert.False(t, state.Selection["c1"])
	assert.False(t, state.Selection["o1"])
	assert.True(t, state.Selection["a1"], "deselect of other types leaves allergies alone")

	state.SetAll(entries, []string{"Procedure"}, true)
	assert.False(t, state.Selection["c1"], "absent type has no effect")
}

func TestBuildImportBatch_TotalMatchesSelections(t *testing.T) {
	entries := resolvedEntries()
	composition := narrativeComposition()
	state := NewViewState(composition, entries)
	state.Toggle("c1")

	batch := BuildImportBatch(composition, entries, state)

	// a1 + c1 structured, 11348-0 text default.
	assert.Equal(t, 3, batch.Total)

	counted := 0
	for _, group := range batch.Groups {
		counted += len(group.Items)
	}
	assert.Equal(t, batch.Total, counted)
}

func TestBuildImportBatch_DefaultHistoryInChiefComplaintOut(t *testing.T) {
	composition := narrativeComposition()
	state := NewViewState(composition, nil)

	batch := BuildImportBatch(composition, nil, state)

	keys := []string{}
	for _, group := range batch.Groups {
		keys = append(keys, group.Key)
	}
	assert.Contains(t, keys, "history")
	assert.NotContains(t, keys, "chief-complaint")
}

func TestBuildImportBatch_GroupOrderFollowsTaxonomy(t *testing.T) {
	entries := resolvedEntries()
	composition := narrativeComposition()
	state := NewViewState(composition, entries)
	state.SetAll(entries, []string{"Condition", "Observation"}, true)
	state.SetTextSection("10154-3", true)

	batch := BuildImportBatch(composition, entries, state)

	keys := []string{}
	for _, group := range batch.Groups {
		keys = append(keys, group.Key)
	}
	assert.Equal(t, []string{"allergies", "diagnosis", "chief-complaint", "history", "labs"}, keys)
}

func TestBuildImportBatch_WrapsChiefComplaintAsDocument(t *testing.T) {
	composition := narrativeComposition()
	state := NewViewState(composition, nil)
	state.SetTextSection("10154-3", true)

	batch := BuildImportBatch(composition, nil, state)

	var item *fhir_dto.DocumentReference
	var narrative string
	for _, group := range batch.Groups {
		if group.Key != "chief-complaint" {
			continue
		}
		assert.Len(t, group.Items, 1)
		item = group.Items[0].Document
		narrative = group.Items[0].NarrativeHTML
	}

	assert.NotNil(t, item)
	assert.Equal(t, "<div>Chest pain for two days</div>", narrative)
	assert.Equal(t, "DocumentReference", item.ResourceType)
	assert.Equal(t, "current", item.Status)
	assert.Equal(t, "出院病歷摘要", item.Description)
	assert.Len(t, item.Content, 1)
	assert.Equal(t, "text/html", item.Content[0].Attachment.ContentType)

	decoded, err := base64.StdEncoding.DecodeString(item.Content[0].Attachment.Data)
	assert.NoError(t, err)
	assert.Equal(t, "<div>Chest pain for two days</div>", string(decoded))
}

func TestBuildImportBatch_HistoryIsNotWrapped(t *testing.T) {
	composition := narrativeComposition()
	state := NewViewState(composition, nil)

	batch := BuildImportBatch(composition, nil, state)

	for _, group := range batch.Groups {
		if group.Key == "history" {
			assert.Nil(t, group.Items[0].Document)
			assert.Equal(t, "<div>Hypertension</div>", group.Items[0].NarrativeHTML)
		}
	}
}

func TestBuildImportBatch_OptedInTextWithoutNarrativeIsSkipped(t *testing.T) {
	composition := &fhir_dto.Composition{}
	state := &ViewState{
		Selection:    map[string]bool{},
		TextSections: map[string]bool{"18776-5": true},
	}

	batch := BuildImportBatch(composition, nil, state)

	assert.Zero(t, batch.Total)
	assert.Empty(t, batch.Groups)
}

func TestBuildImportBatch_IsPure(t *testing.T) {
	entries := resolvedEntries()
	composition := narrativeComposition()
	state := NewViewState(composition, entries)
	state.Toggle("c1")

	first := BuildImportBatch(composition, entries, state)
	second := BuildImportBatch(composition, entries, state)

	assert.Equal(t, first, second)
	assert.True(t, state.Selection["a1"])
	assert.True(t, state.Selection["c1"])
}

func TestBuildImportBatch_ItemsKeepResolutionOrder(t *testing.T) {
	entries := []ResolvedEntry{
		{Reference: "Condition/c2", Resource: &fhir_dto.Condition{ID: "c2"}},
		{Reference: "Condition/c1", Resource: &fhir_dto.Condition{ID: "c1"}},
	}
	state := &ViewState{
		Selection:    map[string]bool{"c1": true, "c2": true},
		TextSections: map[string]bool{},
	}

	batch := BuildImportBatch(&fhir_dto.Composition{}, entries, state)

	assert.Len(t, batch.Groups, 1)
	assert.Equal(t, "c2", batch.Groups[0].Items[0].ID)
	assert.Equal(t, "c1", batch.Groups[0].Items[1].ID)
}
