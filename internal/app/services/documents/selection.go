package documents

import (
	"encoding/base64"

	"carelink-service/internal/pkg/constvars"
	"carelink-service/internal/pkg/dto/responses"
	"carelink-service/internal/pkg/fhir_dto"
)

// ViewState is the per-view selection state of one expanded document:
// structured resources keyed by resource id, narrative opt-ins keyed by
// section code.
type ViewState struct {
	Selection    map[string]bool `json:"selection"`
	TextSections map[string]bool `json:"text_sections"`
}

// NewViewState builds the default selection right after resolution: every
// resolved AllergyIntolerance starts selected, and the default-selected
// narrative sections start opted in when the composition carries them with a
// narrative. The allergy default is never revoked automatically afterwards.
func NewViewState(composition *fhir_dto.Composition, entries []ResolvedEntry) *ViewState {
	state := &ViewState{
		Selection:    map[string]bool{},
		TextSections: map[string]bool{},
	}
	for _, entry := range entries {
		if entry.Resource == nil {
			continue
		}
		if entry.Resource.TypeName() == constvars.ResourceAllergyIntolerance {
			state.Selection[entry.Resource.ResourceID()] = true
		}
	}
	for _, section := range importSections {
		if section.TextOnly && section.DefaultSelected && findNarrativeSection(composition, section.TextSectionCode) != nil {
			state.TextSections[section.TextSectionCode] = true
		}
	}
	return state
}

// Toggle flips the selection of a single structured resource.
func (s *ViewState) Toggle(resourceID string) {
	s.Selection[resourceID] = !s.Selection[resourceID]
}

// isToggleable reports whether the id names a resolved resource that an
// import section counts. Keeping everything else out of the selection map
// keeps the batch total equal to the map's true entries.
func isToggleable(entries []ResolvedEntry, resourceID string) bool {
	for _, entry := range entries {
		if entry.Resource == nil || entry.Resource.ResourceID() != resourceID {
			continue
		}
		if importableResourceTypes[entry.Resource.TypeName()] {
			return true
		}
	}
	return false
}

// SetAll sets the selection of every resolved resource whose type is listed.
// Resources of other types are untouched; the operation is idempotent.
func (s *ViewState) SetAll(entries []ResolvedEntry, resourceTypes []string, selected bool) {
	for _, entry := range entries {
		if entry.Resource == nil {
			continue
		}
		if containsType(resourceTypes, entry.Resource.TypeName()) {
			s.Selection[entry.Resource.ResourceID()] = selected
		}
	}
}

// SetTextSection opts a narrative section in or out.
func (s *ViewState) SetTextSection(sectionCode string, selected bool) {
	s.TextSections[sectionCode] = selected
}

// BuildImportBatch partitions the selected structured resources into their
// import-section groups and appends opted-in narrative sections. Group order
// is the taxonomy declaration order; item order within a group is resolution
// order. Empty groups are omitted. The function is pure: same inputs, same
// batch, no state mutated.
func BuildImportBatch(composition *fhir_dto.Composition, entries []ResolvedEntry, state *ViewState) responses.ImportBatch {
	batch := responses.ImportBatch{Groups: []responses.ImportGroup{}}
	for _, section := range importSections {
		var items []responses.ImportItem
		if section.TextOnly {
			items = textSectionItems(composition, section, state)
		} else {
			items = structuredItems(entries, section, state)
		}
		if len(items) == 0 {
			continue
		}
		batch.Total += len(items)
		batch.Groups = append(batch.Groups, responses.ImportGroup{
			Key:   section.Key,
			Label: section.Label,
			Icon:  section.Icon,
			Items: items,
		})
	}
	return batch
}

func structuredItems(entries []ResolvedEntry, section ImportSection, state *ViewState) []responses.ImportItem {
	items := []responses.ImportItem{}
	for _, entry := range entries {
		if entry.Resource == nil {
			continue
		}
		if !containsType(section.ResourceTypes, entry.Resource.TypeName()) {
			continue
		}
		if !state.Selection[entry.Resource.ResourceID()] {
			continue
		}
		items = append(items, responses.ImportItem{
			ID:           entry.Resource.ResourceID(),
			ResourceType: entry.Resource.TypeName(),
			Display:      entry.Resource.DisplayText(),
			HighRisk:     entry.Resource.HighRisk(),
			Reference:    entry.Reference,
		})
	}
	return items
}

func textSectionItems(composition *fhir_dto.Composition, section ImportSection, state *ViewState) []responses.ImportItem {
	if !state.TextSections[section.TextSectionCode] {
		return nil
	}
	source := findNarrativeSection(composition, section.TextSectionCode)
	if source == nil {
		return nil
	}

	item := responses.ImportItem{
		SectionCode:   section.TextSectionCode,
		Display:       SectionLabel(section.TextSectionCode, source.Title),
		NarrativeHTML: source.Text.Div,
	}
	if section.WrapAsDocument {
		item.Document = wrapNarrative(composition, section, source)
	}
	return []responses.ImportItem{item}
}

// wrapNarrative synthesizes a DocumentReference-shaped payload around a
// narrative fragment, base64-encoded, for receiving systems that only accept
// document-formed input.
func wrapNarrative(composition *fhir_dto.Composition, section ImportSection, source *fhir_dto.CompositionSection) *fhir_dto.DocumentReference {
	label := SectionLabel(section.TextSectionCode, source.Title)
	return &fhir_dto.DocumentReference{
		ResourceType: constvars.ResourceDocumentReference,
		Status:       "current",
		Type: &fhir_dto.CodeableConcept{
			Coding: []fhir_dto.Coding{{
				System:  constvars.LoincSystem,
				Code:    section.TextSectionCode,
				Display: label,
			}},
		},
		Description: composition.Title,
		Content: []fhir_dto.DocumentReferenceContent{{
			Attachment: fhir_dto.Attachment{
				ContentType: "text/html",
				Data:        base64.StdEncoding.EncodeToString([]byte(source.Text.Div)),
				Title:       label,
			},
		}},
	}
}

func findNarrativeSection(composition *fhir_dto.Composition, sectionCode string) *fhir_dto.CompositionSection {
	if composition == nil {
		return nil
	}
	for i := range composition.Section {
		section := &composition.Section[i]
		if section.SectionCode() == sectionCode && section.HasNarrative() {
			return section
		}
	}
	return nil
}

func containsType(resourceTypes []string, typeName string) bool {
	for _, resourceType := range resourceTypes {
		if resourceType == typeName {
			return true
		}
	}
	return false
}
