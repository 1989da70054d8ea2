package documents

import (
	"testing"

	"carelink-service/internal/pkg/fhir_dto"

	"github.com/stretchr/testify/assert"
)

func sectionWith(code, title string) *fhir_dto.CompositionSection {
	section := &fhir_dto.CompositionSection{Title: title}
	if code != "" {
		section.Code = &fhir_dto.CodeableConcept{Coding: []fhir_dto.Coding{{Code: code}}}
	}
	return section
}

func TestClassifySection_CodeMatchWinsOverTitle(t *testing.T) {
	// The code says allergies even though the title screams medications.
	section := sectionWith("48765-2", "出院帶藥")
	assert.Equal(t, CategoryAllergies, ClassifySection(section))
}

func TestClassifySection_CodeTable(t *testing.T) {
	testCases := []struct {
		code     string
		expected string
	}{
		{"48765-2", CategoryAllergies},
		{"10183-2", CategoryMedications},
		{"10160-0", CategoryMedications},
		{"11535-2", CategoryDiagnosis},
		{"46241-6", CategoryDiagnosis},
		{"47519-4", CategoryProcedures},
		{"8724-7", CategoryProcedures},
		{"30954-2", CategoryLabs},
	}
	for _, tc := range testCases {
		assert.Equal(t, tc.expected, ClassifySection(sectionWith(tc.code, "")), "code %s", tc.code)
	}
}

func TestClassifySection_TitleKeywords(t *testing.T) {
	testCases := []struct {
		title    string
		expected string
	}{
		{"Allergy History", CategoryAllergies},
		{"藥物過敏史", CategoryAllergies},
		{"Discharge Medications", CategoryMedications},
		{"出院帶藥", CategoryMedications},
		{"Admission Diagnosis", CategoryDiagnosis},
		{"入院診斷", CategoryDiagnosis},
		{"Surgical Record", CategoryProcedures},
		{"手術紀錄", CategoryProcedures},
		{"Lab Results", CategoryLabs},
		{"檢驗結果", CategoryLabs},
	}
	for _, tc := range testCases {
		assert.Equal(t, tc.expected, ClassifySection(sectionWith("", tc.title)), "title %s", tc.title)
	}
}

func TestClassifySection_KeywordRuleOrderIsStable(t *testing.T) {
	// Matches both the allergy keyword and the medication keyword; the
	// allergy rule is declared first and must win.
	section := sectionWith("", "過敏用藥")
	assert.Equal(t, CategoryAllergies, ClassifySection(section))
}

func TestClassifySection_FallsBackToOthers(t *testing.T) {
	assert.Equal(t, CategoryOthers, ClassifySection(sectionWith("", "Hospital Course")))
	assert.Equal(t, CategoryOthers, ClassifySection(sectionWith("9999-9", "")))
	assert.Equal(t, CategoryOthers, ClassifySection(&fhir_dto.CompositionSection{}))
}

func TestClassifySection_IsTotal(t *testing.T) {
	categories := map[string]bool{
		CategoryAllergies:   true,
		CategoryMedications: true,
		CategoryDiagnosis:   true,
		CategoryProcedures:  true,
		CategoryLabs:        true,
		CategoryOthers:      true,
	}
	sections := []*fhir_dto.CompositionSection{
		sectionWith("48765-2", ""),
		sectionWith("", "完全看不懂的段落"),
		sectionWith("", ""),
		sectionWith("11524-6", "心電圖"),
	}
	for _, section := range sections {
		assert.True(t, categories[ClassifySection(section)])
	}
}
