package documents

import "carelink-service/internal/pkg/constvars"

// Section categories for the six-way classification of a single document's
// sections.
const (
	CategoryAllergies   = "allergies"
	CategoryMedications = "medications"
	CategoryDiagnosis   = "diagnosis"
	CategoryProcedures  = "procedures"
	CategoryLabs        = "labs"
	CategoryOthers      = "others"
)

// sectionCodeCategories maps LOINC section codes to their category. An exact
// code match always wins over a title keyword.
var sectionCodeCategories = map[string]string{
	"48765-2": CategoryAllergies,
	"10183-2": CategoryMedications,
	"10160-0": CategoryMedications,
	"11535-2": CategoryDiagnosis,
	"46241-6": CategoryDiagnosis,
	"47519-4": CategoryProcedures,
	"8724-7":  CategoryProcedures,
	"30954-2": CategoryLabs,
}

type titleKeywordRule struct {
	keyword  string
	category string
}

// titleKeywordRules is checked in declaration order; the first matching rule
// wins. Keep the ordering stable, downstream systems depend on it.
var titleKeywordRules = []titleKeywordRule{
	{"過敏", CategoryAllergies},
	{"allerg", CategoryAllergies},
	{"帶藥", CategoryMedications},
	{"用藥", CategoryMedications},
	{"medication", CategoryMedications},
	{"drug", CategoryMedications},
	{"診斷", CategoryDiagnosis},
	{"diagnos", CategoryDiagnosis},
	{"手術", CategoryProcedures},
	{"處置", CategoryProcedures},
	{"procedure", CategoryProcedures},
	{"surg", CategoryProcedures},
	{"檢驗", CategoryLabs},
	{"lab", CategoryLabs},
}

// sectionLabels is the display table for known LOINC section codes.
var sectionLabels = map[string]string{
	"10154-3": "主訴",
	"10164-2": "現在病史",
	"11348-0": "過去病史",
	"46241-6": "入院診斷",
	"11535-2": "出院/轉院診斷",
	"8648-8":  "住院治療經過",
	"10183-2": "出院帶藥",
	"10160-0": "住院用藥",
	"48765-2": "過敏史",
	"47519-4": "處置",
	"8724-7":  "手術紀錄",
	"18776-5": "出院/轉院計畫",
	"30954-2": "檢驗結果",
	"18748-4": "影像檢查",
	"11524-6": "心電圖",
	"42349-1": "轉院原因",
}

var documentTypeLabels = map[string]string{
	constvars.LoincDischargeSummary: "出院病摘",
	constvars.LoincTransferSummary:  "轉院病摘",
}

// ImportSection declares one group of the import taxonomy. A section is
// either structured (accepts the listed resource types) or text-only
// (populated from the composition section with TextSectionCode, only when
// opted in). WrapAsDocument marks the narrative categories that additionally
// carry a DocumentReference-shaped payload for the receiving system.
type ImportSection struct {
	Key             string
	Label           string
	Icon            string
	ResourceTypes   []string
	TextOnly        bool
	TextSectionCode string
	DefaultSelected bool
	WrapAsDocument  bool
}

// importSections is the fixed, ordered import taxonomy. A resource type must
// appear in at most one section; this is a declaration invariant, not checked
// at runtime.
var importSections = []ImportSection{
	{Key: "allergies", Label: "過敏史", Icon: "alert-triangle", ResourceTypes: []string{constvars.ResourceAllergyIntolerance}},
	{Key: "diagnosis", Label: "診斷", Icon: "stethoscope", ResourceTypes: []string{constvars.ResourceCondition}},
	{Key: "chief-complaint", Label: "主訴", Icon: "message-square", TextOnly: true, TextSectionCode: "10154-3", WrapAsDocument: true},
	{Key: "history-of-present-illness", Label: "現在病史", Icon: "file-text", TextOnly: true, TextSectionCode: "10164-2", WrapAsDocument: true},
	{Key: "history", Label: "過去病史", Icon: "history", TextOnly: true, TextSectionCode: "11348-0", DefaultSelected: true},
	{Key: "procedures", Label: "處置/手術", Icon: "scissors", ResourceTypes: []string{constvars.ResourceProcedure}},
	{Key: "labs", Label: "檢驗結果", Icon: "flask-conical", ResourceTypes: []string{constvars.ResourceObservation}},
	{Key: "imaging", Label: "影像檢查", Icon: "scan", ResourceTypes: []string{constvars.ResourceDiagnosticReport}},
	{Key: "medications", Label: "用藥", Icon: "pill", ResourceTypes: []string{constvars.ResourceMedicationStatement, constvars.ResourceMedicationRequest}},
	{Key: "plan", Label: "出院/轉院計畫", Icon: "clipboard-list", TextOnly: true, TextSectionCode: "18776-5"},
}

// importableResourceTypes is the union of every section's resource types.
// Resources outside it (a resolved CarePlan, for example) render in the
// detail view but never enter the selection map.
var importableResourceTypes = func() map[string]bool {
	types := map[string]bool{}
	for _, section := range importSections {
		for _, resourceType := range section.ResourceTypes {
			types[resourceType] = true
		}
	}
	return types
}()

// ImportSections returns the fixed import taxonomy in declaration order.
func ImportSections() []ImportSection {
	return importSections
}

// SectionLabel resolves the display label of a section: known code label,
// then the section's own title, then a generic fallback.
func SectionLabel(code, title string) string {
	if label, ok := sectionLabels[code]; ok {
		return label
	}
	if title != "" {
		return title
	}
	return "Unknown Section"
}

// DocumentTypeLabel returns the display label for a summary document type
// code, or an empty string for codes outside the two supported kinds.
func DocumentTypeLabel(code string) string {
	return documentTypeLabels[code]
}

// IsSummaryType reports whether the type code is one of the two document
// kinds this viewer handles.
func IsSummaryType(code string) bool {
	_, ok := documentTypeLabels[code]
	return ok
}
