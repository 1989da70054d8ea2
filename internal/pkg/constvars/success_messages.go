package constvars

const (
	SearchPatientSuccessMessage       = "Successfully searched patients"
	GetTimelineSuccessMessage         = "Successfully fetched patient timeline"
	GetDocumentsSuccessMessage        = "Successfully fetched summary documents"
	GetDocumentDetailSuccessMessage   = "Successfully fetched document detail"
	UpdateSelectionSuccessMessage     = "Successfully updated selection"
	BuildImportPreviewSuccessMessage  = "Successfully built import preview"
	GetEncounterMedicationsSuccessMsg = "Successfully fetched encounter medications"
	HealthCheckSuccessMessage         = "Service is healthy"
)
