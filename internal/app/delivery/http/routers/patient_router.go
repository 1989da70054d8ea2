package routers

import (
	"carelink-service/internal/app/services/documents"
	"carelink-service/internal/app/services/patients"
	"carelink-service/internal/app/services/timeline"

	"github.com/go-chi/chi/v5"
)

func attachPatientRoutes(
	router chi.Router,
	patientController *patients.PatientController,
	timelineController *timeline.TimelineController,
	documentController *documents.DocumentController,
) {
	router.Get("/", patientController.SearchPatients)
	router.Get("/{patient_id}/timeline", timelineController.GetPatientTimeline)
	router.Get("/{patient_id}/documents", documentController.ListPatientDocuments)
}
