package routers

import (
	"carelink-service/internal/app/services/medications"

	"github.com/go-chi/chi/v5"
)

func attachEncounterRoutes(router chi.Router, medicationController *medications.MedicationController) {
	router.Get("/{encounter_id}/medications", medicationController.ListEncounterMedications)
}
