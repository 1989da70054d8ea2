package routers

import (
	"fmt"
	"net/http"
	"time"

	"carelink-service/internal/app/config"
	"carelink-service/internal/app/delivery/http/middlewares"
	"carelink-service/internal/app/services/documents"
	"carelink-service/internal/app/services/medications"
	"carelink-service/internal/app/services/patients"
	"carelink-service/internal/app/services/timeline"
	"carelink-service/internal/observability/metrics"
	"carelink-service/internal/pkg/constvars"
	"carelink-service/internal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
)

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	mw *middlewares.Middlewares,
	patientController *patients.PatientController,
	timelineController *timeline.TimelineController,
	documentController *documents.DocumentController,
	medicationController *medications.MedicationController,
) {

	corsOptions := cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", constvars.HeaderXRequestID, constvars.HeaderXSessionID},
		ExposedHeaders:   []string{constvars.HeaderXRequestID, constvars.HeaderXSessionID},
		AllowCredentials: true,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))

	// Rate limiting middleware using httprate
	rateLimiter := httprate.LimitByIP(internalConfig.App.MaxRequests, time.Second)
	router.Use(rateLimiter)

	router.Use(mw.RequestIDMiddleware)
	router.Use(mw.SessionMiddleware)
	router.Use(mw.SmartContextMiddleware)
	router.Use(mw.Logging(mw.Log))

	router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.HealthCheckSuccessMessage, nil)
	})
	router.Handle("/metrics", metrics.Handler())

	endpointPrefix := fmt.Sprintf("/%s", internalConfig.App.EndpointPrefix)
	versionPrefix := fmt.Sprintf("/%s", internalConfig.App.Version)

	router.Route(endpointPrefix, func(r chi.Router) {
		r.Route(versionPrefix, func(r chi.Router) {
			r.Route("/patients", func(r chi.Router) {
				attachPatientRoutes(r, patientController, timelineController, documentController)
			})

			r.Route("/documents", func(r chi.Router) {
				attachDocumentRoutes(r, documentController)
			})

			r.Route("/encounters", func(r chi.Router) {
				attachEncounterRoutes(r, medicationController)
			})
		})
	})
}
