package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"carelink-service/internal/app/config"
	"carelink-service/internal/app/delivery/http/middlewares"
	"carelink-service/internal/app/delivery/http/routers"
	"carelink-service/internal/app/drivers/database"
	"carelink-service/internal/app/drivers/logger"
	"carelink-service/internal/app/services/compositions"
	"carelink-service/internal/app/services/documents"
	"carelink-service/internal/app/services/encounters"
	"carelink-service/internal/app/services/medications"
	"carelink-service/internal/app/services/patients"
	"carelink-service/internal/app/services/shared/fhirclient"
	"carelink-service/internal/app/services/shared/launchcontext"
	"carelink-service/internal/app/services/shared/redis"
	"carelink-service/internal/app/services/timeline"
	"carelink-service/internal/observability/metrics"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	log := logger.NewLogrusLogger(internalConfig)

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		log.Fatalf("Error loading location: %v", err)
	}
	time.Local = location

	redisClient := database.NewRedisClient(driverConfig, log)
	chiRouter := chi.NewRouter()

	bootstrapingTheApp(config.Bootstrap{
		Router:         chiRouter,
		Redis:          redisClient,
		Logger:         log,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	})

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	logrus.Println("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeout),
	)
	defer cancel()

	err = server.Shutdown(shutdownCtx)
	if err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exiting")
}

func bootstrapingTheApp(bootstrap config.Bootstrap) {
	zapLogger := logger.NewZapLogger(bootstrap.DriverConfig, bootstrap.InternalConfig)
	appMetrics := metrics.New()

	// Redis
	redisRepository := redis.NewRedisRepository(bootstrap.Redis)

	// Shared FHIR access client
	client := fhirclient.NewFhirClient(bootstrap.InternalConfig, appMetrics, zapLogger)

	// Middlewares
	mw := &middlewares.Middlewares{
		Log:            zapLogger,
		LaunchParser:   launchcontext.NewParser(),
		InternalConfig: bootstrap.InternalConfig,
	}

	// Patient
	patientFhirClient := patients.NewPatientFhirClient(client, zapLogger)
	patientUsecase := patients.NewPatientUsecase(patientFhirClient, zapLogger)
	patientController := patients.NewPatientController(zapLogger, patientUsecase)

	// Composition
	compositionFhirClient := compositions.NewCompositionFhirClient(client, zapLogger)

	// Encounter
	encounterFhirClient := encounters.NewEncounterFhirClient(client, zapLogger)

	// Document
	resolver := documents.NewResolver(client, appMetrics, zapLogger)
	documentUsecase := documents.NewDocumentUsecase(compositionFhirClient, resolver, redisRepository, appMetrics, bootstrap.InternalConfig, zapLogger)
	documentController := documents.NewDocumentController(zapLogger, documentUsecase)

	// Timeline
	timelineUsecase := timeline.NewTimelineUsecase(documentUsecase, encounterFhirClient, zapLogger)
	timelineController := timeline.NewTimelineController(zapLogger, timelineUsecase)

	// Medication
	medicationFhirClient := medications.NewMedicationFhirClient(client, zapLogger)
	medicationUsecase := medications.NewMedicationUsecase(medicationFhirClient, zapLogger)
	medicationController := medications.NewMedicationController(zapLogger, medicationUsecase)

	routers.SetupRoutes(
		bootstrap.Router,
		bootstrap.InternalConfig,
		mw,
		patientController,
		timelineController,
		documentController,
		medicationController,
	)
}
