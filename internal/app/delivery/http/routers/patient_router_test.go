package routers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"carelink-service/internal/app/config"
	"carelink-service/internal/app/delivery/http/middlewares"
	"carelink-service/internal/app/services/documents"
	"carelink-service/internal/app/services/medications"
	"carelink-service/internal/app/services/patients"
	"carelink-service/internal/app/services/shared/launchcontext"
	"carelink-service/internal/app/services/timeline"
	"carelink-service/internal/pkg/constvars"
	"carelink-service/internal/pkg/dto/requests"
	"carelink-service/internal/pkg/dto/responses"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type MockPatientUsecase struct {
	mock.Mock
}

func (m *MockPatientUsecase) SearchPatients(ctx context.Context, request *requests.SearchPatientRequest) ([]responses.PatientSummary, error) {
	args := m.Called(ctx, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]responses.PatientSummary), args.Error(1)
}

type MockTimelineUsecase struct {
	mock.Mock
}

func (m *MockTimelineUsecase) GetPatientTimeline(ctx context.Context, patientID string) (*responses.Timeline, error) {
	args := m.Called(ctx, patientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.Timeline), args.Error(1)
}

type MockDocumentUsecase struct {
	mock.Mock
}

func (m *MockDocumentUsecase) ListDocuments(ctx context.Context, patientID string) ([]responses.DocumentSummary, error) {
	args := m.Called(ctx, patientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]responses.DocumentSummary), args.Error(1)
}

func (m *MockDocumentUsecase) GetDocumentDetail(ctx context.Context, sessionID, compositionID string) (*responses.DocumentDetail, error) {
	args := m.Called(ctx, sessionID, compositionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.DocumentDetail), args.Error(1)
}

func (m *MockDocumentUsecase) UpdateSelection(ctx context.Context, sessionID, compositionID string, request *requests.UpdateSelectionRequest) (*documents.ViewState, error) {
	args := m.Called(ctx, sessionID, compositionID, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*documents.ViewState), args.Error(1)
}

func (m *MockDocumentUsecase) BuildImportPreview(ctx context.Context, sessionID, compositionID string) (*responses.ImportBatch, error) {
	args := m.Called(ctx, sessionID, compositionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.ImportBatch), args.Error(1)
}

type MockMedicationUsecase struct {
	mock.Mock
}

func (m *MockMedicationUsecase) ListEncounterMedications(ctx context.Context, encounterID string) ([]responses.MedicationSummary, error) {
	args := m.Called(ctx, encounterID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]responses.MedicationSummary), args.Error(1)
}

func setupTestRouter(
	patientUsecase patients.PatientUsecase,
	timelineUsecase timeline.TimelineUsecase,
	documentUsecase documents.DocumentUsecase,
	medicationUsecase medications.MedicationUsecase,
) *chi.Mux {
	logger := zap.NewNop()
	internalConfig := &config.InternalConfig{
		App: config.App{
			Version:        "v1",
			EndpointPrefix: "api",
			MaxRequests:    100,
		},
	}
	mw := &middlewares.Middlewares{
		Log:            logger,
		LaunchParser:   launchcontext.NewParser(),
		InternalConfig: internalConfig,
	}

	router := chi.NewRouter()
	SetupRoutes(
		router,
		internalConfig,
		mw,
		patients.NewPatientController(logger, patientUsecase),
		timeline.NewTimelineController(logger, timelineUsecase),
		documents.NewDocumentController(logger, documentUsecase),
		medications.NewMedicationController(logger, medicationUsecase),
	)
	return router
}

func TestPatientRouter_Search(t *testing.T) {
	mockPatientUsecase := new(MockPatientUsecase)
	router := setupTestRouter(mockPatientUsecase, new(MockTimelineUsecase), new(MockDocumentUsecase), new(MockMedicationUsecase))

	t.Run("Search by national id", func(t *testing.T) {
		mockPatientUsecase.On("SearchPatients", mock.Anything, mock.AnythingOfType("*requests.SearchPatientRequest")).
			Return([]responses.PatientSummary{{ID: "p1", Name: "陳美玲"}}, nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/api/v1/patients?national_id=f73278868", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)

		var body responses.ResponseDTO
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.True(t, body.Success)
	})

	t.Run("Missing identifier is rejected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/patients", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("Response carries request and session ids", func(t *testing.T) {
		mockPatientUsecase.On("SearchPatients", mock.Anything, mock.AnythingOfType("*requests.SearchPatientRequest")).
			Return([]responses.PatientSummary{}, nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/api/v1/patients?national_id=f73278868", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.NotEmpty(t, rec.Header().Get(constvars.HeaderXRequestID))
		assert.NotEmpty(t, rec.Header().Get(constvars.HeaderXSessionID))
	})

	t.Run("Client session id is kept", func(t *testing.T) {
		mockPatientUsecase.On("SearchPatients", mock.Anything, mock.AnythingOfType("*requests.SearchPatientRequest")).
			Return([]responses.PatientSummary{}, nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/api/v1/patients?national_id=f73278868", nil)
		req.Header.Set(constvars.HeaderXSessionID, "session-abc")
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, "session-abc", rec.Header().Get(constvars.HeaderXSessionID))
	})
}

func TestEncounterRouter_Medications(t *testing.T) {
	mockMedicationUsecase := new(MockMedicationUsecase)
	router := setupTestRouter(new(MockPatientUsecase), new(MockTimelineUsecase), new(MockDocumentUsecase), mockMedicationUsecase)

	mockMedicationUsecase.On("ListEncounterMedications", mock.Anything, "e1").
		Return([]responses.MedicationSummary{{ID: "m1", Display: "Amoxicillin - 500mg TID"}}, nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/encounters/e1/medications", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	mockMedicationUsecase.AssertExpectations(t)
}
