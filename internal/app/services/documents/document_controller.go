package documents

import (
	"context"
	"net/http"
	"time"

	"carelink-service/internal/pkg/constvars"
	"carelink-service/internal/pkg/dto/requests"
	"carelink-service/internal/pkg/exceptions"
	"carelink-service/internal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type DocumentController struct {
	Log             *zap.Logger
	DocumentUsecase DocumentUsecase
}

func NewDocumentController(logger *zap.Logger, documentUsecase DocumentUsecase) *DocumentController {
	return &DocumentController{
		Log:             logger,
		DocumentUsecase: documentUsecase,
	}
}

func (ctrl *DocumentController) ListPatientDocuments(w http.ResponseWriter, r *http.Request) {
	patientID := chi.URLParam(r, constvars.URLParamPatientID)
	if patientID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(nil))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.DocumentUsecase.ListDocuments(ctx, patientID)
	if err != nil {
		ctrl.respondError(w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetDocumentsSuccessMessage, response)
}

// GetDocumentDetail expands a document. Resolution can fan out into one fetch
// per section entry, so this handler gets a wider deadline than the plain
// searches.
func (ctrl *DocumentController) GetDocumentDetail(w http.ResponseWriter, r *http.Request) {
	compositionID := chi.URLParam(r, constvars.URLParamCompositionID)
	if compositionID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(nil))
		return
	}
	sessionID, _ := r.Context().Value(constvars.CONTEXT_SESSION_ID_KEY).(string)

	ctx, cancel := context.WithTimeout(r.Context(), 60*time.Second)
	defer cancel()

	response, err := ctrl.DocumentUsecase.GetDocumentDetail(ctx, sessionID, compositionID)
	if err != nil {
		ctrl.respondError(w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetDocumentDetailSuccessMessage, response)
}

func (ctrl *DocumentController) UpdateSelection(w http.ResponseWriter, r *http.Request) {
	compositionID := chi.URLParam(r, constvars.URLParamCompositionID)
	if compositionID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(nil))
		return
	}
	sessionID, _ := r.Context().Value(constvars.CONTEXT_SESSION_ID_KEY).(string)

	request := new(requests.UpdateSelectionRequest)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.DocumentUsecase.UpdateSelection(ctx, sessionID, compositionID, request)
	if err != nil {
		ctrl.respondError(w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UpdateSelectionSuccessMessage, response)
}

func (ctrl *DocumentController) BuildImportPreview(w http.ResponseWriter, r *http.Request) {
	compositionID := chi.URLParam(r, constvars.URLParamCompositionID)
	if compositionID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(nil))
		return
	}
	sessionID, _ := r.Context().Value(constvars.CONTEXT_SESSION_ID_KEY).(string)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.DocumentUsecase.BuildImportPreview(ctx, sessionID, compositionID)
	if err != nil {
		ctrl.respondError(w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.BuildImportPreviewSuccessMessage, response)
}

func (ctrl *DocumentController) respondError(w http.ResponseWriter, err error) {
	if err == context.DeadlineExceeded {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
		return
	}
	utils.BuildErrorResponse(ctrl.Log, w, err)
}
