package timeline

import (
	"context"
	"net/http"
	"time"

	"carelink-service/internal/pkg/constvars"
	"carelink-service/internal/pkg/exceptions"
	"carelink-service/internal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type TimelineController struct {
	Log             *zap.Logger
	TimelineUsecase TimelineUsecase
}

func NewTimelineController(logger *zap.Logger, timelineUsecase TimelineUsecase) *TimelineController {
	return &TimelineController{
		Log:             logger,
		TimelineUsecase: timelineUsecase,
	}
}

func (ctrl *TimelineController) GetPatientTimeline(w http.ResponseWriter, r *http.Request) {
	patientID := chi.URLParam(r, constvars.URLParamPatientID)
	if patientID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(nil))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 20*time.Second)
	defer cancel()

	response, err := ctrl.TimelineUsecase.GetPatientTimeline(ctx, patientID)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetTimelineSuccessMessage, response)
}
