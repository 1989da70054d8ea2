package timeline

import (
	"context"

	"carelink-service/internal/pkg/dto/responses"
)

type TimelineUsecase interface {
	GetPatientTimeline(ctx context.Context, patientID string) (*responses.Timeline, error)
}
