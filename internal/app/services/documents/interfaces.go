package documents

import (
	"context"

	"carelink-service/internal/pkg/dto/requests"
	"carelink-service/internal/pkg/dto/responses"
	"carelink-service/internal/pkg/fhir_dto"
)

type Resolver interface {
	Resolve(ctx context.Context, composition *fhir_dto.Composition) ([]ResolvedEntry, error)
}

type DocumentUsecase interface {
	ListDocuments(ctx context.Context, patientID string) ([]responses.DocumentSummary, error)
	GetDocumentDetail(ctx context.Context, sessionID, compositionID string) (*responses.DocumentDetail, error)
	UpdateSelection(ctx context.Context, sessionID, compositionID string, request *requests.UpdateSelectionRequest) (*ViewState, error)
	BuildImportPreview(ctx context.Context, sessionID, compositionID string) (*responses.ImportBatch, error)
}
