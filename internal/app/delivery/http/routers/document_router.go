package routers

import (
	"carelink-service/internal/app/services/documents"

	"github.com/go-chi/chi/v5"
)

func attachDocumentRoutes(router chi.Router, documentController *documents.DocumentController) {
	router.Get("/{composition_id}", documentController.GetDocumentDetail)
	router.Put("/{composition_id}/selection", documentController.UpdateSelection)
	router.Post("/{composition_id}/import-preview", documentController.BuildImportPreview)
}
