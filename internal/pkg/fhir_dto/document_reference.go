package fhir_dto

type DocumentReference struct {
	ResourceType string                     `json:"resourceType"`
	Status       string                     `json:"status"`
	Type         *CodeableConcept           `json:"type,omitempty"`
	Description  string                     `json:"description,omitempty"`
	Content      []DocumentReferenceContent `json:"content,omitempty"`
}

type DocumentReferenceContent struct {
	Attachment Attachment `json:"attachment"`
}
