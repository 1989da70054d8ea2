package requests

// SearchPatientRequest carries exactly one identifier. The national ID is
// upper-cased before it reaches the FHIR server; the NHI card number is sent
// as-is.
type SearchPatientRequest struct {
	NationalID string `json:"national_id" validate:"required_without=NhiCard,omitempty,alphanum"`
	NhiCard    string `json:"nhi_card" validate:"required_without=NationalID,omitempty,alphanum"`
}
