package responses

type PatientSummary struct {
	ID        string `json:"id"`
	Name      string `json:"name,omitempty"`
	Gender    string `json:"gender,omitempty"`
	BirthDate string `json:"birth_date,omitempty"`
}
