package responses

type MedicationSummary struct {
	ID      string `json:"id"`
	Display string `json:"display"`
	Status  string `json:"status,omitempty"`
}
