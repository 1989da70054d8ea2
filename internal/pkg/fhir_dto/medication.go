package fhir_dto

type MedicationStatement struct {
	ResourceType              string           `json:"resourceType"`
	ID                        string           `json:"id,omitempty"`
	Status                    string           `json:"status,omitempty"`
	MedicationCodeableConcept *CodeableConcept `json:"medicationCodeableConcept,omitempty"`
	Subject                   *Reference       `json:"subject,omitempty"`
	Context                   *Reference       `json:"context,omitempty"`
	EffectivePeriod           *Period          `json:"effectivePeriod,omitempty"`
	Dosage                    []Dosage         `json:"dosage,omitempty"`
}

func (m *MedicationStatement) ResourceID() string { return m.ID }

func (m *MedicationStatement) TypeName() string { return "MedicationStatement" }

func (m *MedicationStatement) DisplayText() string {
	return medicationDisplay(m.MedicationCodeableConcept, m.Dosage)
}

func (m *MedicationStatement) HighRisk() bool { return false }

type MedicationRequest struct {
	ResourceType              string           `json:"resourceType"`
	ID                        string           `json:"id,omitempty"`
	Status                    string           `json:"status,omitempty"`
	Intent                    string           `json:"intent,omitempty"`
	MedicationCodeableConcept *CodeableConcept `json:"medicationCodeableConcept,omitempty"`
	Subject                   *Reference       `json:"subject,omitempty"`
	Encounter                 *Reference       `json:"encounter,omitempty"`
	DosageInstruction         []Dosage         `json:"dosageInstruction,omitempty"`
}

func (m *MedicationRequest) ResourceID() string { return m.ID }

func (m *MedicationRequest) TypeName() string { return "MedicationRequest" }

func (m *MedicationRequest) DisplayText() string {
	return medicationDisplay(m.MedicationCodeableConcept, m.DosageInstruction)
}

func (m *MedicationRequest) HighRisk() bool { return false }

func medicationDisplay(concept *CodeableConcept, dosage []Dosage) string {
	display := concept.DisplayText("Unnamed Medication")
	if len(dosage) > 0 && dosage[0].Text != "" {
		display += " - " + dosage[0].Text
	}
	return display
}
