package constvars

const (
	ResourcePatient             = "Patient"
	ResourceComposition         = "Composition"
	ResourceEncounter           = "Encounter"
	ResourceCondition           = "Condition"
	ResourceMedicationStatement = "MedicationStatement"
	ResourceMedicationRequest   = "MedicationRequest"
	ResourceAllergyIntolerance  = "AllergyIntolerance"
	ResourceProcedure           = "Procedure"
	ResourceObservation         = "Observation"
	ResourceDiagnosticReport    = "DiagnosticReport"
	ResourceCarePlan            = "CarePlan"
	ResourceDocumentReference   = "DocumentReference"
)

// Taiwan identifier system OIDs used by the MOHW THAS sandbox.
const (
	IdentifierSystemNationalID = "urn:oid:2.16.886.103"
	IdentifierSystemNhiCard    = "urn:oid:2.16.886.101.100"
)

// LOINC document type codes for the two summary kinds this service handles.
const (
	LoincDischargeSummary = "18842-5"
	LoincTransferSummary  = "18761-7"
)

const (
	LoincSystem = "http://loinc.org"
)

const (
	FhirEncounterClassAmbulatory = "AMB"
)

const (
	FhirSearchParamSubject    = "subject"
	FhirSearchParamContext    = "context"
	FhirSearchParamIdentifier = "identifier"
	FhirSearchParamSort       = "_sort"
	FhirSortDateDescending    = "-date"
)

const (
	FhirAllergyCriticalityHigh = "high"
)
