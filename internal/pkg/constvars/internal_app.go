package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
	CONTEXT_SESSION_ID_KEY           ContextKey = "session_id"
	CONTEXT_FHIR_TOKEN_KEY           ContextKey = "fhir_token"
	CONTEXT_LAUNCH_PATIENT_KEY       ContextKey = "launch_patient"
)

const (
	REQUEST_ID_PREFIX = "CRLNK_SVC_"
)

const (
	URLParamPatientID     = "patient_id"
	URLParamCompositionID = "composition_id"
	URLParamEncounterID   = "encounter_id"
)

const (
	ViewStateKeyFormat       = "carelink:view:%s:composition:%s"
	ViewStateDefaultTTLHours = 1
)
