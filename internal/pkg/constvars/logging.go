package constvars

const (
	LoggingRequestIDKey     = "request_id"
	LoggingSessionIDKey     = "session_id"
	LoggingPatientIDKey     = "patient_id"
	LoggingCompositionIDKey = "composition_id"
	LoggingEncounterIDKey   = "encounter_id"
	LoggingReferenceKey     = "reference"
	LoggingMethodKey        = "method"
	LoggingEndpointKey      = "endpoint"
	LoggingRemoteAddrKey    = "remote_addr"
	LoggingUserAgentKey     = "user_agent"
	LoggingQueryKey         = "query"
	LoggingStatusCodeKey    = "status_code"
	LoggingDurationKey      = "duration"
	LoggingSuccessKey       = "success"
	LoggingEntryCountKey    = "entry_count"
	LoggingPatientCountKey  = "patient_count"
)
