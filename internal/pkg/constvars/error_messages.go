package constvars

// Client-facing messages. Kept generic so FHIR server internals never leak
// to the browser.
const (
	ErrClientSomethingWrongWithApplication = "Something went wrong with the application, please try again later"
	ErrClientCannotProcessRequest          = "Cannot process your request, please check your input"
	ErrClientFhirServerUnavailable         = "The clinical record server is currently unavailable"
	ErrClientServerLongRespond             = "Server took too long to respond, please try again"
	ErrClientDocumentNotFound              = "The requested document could not be found"
	ErrClientDocumentNotExpanded           = "Document details have not been loaded for this session yet"
	ErrClientMissingIdentifier             = "A national ID or NHI card number is required"
	ErrClientLaunchContextInvalid          = "The SMART launch context could not be read"
)

// Developer messages, logged only.
const (
	ErrDevValidationFailed          = "Request validation failed"
	ErrDevCannotParseJSON           = "Failed to parse JSON request body"
	ErrDevCannotMarshalJSON         = "Failed to marshal value to JSON"
	ErrDevCreateHTTPRequest         = "Failed to create HTTP request"
	ErrDevSendHTTPRequest           = "Failed to send HTTP request to FHIR server"
	ErrDevFhirServerRejected        = "FHIR server rejected the request"
	ErrDevDecodeResponse            = "Failed to decode FHIR response body for resource: %s"
	ErrDevUnknownResourceType       = "Unknown clinical resource type: %s"
	ErrDevRedisSet                  = "Failed to set value in redis"
	ErrDevRedisGet                  = "Failed to get value from redis"
	ErrDevRedisDelete               = "Failed to delete value from redis"
	ErrDevServerDeadlineExceeded    = "Deadline exceeded while waiting for upstream"
	ErrDevViewStateMissing          = "No cached view state for the requested composition"
	ErrDevLaunchTokenUnparsable     = "SMART launch token could not be parsed"
	ErrDevMissingSearchIdentifier   = "Patient search called without an identifier value"
	ErrDevCompositionWithoutSubject = "Composition %s has no subject reference"
)
