package logx

const (
	FieldAppName         = "app-name"
	FieldAppVersion      = "app-version"
	FieldCacheBackend    = "cache-backend"
	FieldCacheHit        = "cache-hit"
	FieldClamped         = "clamped"
	FieldDurationMs      = "duration-ms"
	FieldError           = "error"
	FieldGPA             = "gpa"
	FieldHTTPMethod      = "http-method"
	FieldHTTPRequest     = "http-request"
	FieldHTTPResponse    = "http-response"
	FieldIP              = "ip"
	FieldModelKind       = "model-kind"
	FieldModelName       = "model-name"
	FieldModelPath       = "model-path"
	FieldModelVersion    = "model-version"
	FieldOutcome         = "outcome"
	FieldRawGPA          = "raw-gpa"
	FieldRequestBody     = "request-body"
	FieldRequestID       = "request-id"
	FieldResponseBody    = "response-body"
	FieldResponseHeaders = "response-headers"
	FieldResponseStatus  = "response-status"
	FieldRule            = "rule"
	FieldStack           = "stack"
	FieldTraceID         = "trace-id"
	FieldURL             = "url"
)
