package models

// APIError represents a standardized error response format for the API.
// @Description APIError represents a standardized error response format, including an application-specific error code, a human-readable message, and optional details.
type APIError struct {
	Code    string      `json:"code"`              // Application-specific error code (e.g., "NOT_FOUND", "UPSTREAM_ERROR")
	Message string      `json:"message"`           // Human-readable message describing the error
	Details interface{} `json:"details,omitempty"` // Optional field for additional error details
}

// Predefined application-specific error codes
const (
	// Generic Errors
	ErrorCodeInternalServerError = "INTERNAL_SERVER_ERROR"
	ErrorCodeRequestTimeout      = "REQUEST_TIMEOUT"

	// Input Validation Errors
	ErrorCodeValidation      = "VALIDATION_ERROR"  // General validation failure
	ErrorCodeInvalidIDFormat = "INVALID_ID_FORMAT" // Non-numeric entity id in the path

	// Upstream Errors
	ErrorCodeUpstreamError       = "UPSTREAM_ERROR"       // Upstream returned a non-2xx status
	ErrorCodeNotFound            = "NOT_FOUND"            // Upstream 404 for the requested entity
	ErrorCodeRateLimited         = "RATE_LIMITED"         // Upstream 429
	ErrorCodeUpstreamUnreachable = "UPSTREAM_UNREACHABLE" // DNS / connection failure
	ErrorCodeUpstreamBadPayload  = "UPSTREAM_BAD_PAYLOAD" // 2xx status but unparseable body

	// Local I/O Errors
	ErrorCodeFileWrite = "FILE_WRITE_ERROR" // File-sink write failed locally
)
