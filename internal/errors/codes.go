package errors

// ErrorCode represents a standardized error code used throughout the API
type ErrorCode string

// Authentication error codes (AUTH_*)
const (
	AuthMissingToken       ErrorCode = "AUTH_001"
	AuthInvalidTokenFormat ErrorCode = "AUTH_002"
	AuthUpstreamRejected   ErrorCode = "AUTH_003"
)

// Validation error codes (VALIDATION_*)
const (
	ValidationGeneral       ErrorCode = "VALIDATION_001"
	ValidationRequiredField ErrorCode = "VALIDATION_002"
	ValidationInvalidFormat ErrorCode = "VALIDATION_003"
	ValidationOutOfRange    ErrorCode = "VALIDATION_004"
	ValidationInvalidMonth  ErrorCode = "VALIDATION_005"
	ValidationInvalidYear   ErrorCode = "VALIDATION_006"
)

// Backend (upstream finance API) error codes (BACKEND_*)
const (
	BackendUnreachable     ErrorCode = "BACKEND_001"
	BackendBadStatus       ErrorCode = "BACKEND_002"
	BackendUnexpectedShape ErrorCode = "BACKEND_003"
	BackendCircuitOpen     ErrorCode = "BACKEND_004"
)

// Aggregation error codes (AGGREGATION_*)
const (
	AggregationDuplicateForecast ErrorCode = "AGGREGATION_001"
	AggregationStaleSnapshot     ErrorCode = "AGGREGATION_002"
)

// System error codes (SYSTEM_*)
const (
	SystemInternalError      ErrorCode = "SYSTEM_001"
	SystemServiceUnavailable ErrorCode = "SYSTEM_002"
	SystemConfigurationError ErrorCode = "SYSTEM_003"
	SystemRateLimitExceeded  ErrorCode = "SYSTEM_004"
)

// errorMessages maps error codes to their default human-readable messages
var errorMessages = map[ErrorCode]string{
	// Authentication errors
	AuthMissingToken:       "Authorization token is required",
	AuthInvalidTokenFormat: "Invalid authorization token format",
	AuthUpstreamRejected:   "The finance backend rejected the provided credentials",

	// Validation errors
	ValidationGeneral:       "Validation failed",
	ValidationRequiredField: "Required field is missing",
	ValidationInvalidFormat: "Invalid field format",
	ValidationOutOfRange:    "Field value is out of allowed range",
	ValidationInvalidMonth:  "Month must be a number between 1 and 12",
	ValidationInvalidYear:   "Year is out of the supported range",

	// Backend errors
	BackendUnreachable:     "The finance backend could not be reached",
	BackendBadStatus:       "The finance backend returned an unexpected status",
	BackendUnexpectedShape: "The finance backend returned an unrecognized payload shape",
	BackendCircuitOpen:     "The finance backend is temporarily unavailable",

	// Aggregation errors
	AggregationDuplicateForecast: "More than one budget target exists for the same category and period",
	AggregationStaleSnapshot:     "The requested month changed while data was being loaded",

	// System errors
	SystemInternalError:      "An unexpected error occurred. Please contact support with trace ID",
	SystemServiceUnavailable: "Service temporarily unavailable",
	SystemConfigurationError: "System configuration error",
	SystemRateLimitExceeded:  "Rate limit exceeded. Please try again later",
}

// GetErrorMessage returns the default message for a given error code
// If the error code is not found, it returns a generic error message
func GetErrorMessage(code ErrorCode) string {
	if msg, ok := errorMessages[code]; ok {
		return msg
	}
	return "An error occurred"
}

// IsValidErrorCode checks if the provided error code is a valid registered code
func IsValidErrorCode(code ErrorCode) bool {
	_, ok := errorMessages[code]
	return ok
}
