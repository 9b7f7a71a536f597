package errors

// ErrorCode represents a standardized error code used throughout the API
type ErrorCode string

// Authentication error codes (AUTH_*)
const (
	AuthInvalidCredentials     ErrorCode = "AUTH_001"
	AuthMissingToken           ErrorCode = "AUTH_002"
	AuthExpiredToken           ErrorCode = "AUTH_003"
	AuthInvalidTokenFormat     ErrorCode = "AUTH_004"
	AuthInsufficientPermission ErrorCode = "AUTH_005"
	AuthAccountLocked          ErrorCode = "AUTH_006"
)

// Validation error codes (VALIDATION_*)
const (
	ValidationGeneral       ErrorCode = "VALIDATION_001"
	ValidationRequiredField ErrorCode = "VALIDATION_002"
	ValidationInvalidFormat ErrorCode = "VALIDATION_003"
	ValidationOutOfRange    ErrorCode = "VALIDATION_004"
	ValidationInvalidEmail  ErrorCode = "VALIDATION_005"
)

// Record error codes (RECORD_*) cover customers, companies and prospects
const (
	RecordNotFound       ErrorCode = "RECORD_001"
	RecordAlreadyExists  ErrorCode = "RECORD_002"
	RecordInvalidID      ErrorCode = "RECORD_003"
	RecordImmutableField ErrorCode = "RECORD_004"
)

// User error codes (USER_*)
const (
	UserNotFound      ErrorCode = "USER_001"
	UserAlreadyExists ErrorCode = "USER_002"
	UserInvalidID     ErrorCode = "USER_003"
	UserInvalidRole   ErrorCode = "USER_004"
)

// Search error codes (SEARCH_*)
const (
	SearchUpstreamError ErrorCode = "SEARCH_001"
	SearchInvalidField  ErrorCode = "SEARCH_002"
)

// Import error codes (IMPORT_*)
const (
	ImportEmptyBatch ErrorCode = "IMPORT_001"
	ImportFailed     ErrorCode = "IMPORT_002"
)

// System error codes (SYSTEM_*)
const (
	SystemInternalError      ErrorCode = "SYSTEM_001"
	SystemDatabaseError      ErrorCode = "SYSTEM_002"
	SystemServiceUnavailable ErrorCode = "SYSTEM_003"
	SystemRateLimitExceeded  ErrorCode = "SYSTEM_004"
)

// errorMessages maps error codes to their default human-readable messages
var errorMessages = map[ErrorCode]string{
	// Authentication errors
	AuthInvalidCredentials:     "Invalid email or password",
	AuthMissingToken:           "Authorization token is required",
	AuthExpiredToken:           "Authorization token has expired",
	AuthInvalidTokenFormat:     "Invalid authorization token format",
	AuthInsufficientPermission: "Insufficient permissions to access this resource",
	AuthAccountLocked:          "Account is locked or disabled",

	// Validation errors
	ValidationGeneral:       "Validation failed",
	ValidationRequiredField: "Required field is missing",
	ValidationInvalidFormat: "Invalid field format",
	ValidationOutOfRange:    "Field value is out of allowed range",
	ValidationInvalidEmail:  "Invalid email address format",

	// Record errors
	RecordNotFound:       "Record not found",
	RecordAlreadyExists:  "A record with this key already exists",
	RecordInvalidID:      "Invalid record ID format",
	RecordImmutableField: "Field cannot be modified after creation",

	// User errors
	UserNotFound:      "User not found",
	UserAlreadyExists: "A user with this email already exists",
	UserInvalidID:     "Invalid user ID format",
	UserInvalidRole:   "Invalid user role",

	// Search errors
	SearchUpstreamError: "Search service request failed",
	SearchInvalidField:  "Unknown suggestion field",

	// Import errors
	ImportEmptyBatch: "Import batch contains no records",
	ImportFailed:     "Import operation failed",

	// System errors
	SystemInternalError:      "An unexpected error occurred. Please contact support with trace ID",
	SystemDatabaseError:      "Database connection error",
	SystemServiceUnavailable: "Service temporarily unavailable",
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
