package apperrors

// Error codes grouped by domain.
const (
	// Authentication
	CodeInvalidCredentials ErrorCode = "INVALID_CREDENTIALS"
	CodeUnauthorized       ErrorCode = "UNAUTHORIZED"
	CodeForbidden          ErrorCode = "FORBIDDEN"
	CodeInvalidToken       ErrorCode = "INVALID_TOKEN"

	// Signup and verification
	CodeDuplicateIdentity      ErrorCode = "DUPLICATE_IDENTITY"
	CodeUnrecognizedIdentifier ErrorCode = "UNRECOGNIZED_IDENTIFIER"
	CodeInvalidOrExpiredCode   ErrorCode = "INVALID_OR_EXPIRED_CODE"
	CodeCodeStillValid         ErrorCode = "CODE_STILL_VALID"

	// Validation
	CodeValidationFailed ErrorCode = "VALIDATION_FAILED"
	CodeWeakPassword     ErrorCode = "WEAK_PASSWORD"
	CodePasswordMismatch ErrorCode = "PASSWORD_MISMATCH"

	// Resources
	CodeUserNotFound ErrorCode = "USER_NOT_FOUND"
	CodePostNotFound ErrorCode = "POST_NOT_FOUND"
	CodeNotFound     ErrorCode = "NOT_FOUND"

	// System
	CodeInternalError ErrorCode = "INTERNAL_ERROR"
)
