// Package handlers defines HTTP-layer error codes used across all API endpoints.
//
// This file centralizes symbolic error code constants that are mapped to HTTP
// responses (via the `fail()` helper in this package). These codes provide
// clients with a stable, machine-readable error taxonomy that supplements the
// human-readable messages, which are in French for display.
//
// Conventions:
//   - Codes are SCREAMING_SNAKE_CASE and stable across releases; clients
//     branch on them programmatically.
//   - The `error` message may change wording; the code never does.
//   - All error responses include both an HTTP status and one of these codes.
//
// Example response:
//
//	{
//	  "success": false,
//	  "error": "Données invalides",
//	  "code": "VALIDATION_ERROR",
//	  "details": "days: Maximum 30 jours"
//	}
package handlers

const (
	// CodeValidationError: the request body failed schema validation (400).
	CodeValidationError = "VALIDATION_ERROR"
	// CodeRateLimitExceeded: daily quota exhausted or cooldown active (429).
	CodeRateLimitExceeded = "RATE_LIMIT_EXCEEDED"
	// CodeGenerationFailed: every generation attempt failed (500).
	CodeGenerationFailed = "GENERATION_FAILED"
	// CodeAPIKeyMissing: the service has no provider API key (503).
	CodeAPIKeyMissing = "API_KEY_MISSING"
	// CodeNotFound: the requested resource does not exist (404).
	CodeNotFound = "NOT_FOUND"
	// CodeInternalError: unexpected server-side failure (500).
	CodeInternalError = "INTERNAL_ERROR"
)
