package dto

import (
	"net/http"

	"github.com/payflow/backend/internal/domain/shared"
)

// General error codes used by the HTTP boundary itself
const (
	// ErrCodeInternal is used for internal server errors
	ErrCodeInternal = "INTERNAL_ERROR"
	// ErrCodeBadRequest is used for malformed requests
	ErrCodeBadRequest = "BAD_REQUEST"
	// ErrCodeUnauthorized is used when authentication is required but missing/invalid
	ErrCodeUnauthorized = "UNAUTHORIZED"
	// ErrCodeForbidden is used when the user lacks permission
	ErrCodeForbidden = "FORBIDDEN"
	// ErrCodeNotFound is used when a resource is not found
	ErrCodeNotFound = "NOT_FOUND"
	// ErrCodePayloadTooLarge is used when an upload exceeds the size limit
	ErrCodePayloadTooLarge = "PAYLOAD_TOO_LARGE"
)

// errorCodeHTTPStatus maps specific error codes to HTTP status codes.
// Codes not listed here fall back to the kind-based mapping.
var errorCodeHTTPStatus = map[string]int{
	ErrCodeInternal:        http.StatusInternalServerError,
	ErrCodeBadRequest:      http.StatusBadRequest,
	ErrCodeUnauthorized:    http.StatusUnauthorized,
	ErrCodeForbidden:       http.StatusForbidden,
	ErrCodeNotFound:        http.StatusNotFound,
	ErrCodePayloadTooLarge: http.StatusRequestEntityTooLarge,

	"BAD_CREDENTIALS": http.StatusUnauthorized,
	"USERNAME_TAKEN":  http.StatusConflict,
}

// GetHTTPStatus returns the HTTP status code for an error code.
// Returns 500 Internal Server Error if the error code is not found.
func GetHTTPStatus(code string) int {
	if status, ok := errorCodeHTTPStatus[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// DomainErrorStatus resolves the HTTP status for a domain error. Specific
// codes win over the kind: a not-found lookup is a data error but maps to
// 404, not 400.
func DomainErrorStatus(err *shared.DomainError) int {
	if status, ok := errorCodeHTTPStatus[err.Code]; ok {
		return status
	}
	switch err.Kind {
	case shared.KindData:
		return http.StatusBadRequest
	case shared.KindStatus, shared.KindOperation:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
