package dto

import "net/http"

// Error codes returned by the API.
const (
	ErrCodeInternal     = "ERR_INTERNAL"
	ErrCodeBadRequest   = "ERR_BAD_REQUEST"
	ErrCodeInvalidInput = "ERR_INVALID_INPUT"
	ErrCodeValidation   = "ERR_VALIDATION"
	ErrCodeNotFound     = "ERR_NOT_FOUND"
	ErrCodeInvalidState = "ERR_INVALID_STATE"
)

var errorCodeHTTPStatus = map[string]int{
	ErrCodeInternal:     http.StatusInternalServerError,
	ErrCodeBadRequest:   http.StatusBadRequest,
	ErrCodeInvalidInput: http.StatusBadRequest,
	ErrCodeValidation:   http.StatusBadRequest,
	ErrCodeNotFound:     http.StatusNotFound,
	ErrCodeInvalidState: http.StatusUnprocessableEntity,
}

// GetHTTPStatus maps an error code to its HTTP status. Unknown codes are
// internal errors.
func GetHTTPStatus(code string) int {
	if status, ok := errorCodeHTTPStatus[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// domainErrorCodes maps domain error codes to API error codes.
var domainErrorCodes = map[string]string{
	"NOT_FOUND":         ErrCodeNotFound,
	"INVALID_STATE":     ErrCodeInvalidState,
	"VALIDATION_FAILED": ErrCodeValidation,
	"INVALID_INPUT":     ErrCodeInvalidInput,
}

// NormalizeErrorCode converts a domain error code to the API format.
// Already-normalized or unknown codes pass through unchanged.
func NormalizeErrorCode(code string) string {
	if normalized, ok := domainErrorCodes[code]; ok {
		return normalized
	}
	return code
}
