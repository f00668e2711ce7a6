package dto

import "net/http"

// Error code constants.
// Format: ERR_<DESCRIPTION>

// General error codes
const (
	// ErrCodeUnknown is used when the error type is unknown
	ErrCodeUnknown = "ERR_UNKNOWN"
	// ErrCodeInternal is used for internal server errors
	ErrCodeInternal = "ERR_INTERNAL"
)

// Input error codes
const (
	// ErrCodeBadRequest is used for malformed requests
	ErrCodeBadRequest = "ERR_BAD_REQUEST"
	// ErrCodeValidation is used when request field validation fails
	ErrCodeValidation = "ERR_VALIDATION"
	// ErrCodeInvalidJSON is used when JSON parsing fails
	ErrCodeInvalidJSON = "ERR_INVALID_JSON"
)

// Business error codes. These all map to 409, matching the service's
// single observable conflict kind at the boundary.
const (
	// ErrCodeAlreadyExists is used for duplicate items or users
	ErrCodeAlreadyExists = "ERR_ALREADY_EXISTS"
	// ErrCodeUserNotFound is used when the referenced user does not exist
	ErrCodeUserNotFound = "ERR_USER_NOT_FOUND"
	// ErrCodeItemNotFound is used when the referenced item does not exist
	ErrCodeItemNotFound = "ERR_ITEM_NOT_FOUND"
	// ErrCodeInsufficientStock is used when inventory cannot cover the quantity
	ErrCodeInsufficientStock = "ERR_INSUFFICIENT_STOCK"
	// ErrCodeItemAlreadyInCart is used when the cart already holds the item
	ErrCodeItemAlreadyInCart = "ERR_ITEM_ALREADY_IN_CART"
	// ErrCodeConcurrencyConflict is used when an optimistic save loses the race
	ErrCodeConcurrencyConflict = "ERR_CONCURRENCY_CONFLICT"
	// ErrCodeInvalidInput is used when entity validation rejects the input
	ErrCodeInvalidInput = "ERR_INVALID_INPUT"
)

// Upstream error codes
const (
	// ErrCodeInventoryUnavailable is used when the inventory service is down
	ErrCodeInventoryUnavailable = "ERR_INVENTORY_UNAVAILABLE"
)

// Resource error codes
const (
	// ErrCodeNotFound is used when a routed resource does not exist
	ErrCodeNotFound = "ERR_NOT_FOUND"
)

// Rate limiting error codes
const (
	// ErrCodeRateLimited is used when the rate limit is exceeded
	ErrCodeRateLimited = "ERR_RATE_LIMITED"
	// ErrCodeRequestTooLarge is used when the request body exceeds the limit
	ErrCodeRequestTooLarge = "ERR_REQUEST_TOO_LARGE"
)

// ErrorCodeHTTPStatus maps error codes to HTTP status codes
var ErrorCodeHTTPStatus = map[string]int{
	ErrCodeUnknown:  http.StatusInternalServerError,
	ErrCodeInternal: http.StatusInternalServerError,

	// Input errors -> 400 Bad Request
	ErrCodeBadRequest:  http.StatusBadRequest,
	ErrCodeValidation:  http.StatusBadRequest,
	ErrCodeInvalidJSON: http.StatusBadRequest,

	// Business errors -> 409 Conflict
	ErrCodeAlreadyExists:       http.StatusConflict,
	ErrCodeUserNotFound:        http.StatusConflict,
	ErrCodeItemNotFound:        http.StatusConflict,
	ErrCodeInsufficientStock:   http.StatusConflict,
	ErrCodeItemAlreadyInCart:   http.StatusConflict,
	ErrCodeConcurrencyConflict: http.StatusConflict,
	ErrCodeInvalidInput:        http.StatusConflict,

	// Upstream outage -> 503 Service Unavailable
	ErrCodeInventoryUnavailable: http.StatusServiceUnavailable,

	ErrCodeNotFound: http.StatusNotFound,

	// Rate limiting
	ErrCodeRateLimited:     http.StatusTooManyRequests,
	ErrCodeRequestTooLarge: http.StatusRequestEntityTooLarge,
}

// GetHTTPStatus returns the HTTP status code for an error code,
// 500 Internal Server Error for unknown codes
func GetHTTPStatus(code string) int {
	if status, ok := ErrorCodeHTTPStatus[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// domainErrorCodeMapping maps domain error codes to API error codes
var domainErrorCodeMapping = map[string]string{
	"NOT_FOUND":             ErrCodeNotFound,
	"ALREADY_EXISTS":        ErrCodeAlreadyExists,
	"USER_NOT_FOUND":        ErrCodeUserNotFound,
	"ITEM_NOT_FOUND":        ErrCodeItemNotFound,
	"INSUFFICIENT_STOCK":    ErrCodeInsufficientStock,
	"ITEM_ALREADY_IN_CART":  ErrCodeItemAlreadyInCart,
	"CONCURRENCY_CONFLICT":  ErrCodeConcurrencyConflict,
	"INVALID_INPUT":         ErrCodeInvalidInput,
	"INVENTORY_UNAVAILABLE": ErrCodeInventoryUnavailable,
}

// NormalizeErrorCode converts a domain error code to the API format.
// Codes already in the API format or unknown are returned as-is.
func NormalizeErrorCode(code string) string {
	if apiCode, ok := domainErrorCodeMapping[code]; ok {
		return apiCode
	}
	return code
}
