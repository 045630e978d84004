// Package services provides the business logic layer between the HTTP
// handlers and the analysis engine: symbol/range validation, cached
// price fetching, length policy, and response shaping.
package services

// Service error codes
const (
	CodeInvalidSymbol  = "INVALID_SYMBOL"
	CodeInvalidRange   = "INVALID_RANGE"
	CodeSymbolNotFound = "SYMBOL_NOT_FOUND"
	CodeNotEnoughData  = "NOT_ENOUGH_DATA"
	CodeUpstreamFailed = "UPSTREAM_FETCH_FAILED"
)

// ServiceError represents a service layer error
type ServiceError struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}

func (e *ServiceError) Error() string {
	return e.Message
}

// NewServiceError creates a new ServiceError
func NewServiceError(code, message string) *ServiceError {
	return &ServiceError{
		Code:    code,
		Message: message,
	}
}

// NewServiceErrorWithDetails creates a new ServiceError with details
func NewServiceErrorWithDetails(code, message string, details map[string]interface{}) *ServiceError {
	return &ServiceError{
		Code:    code,
		Message: message,
		Details: details,
	}
}
