// Package errors provides structured error handling for the SupRSS backend.
// Errors carry a code from the application taxonomy, the clean-architecture
// layer they were raised in, and free-form context for logging.
package errors

import (
	"fmt"
	"net/http"
)

// Error codes for the application taxonomy.
const (
	CodeNotFound     = "NOT_FOUND"
	CodeForbidden    = "FORBIDDEN"
	CodeInvalidState = "INVALID_STATE"
	CodeFetchError   = "FETCH_ERROR"
	CodeParseError   = "PARSE_ERROR"
	CodeValidation   = "VALIDATION_ERROR"
	CodeDatabase     = "DATABASE_ERROR"
	CodeUnknown      = "UNKNOWN_ERROR"
)

// AppContextError is the structured error passed across layers. Layer,
// Component and Operation locate where the error was raised; Context carries
// additional key/value detail for logs and API responses.
type AppContextError struct {
	Code      string         `json:"code"`
	Message   string         `json:"message"`
	Layer     string         `json:"layer,omitempty"`
	Component string         `json:"component,omitempty"`
	Operation string         `json:"operation,omitempty"`
	Cause     error          `json:"-"`
	Context   map[string]any `json:"context,omitempty"`
}

func (e *AppContextError) Error() string {
	var prefix string
	if e.Layer != "" && e.Component != "" && e.Operation != "" {
		prefix = fmt.Sprintf("[%s:%s:%s] ", e.Layer, e.Component, e.Operation)
	}

	if e.Cause != nil {
		return fmt.Sprintf("%s%s: %s (caused by: %v)", prefix, e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s%s: %s", prefix, e.Code, e.Message)
}

func (e *AppContextError) Unwrap() error {
	return e.Cause
}

// HTTPStatusCode maps the error code to the status an interactive caller
// should receive.
func (e *AppContextError) HTTPStatusCode() int {
	switch e.Code {
	case CodeNotFound:
		return http.StatusNotFound
	case CodeForbidden:
		return http.StatusForbidden
	case CodeInvalidState, CodeValidation:
		return http.StatusBadRequest
	case CodeFetchError:
		return http.StatusBadGateway
	case CodeParseError:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// HTTPResponse is the error body sent to clients.
type HTTPResponse struct {
	Error   string         `json:"error"`
	Code    string         `json:"code"`
	Message string         `json:"message"`
	Context map[string]any `json:"context,omitempty"`
}

func (e *AppContextError) ToHTTPResponse() HTTPResponse {
	return HTTPResponse{
		Error:   "error",
		Code:    e.Code,
		Message: e.Message,
		Context: e.Context,
	}
}

// IsRetryable reports whether a scheduled worker may reasonably retry on the
// next firing without operator intervention.
func (e *AppContextError) IsRetryable() bool {
	switch e.Code {
	case CodeFetchError, CodeParseError, CodeDatabase:
		return true
	default:
		return false
	}
}

// New creates an AppContextError with full location context.
func New(code, message, layer, component, operation string, cause error, context map[string]any) *AppContextError {
	if context == nil {
		context = make(map[string]any)
	}
	return &AppContextError{
		Code:      code,
		Message:   message,
		Layer:     layer,
		Component: component,
		Operation: operation,
		Cause:     cause,
		Context:   context,
	}
}

// EnrichWithContext rewrites the location of an existing error while merging
// its context with additional detail. The code, message and cause survive.
func EnrichWithContext(err *AppContextError, layer, component, operation string, additional map[string]any) *AppContextError {
	merged := make(map[string]any, len(err.Context)+len(additional))
	for k, v := range err.Context {
		merged[k] = v
	}
	for k, v := range additional {
		merged[k] = v
	}

	return &AppContextError{
		Code:      err.Code,
		Message:   err.Message,
		Layer:     layer,
		Component: component,
		Operation: operation,
		Cause:     err.Cause,
		Context:   merged,
	}
}

// Constructors for the common taxonomy entries.

func NewNotFoundError(message, layer, component, operation string, context map[string]any) *AppContextError {
	return New(CodeNotFound, message, layer, component, operation, nil, context)
}

func NewForbiddenError(message, layer, component, operation string, context map[string]any) *AppContextError {
	return New(CodeForbidden, message, layer, component, operation, nil, context)
}

func NewInvalidStateError(message, layer, component, operation string, context map[string]any) *AppContextError {
	return New(CodeInvalidState, message, layer, component, operation, nil, context)
}

func NewFetchError(message, layer, component, operation string, cause error, context map[string]any) *AppContextError {
	return New(CodeFetchError, message, layer, component, operation, cause, context)
}

func NewParseError(message, layer, component, operation string, cause error, context map[string]any) *AppContextError {
	return New(CodeParseError, message, layer, component, operation, cause, context)
}

func NewValidationError(message, layer, component, operation string, context map[string]any) *AppContextError {
	return New(CodeValidation, message, layer, component, operation, nil, context)
}

func NewDatabaseError(message, layer, component, operation string, cause error, context map[string]any) *AppContextError {
	return New(CodeDatabase, message, layer, component, operation, cause, context)
}

func NewUnknownError(message, layer, component, operation string, cause error, context map[string]any) *AppContextError {
	return New(CodeUnknown, message, layer, component, operation, cause, context)
}
