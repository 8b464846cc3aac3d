// Package errors provides standardized error handling for the advisor API.
package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"time"
)

// ErrorCode represents standardized internal error codes.
type ErrorCode string

// Client request errors
const (
	ErrCodeInvalidRequest       ErrorCode = "INVALID_REQUEST"
	ErrCodeMissingProfileFields ErrorCode = "MISSING_PROFILE_FIELDS"
	ErrCodeMessageRequired      ErrorCode = "MESSAGE_REQUIRED"
	ErrCodeRequestTooLarge      ErrorCode = "REQUEST_TOO_LARGE"
)

// Upstream model errors. These never reach the end user; the services
// substitute fallback content instead.
const (
	ErrCodeLLMTimeout         ErrorCode = "LLM_TIMEOUT"
	ErrCodeLLMUnavailable     ErrorCode = "LLM_UNAVAILABLE"
	ErrCodeLLMResponseInvalid ErrorCode = "LLM_RESPONSE_INVALID"
)

const ErrCodeInternal ErrorCode = "INTERNAL_ERROR"

// StandardError represents a structured application error.
type StandardError struct {
	Code      ErrorCode              `json:"code"`
	Message   string                 `json:"message"`
	Details   string                 `json:"details,omitempty"`
	Retryable bool                   `json:"retryable"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
	Timestamp time.Time              `json:"timestamp"`
}

func (e *StandardError) Error() string {
	return fmt.Sprintf("StandardError[%s]: %s", e.Code, e.Message)
}

// HTTPStatus maps the error code to the response status.
func (e *StandardError) HTTPStatus() int {
	return HTTPStatus(e.Code)
}

// HTTPStatus maps an error code to an HTTP status code.
func HTTPStatus(code ErrorCode) int {
	switch code {
	case ErrCodeInvalidRequest, ErrCodeMissingProfileFields, ErrCodeMessageRequired:
		return http.StatusBadRequest
	case ErrCodeRequestTooLarge:
		return http.StatusRequestEntityTooLarge
	case ErrCodeLLMTimeout:
		return http.StatusGatewayTimeout
	case ErrCodeLLMUnavailable, ErrCodeLLMResponseInvalid:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// NewInvalidRequestError is returned when the body is not the expected JSON.
func NewInvalidRequestError(details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeInvalidRequest,
		Message:   "Invalid request data",
		Details:   details,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewMissingProfileFieldsError is returned when a core profile field is absent.
func NewMissingProfileFieldsError(fields []string) *StandardError {
	return &StandardError{
		Code:      ErrCodeMissingProfileFields,
		Message:   "Missing required profile fields",
		Details:   fmt.Sprintf("fields: %v", fields),
		Retryable: false,
		Metadata:  map[string]interface{}{"fields": fields},
		Timestamp: time.Now().UTC(),
	}
}

// NewMessageRequiredError is returned for chat requests without a message.
func NewMessageRequiredError() *StandardError {
	return &StandardError{
		Code:      ErrCodeMessageRequired,
		Message:   "Message is required",
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewRequestTooLargeError is returned when the body exceeds the size limit.
func NewRequestTooLargeError(limit int64) *StandardError {
	return &StandardError{
		Code:      ErrCodeRequestTooLarge,
		Message:   "Request body too large",
		Details:   fmt.Sprintf("limit: %d bytes", limit),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewLLMTimeoutError wraps a model call that ran out of time.
func NewLLMTimeoutError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeLLMTimeout,
		Message:   "Model request timed out",
		Details:   errDetails(err),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewLLMUnavailableError wraps transport or provider failures.
func NewLLMUnavailableError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeLLMUnavailable,
		Message:   "Model service unavailable",
		Details:   errDetails(err),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewLLMResponseInvalidError wraps output that could not be parsed.
func NewLLMResponseInvalidError(details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeLLMResponseInvalid,
		Message:   "Invalid AI response format",
		Details:   details,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewInternalError wraps anything unexpected.
func NewInternalError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeInternal,
		Message:   "Internal server error",
		Details:   errDetails(err),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// AsStandardError unwraps err into a *StandardError when one is in the chain.
func AsStandardError(err error) (*StandardError, bool) {
	var stdErr *StandardError
	if stderrors.As(err, &stdErr) {
		return stdErr, true
	}
	return nil, false
}

// IsClientError reports whether err should be surfaced as a 4xx.
func IsClientError(err error) bool {
	stdErr, ok := AsStandardError(err)
	if !ok {
		return false
	}
	status := stdErr.HTTPStatus()
	return status >= 400 && status < 500
}

func errDetails(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
