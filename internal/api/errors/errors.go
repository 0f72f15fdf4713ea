package errors

import (
	"fmt"
	"net/http"
)

// ErrorKind represents different types of API errors. The pipeline-specific
// kinds (staging, transcription, persistence) preserve which stage of a
// submission failed instead of collapsing everything to one message.
type ErrorKind string

const (
	KindValidation    ErrorKind = "validation"
	KindBadRequest    ErrorKind = "bad_request"
	KindNotFound      ErrorKind = "not_found"
	KindStaging       ErrorKind = "staging"
	KindTranscription ErrorKind = "transcription"
	KindPersistence   ErrorKind = "persistence"
	KindInternal      ErrorKind = "internal"
)

// APIError represents a structured API error response.
type APIError struct {
	Kind      ErrorKind         `json:"kind"`
	Message   string            `json:"message"`
	Details   map[string]string `json:"details,omitempty"`
	RequestID string            `json:"request_id,omitempty"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return e.Message
}

// HTTPStatus returns the appropriate HTTP status code for the error kind.
// Remote-engine failures map to 502 since the fault is upstream of this
// service.
func (e *APIError) HTTPStatus() int {
	switch e.Kind {
	case KindValidation:
		return http.StatusUnprocessableEntity
	case KindBadRequest:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	case KindTranscription:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// NewValidationError creates a validation error with field details.
func NewValidationError(message string, fields map[string]string) *APIError {
	return &APIError{
		Kind:    KindValidation,
		Message: message,
		Details: fields,
	}
}

// NewBadRequestError creates a bad request error.
func NewBadRequestError(message string) *APIError {
	return &APIError{
		Kind:    KindBadRequest,
		Message: message,
	}
}

// NewNotFoundError creates a not found error.
func NewNotFoundError(resource string) *APIError {
	return &APIError{
		Kind:    KindNotFound,
		Message: fmt.Sprintf("%s not found", resource),
	}
}

// NewStagingError wraps a failure to materialize uploaded audio.
func NewStagingError(err error) *APIError {
	return &APIError{
		Kind:    KindStaging,
		Message: err.Error(),
	}
}

// NewTranscriptionError wraps a remote speech-engine failure. The engine's
// message passes through untouched.
func NewTranscriptionError(err error) *APIError {
	return &APIError{
		Kind:    KindTranscription,
		Message: err.Error(),
	}
}

// NewPersistenceError wraps a history-store failure.
func NewPersistenceError(err error) *APIError {
	return &APIError{
		Kind:    KindPersistence,
		Message: err.Error(),
	}
}

// NewInternalError creates an internal server error.
func NewInternalError(message string) *APIError {
	return &APIError{
		Kind:    KindInternal,
		Message: message,
	}
}
