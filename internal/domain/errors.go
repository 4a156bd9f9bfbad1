package domain

import (
	"errors"
	"fmt"
)

// ErrorKind classifies where a failure originated.
type ErrorKind string

const (
	// KindValidation marks a failed client-side precondition. No network
	// call was made.
	KindValidation ErrorKind = "validation"
	// KindRequest marks a non-2xx HTTP response from the backend.
	KindRequest ErrorKind = "request"
	// KindTransport marks a network failure or an unparsable response.
	KindTransport ErrorKind = "transport"
)

// AppError is the single error type surfaced by the client and the
// controller. Message is always safe to display to the user.
type AppError struct {
	Kind       ErrorKind `json:"kind"`
	Code       string    `json:"code"`
	Message    string    `json:"message"`
	HTTPStatus int       `json:"-"`
	Err        error     `json:"-"`
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s", e.Message, e.Err.Error())
	}
	return e.Message
}

// Unwrap returns the underlying error
func (e *AppError) Unwrap() error {
	return e.Err
}

// NewValidationError creates a local precondition failure.
func NewValidationError(code, message string) *AppError {
	return &AppError{
		Kind:    KindValidation,
		Code:    code,
		Message: message,
	}
}

// NewRequestError wraps a non-2xx backend response. message should be the
// server-provided error text when present.
func NewRequestError(message string, status int) *AppError {
	if message == "" {
		message = "Erro na requisição"
	}
	return &AppError{
		Kind:       KindRequest,
		Code:       ErrCodeRequestFailed,
		Message:    message,
		HTTPStatus: status,
	}
}

// NewTransportError wraps a network or decoding failure. Displayed the same
// way as a request error.
func NewTransportError(message string, err error) *AppError {
	if message == "" {
		message = "Falha de comunicação com o servidor"
	}
	return &AppError{
		Kind:    KindTransport,
		Code:    ErrCodeTransport,
		Message: message,
		Err:     err,
	}
}

// IsAppError checks if an error is an AppError
func IsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// DisplayMessage extracts the user-facing text of any error.
func DisplayMessage(err error) string {
	if err == nil {
		return ""
	}
	if appErr, ok := IsAppError(err); ok {
		return appErr.Message
	}
	return err.Error()
}

// Error codes for different categories of errors
const (
	ErrCodeRequestFailed = "REQUEST_FAILED"
	ErrCodeTransport     = "TRANSPORT_ERROR"
	ErrCodePartialLoad   = "PARTIAL_LOAD"

	ErrCodeRequiredField       = "REQUIRED_FIELD"
	ErrCodeInvalidRange        = "INVALID_RANGE"
	ErrCodeInvalidSelection    = "INVALID_SELECTION"
	ErrCodeSelectionFull       = "SELECTION_FULL"
	ErrCodeInsufficientBalance = "INSUFFICIENT_BALANCE"
	ErrCodeInvalidAmount       = "INVALID_AMOUNT"
	ErrCodeActionInFlight      = "ACTION_IN_FLIGHT"
	ErrCodeNotAuthenticated    = "NOT_AUTHENTICATED"
)
