package errors

import (
	"encoding/json"
	"strings"
)

// ErrorCode represents a standardized error code
type ErrorCode string

const (
	// Client errors (4xx)
	ErrCodeBadRequest          ErrorCode = "bad_request"
	ErrCodeNotFound            ErrorCode = "not_found"
	ErrCodeValidationFailed    ErrorCode = "validation_failed"
	ErrCodeUnauthorized        ErrorCode = "unauthorized"
	ErrCodeForbidden           ErrorCode = "forbidden"
	ErrCodeDuplicateCredential ErrorCode = "duplicate_credential"
	ErrCodeInsufficientBalance ErrorCode = "insufficient_balance"
	ErrCodeAlreadyOwned        ErrorCode = "already_owned"
	ErrCodeConflict            ErrorCode = "conflict"
	ErrCodeUnsupportedMedia    ErrorCode = "unsupported_media_type"

	// Server errors (5xx)
	ErrCodeInternalError ErrorCode = "internal_error"
	ErrCodeDatabaseError ErrorCode = "database_error"
	ErrCodeUploadFailed  ErrorCode = "upload_failed"
)

// APIError represents a structured API error that carries error code and details
type APIError struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Details string    `json:"details,omitempty"`
}

func (e *APIError) Error() string {
	jsonErr, _ := json.Marshal(e)
	return string(jsonErr)
}

// Error constructors for common error types
func NewBadRequestError(message string, details ...string) *APIError {
	return &APIError{
		Code:    ErrCodeBadRequest,
		Message: message,
		Details: strings.Join(details, ", "),
	}
}

func NewNotFoundError(message string, details ...string) *APIError {
	return &APIError{
		Code:    ErrCodeNotFound,
		Message: message,
		Details: strings.Join(details, ", "),
	}
}

func NewValidationError(details ...string) *APIError {
	return &APIError{
		Code:    ErrCodeValidationFailed,
		Message: "Validation failed",
		Details: strings.Join(details, ", "),
	}
}

func NewUnauthorizedError(message string, details ...string) *APIError {
	return &APIError{
		Code:    ErrCodeUnauthorized,
		Message: message,
		Details: strings.Join(details, ", "),
	}
}

func NewForbiddenError(message string, details ...string) *APIError {
	return &APIError{
		Code:    ErrCodeForbidden,
		Message: message,
		Details: strings.Join(details, ", "),
	}
}

func NewDuplicateCredentialError(message string) *APIError {
	return &APIError{
		Code:    ErrCodeDuplicateCredential,
		Message: message,
	}
}

func NewInsufficientBalanceError() *APIError {
	return &APIError{
		Code:    ErrCodeInsufficientBalance,
		Message: "Insufficient balance",
	}
}

func NewAlreadyOwnedError() *APIError {
	return &APIError{
		Code:    ErrCodeAlreadyOwned,
		Message: "Item already owned",
	}
}

func NewConflictError(message string, details ...string) *APIError {
	return &APIError{
		Code:    ErrCodeConflict,
		Message: message,
		Details: strings.Join(details, ", "),
	}
}

func NewUnsupportedMediaError(message string) *APIError {
	return &APIError{
		Code:    ErrCodeUnsupportedMedia,
		Message: message,
	}
}

func NewInternalError(message string, details ...string) *APIError {
	return &APIError{
		Code:    ErrCodeInternalError,
		Message: message,
		Details: strings.Join(details, ", "),
	}
}

func NewDatabaseError(message string, details ...string) *APIError {
	return &APIError{
		Code:    ErrCodeDatabaseError,
		Message: message,
		Details: strings.Join(details, ", "),
	}
}

func NewUploadFailedError(message string, details ...string) *APIError {
	return &APIError{
		Code:    ErrCodeUploadFailed,
		Message: message,
		Details: strings.Join(details, ", "),
	}
}
