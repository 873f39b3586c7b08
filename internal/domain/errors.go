package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors used across all layers.
var (
	ErrNotFound          = errors.New("not found")
	ErrValidation        = errors.New("validation error")
	ErrUnauthorized      = errors.New("unauthorized")
	ErrForbidden         = errors.New("forbidden")
	ErrConflict          = errors.New("conflict")
	ErrUnavailable       = errors.New("backend unavailable")
	ErrRateLimited       = errors.New("rate limited")
	ErrInvalidTransition = errors.New("invalid status transition")
)

// FieldError describes a validation error for a specific field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError contains a list of field-level validation errors.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return fmt.Sprintf("validation: %s: %s", e.Errors[0].Field, e.Errors[0].Message)
	}
	return fmt.Sprintf("validation: %d errors", len(e.Errors))
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// NewValidationError creates a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Errors: []FieldError{{Field: field, Message: message}},
	}
}

// NewValidationErrors creates a ValidationError from multiple field errors.
func NewValidationErrors(errs []FieldError) *ValidationError {
	return &ValidationError{Errors: errs}
}

// ErrorCode is the machine-readable classification of a failed backend call.
type ErrorCode string

const (
	CodeNetwork      ErrorCode = "NETWORK_ERROR"
	CodeBadRequest   ErrorCode = "BAD_REQUEST"
	CodeUnauthorized ErrorCode = "UNAUTHORIZED"
	CodeForbidden    ErrorCode = "FORBIDDEN"
	CodeNotFound     ErrorCode = "NOT_FOUND"
	CodeConflict     ErrorCode = "CONFLICT"
	CodeValidation   ErrorCode = "VALIDATION_ERROR"
	CodeRateLimited  ErrorCode = "RATE_LIMITED"
	CodeInternal     ErrorCode = "INTERNAL_ERROR"
)

func (c ErrorCode) String() string { return string(c) }

func (c ErrorCode) IsValid() bool {
	switch c {
	case CodeNetwork, CodeBadRequest, CodeUnauthorized, CodeForbidden, CodeNotFound,
		CodeConflict, CodeValidation, CodeRateLimited, CodeInternal:
		return true
	}
	return false
}

// CodeFromStatus derives an ErrorCode from an HTTP status when the response
// body carries no code of its own.
func CodeFromStatus(status int) ErrorCode {
	switch {
	case status == 400:
		return CodeBadRequest
	case status == 401:
		return CodeUnauthorized
	case status == 403:
		return CodeForbidden
	case status == 404:
		return CodeNotFound
	case status == 409:
		return CodeConflict
	case status == 422:
		return CodeValidation
	case status == 429:
		return CodeRateLimited
	default:
		return CodeInternal
	}
}

// RemoteError is returned for every failed backend call.
// Status is zero when the request never got a response.
type RemoteError struct {
	Op        string
	Status    int
	Code      ErrorCode
	Message   string
	RequestID string
	Err       error
}

func (e *RemoteError) Error() string {
	msg := e.Message
	if msg == "" && e.Err != nil {
		msg = e.Err.Error()
	}
	if e.Status == 0 {
		return fmt.Sprintf("%s: %s: %s", e.Op, e.Code, msg)
	}
	return fmt.Sprintf("%s: %s (status %d): %s", e.Op, e.Code, e.Status, msg)
}

// Unwrap exposes both the transport cause and the sentinel matching Code,
// so errors.Is works against either.
func (e *RemoteError) Unwrap() []error {
	errs := make([]error, 0, 2)
	if s := e.sentinel(); s != nil {
		errs = append(errs, s)
	}
	if e.Err != nil {
		errs = append(errs, e.Err)
	}
	return errs
}

func (e *RemoteError) sentinel() error {
	switch e.Code {
	case CodeNetwork, CodeInternal:
		return ErrUnavailable
	case CodeBadRequest, CodeValidation:
		return ErrValidation
	case CodeUnauthorized:
		return ErrUnauthorized
	case CodeForbidden:
		return ErrForbidden
	case CodeNotFound:
		return ErrNotFound
	case CodeConflict:
		return ErrConflict
	case CodeRateLimited:
		return ErrRateLimited
	}
	return nil
}

// CodeOf returns the ErrorCode carried by err, or "" when err did not come
// from the backend.
func CodeOf(err error) ErrorCode {
	var re *RemoteError
	if errors.As(err, &re) {
		return re.Code
	}
	return ""
}
