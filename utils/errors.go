package utils

import (
	"errors"
	"fmt"
	"net/http"
)

type ErrorType string

const (
	ErrorTypeNotFound     ErrorType = "NOT_FOUND"
	ErrorTypeValidation   ErrorType = "VALIDATION"
	ErrorTypeConflict     ErrorType = "CONFLICT"
	ErrorTypeUnauthorized ErrorType = "UNAUTHORIZED"
	ErrorTypeInternal     ErrorType = "INTERNAL"
)

// AppError carries a kind that the HTTP layer maps onto a status code.
type AppError struct {
	Type    ErrorType
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Type, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func NewNotFoundError(message string) *AppError {
	return &AppError{Type: ErrorTypeNotFound, Message: message}
}

func NewValidationError(message string) *AppError {
	return &AppError{Type: ErrorTypeValidation, Message: message}
}

func NewConflictError(message string) *AppError {
	return &AppError{Type: ErrorTypeConflict, Message: message}
}

func NewUnauthorizedError(message string) *AppError {
	return &AppError{Type: ErrorTypeUnauthorized, Message: message}
}

func NewInternalError(message string, err error) *AppError {
	return &AppError{Type: ErrorTypeInternal, Message: message, Err: err}
}

// StatusFor returns the HTTP status for err and whether err was an AppError
// with a client-facing kind. Anything else is a 500.
func StatusFor(err error) (int, *AppError) {
	var appErr *AppError
	if !errors.As(err, &appErr) {
		return http.StatusInternalServerError, nil
	}

	switch appErr.Type {
	case ErrorTypeNotFound:
		return http.StatusNotFound, appErr
	case ErrorTypeValidation:
		return http.StatusBadRequest, appErr
	case ErrorTypeConflict:
		return http.StatusConflict, appErr
	case ErrorTypeUnauthorized:
		return http.StatusUnauthorized, appErr
	default:
		return http.StatusInternalServerError, appErr
	}
}
