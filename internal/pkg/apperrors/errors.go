package apperrors

import (
	"errors"
	"fmt"
)

const CodeDatabase = "DB_ERROR"

var (
	ErrNotFound = errors.New("resource not found")

	ErrInvalidArgument = errors.New("invalid argument")

	ErrValidation = errors.New("validation failed")

	ErrAlreadyExists = errors.New("resource already exists")

	ErrDatabase = errors.New("database error")

	ErrUnauthorized = errors.New("unauthorized")

	ErrConflict = errors.New("resource conflict")
)

type ValidationError struct {
	Field   string
	Message string
	Cause   error
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation failed for field '%s': %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation failed: %s", e.Message)
}

func (e *ValidationError) Unwrap() error {
	return e.Cause
}

func NewValidationError(field, message string) error {
	return fmt.Errorf("%w: %w", ErrValidation, &ValidationError{Field: field, Message: message})
}

// AppError is the application-level error surfaced to callers. With Code set to
// CodeDatabase it is the single data-access error kind of the storage layer.
type AppError struct {
	Code    string
	Message string
	Cause   error
}

func (e *AppError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("[%s] %s", e.Code, e.Message)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// WrapDatabaseError builds a data-access error. Every cause stays reachable through
// errors.Is / errors.As, together with ErrDatabase.
func WrapDatabaseError(message string, causes ...error) error {
	return &AppError{
		Code:    CodeDatabase,
		Message: message,
		Cause:   errors.Join(append([]error{ErrDatabase}, causes...)...),
	}
}

func IsDataAccessError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Code == CodeDatabase
}
