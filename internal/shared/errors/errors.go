// Package errors provides application-level error types and utilities.
// It defines common error types like validation, not found, duplicate, and authorization errors.
package errors

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// ErrorType represents the type of error
type ErrorType string

const (
	ErrorTypeValidation       ErrorType = "validation_error"
	ErrorTypeNotFound         ErrorType = "not_found"
	ErrorTypeForbidden        ErrorType = "forbidden"
	ErrorTypeInternal         ErrorType = "internal_error"
	ErrorTypeDuplicateEmail   ErrorType = "duplicate_email"
	ErrorTypeAlreadyVoted     ErrorType = "already_voted"
	ErrorTypeDuplicateRequest ErrorType = "duplicate_request"
	ErrorTypeInvalidRole      ErrorType = "invalid_role"
)

// AppError represents an application error with additional context
type AppError struct {
	Type    ErrorType `json:"type"`
	Message string    `json:"message"`
	Code    int       `json:"code"`
	Details string    `json:"details,omitempty"`
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s (%s)", e.Type, e.Message, e.Details)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

func newAppError(t ErrorType, code int, message string, details []string) *AppError {
	detail := ""
	if len(details) > 0 {
		detail = details[0]
	}
	return &AppError{
		Type:    t,
		Message: message,
		Code:    code,
		Details: detail,
	}
}

// NewValidationError creates a new validation error
func NewValidationError(message string, details ...string) *AppError {
	return newAppError(ErrorTypeValidation, http.StatusBadRequest, message, details)
}

// NewNotFoundError creates a new not found error
func NewNotFoundError(message string, details ...string) *AppError {
	return newAppError(ErrorTypeNotFound, http.StatusNotFound, message, details)
}

// NewUserNotFoundError reports an account that no longer exists on an
// authenticated or credential path. Those paths answer 400, not 404.
func NewUserNotFoundError(message ...string) *AppError {
	msg := "User not found"
	if len(message) > 0 {
		msg = message[0]
	}
	return newAppError(ErrorTypeNotFound, http.StatusBadRequest, msg, nil)
}

// NewForbiddenError creates a new forbidden error
func NewForbiddenError(message string, details ...string) *AppError {
	return newAppError(ErrorTypeForbidden, http.StatusForbidden, message, details)
}

// NewInternalError creates a new internal error
func NewInternalError(message string, details ...string) *AppError {
	return newAppError(ErrorTypeInternal, http.StatusInternalServerError, message, details)
}

// NewDuplicateEmailError is returned when registering an email that is already taken.
func NewDuplicateEmailError() *AppError {
	return newAppError(ErrorTypeDuplicateEmail, http.StatusBadRequest, "Email already exists", nil)
}

// NewAlreadyVotedError is returned on a repeated upvote by the same user.
func NewAlreadyVotedError() *AppError {
	return newAppError(ErrorTypeAlreadyVoted, http.StatusBadRequest, "You have already upvoted this ticket", nil)
}

// NewDuplicateRequestError is returned when a pending upgrade request already exists.
func NewDuplicateRequestError() *AppError {
	return newAppError(ErrorTypeDuplicateRequest, http.StatusBadRequest, "You already have a pending upgrade request", nil)
}

// NewInvalidRoleError is returned when the caller's role does not allow the transition.
func NewInvalidRoleError(message string, details ...string) *AppError {
	return newAppError(ErrorTypeInvalidRole, http.StatusBadRequest, message, details)
}

// IsAppError checks if the error is an AppError
func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

// GetAppError extracts AppError from error
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return nil
}

func isType(err error, t ErrorType) bool {
	appErr := GetAppError(err)
	return appErr != nil && appErr.Type == t
}

// IsNotFoundError checks if the error is a not found error
func IsNotFoundError(err error) bool {
	return isType(err, ErrorTypeNotFound)
}

// IsValidationError checks if the error is a validation error
func IsValidationError(err error) bool {
	return isType(err, ErrorTypeValidation)
}

// IsForbiddenError checks if the error is a forbidden error
func IsForbiddenError(err error) bool {
	return isType(err, ErrorTypeForbidden)
}

// IsDuplicateError checks if the error is a database duplicate key error
func IsDuplicateError(err error) bool {
	if err == nil {
		return false
	}
	errStr := err.Error()
	// MySQL duplicate entry error
	if strings.Contains(errStr, "Duplicate entry") || strings.Contains(errStr, "duplicate key") {
		return true
	}
	// SQLite unique constraint
	if strings.Contains(errStr, "UNIQUE constraint failed") {
		return true
	}
	// PostgreSQL unique violation
	if strings.Contains(errStr, "unique constraint") || strings.Contains(errStr, "violates unique constraint") {
		return true
	}
	return false
}
