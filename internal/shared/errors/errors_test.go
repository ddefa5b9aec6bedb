package errors

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorCodes(t *testing.T) {
	tests := []struct {
		name     string
		err      *AppError
		wantCode int
		wantType ErrorType
	}{
		{"validation", NewValidationError("bad"), http.StatusBadRequest, ErrorTypeValidation},
		{"not found", NewNotFoundError("Ticket not found"), http.StatusNotFound, ErrorTypeNotFound},
		{"user not found", NewUserNotFoundError(), http.StatusBadRequest, ErrorTypeNotFound},
		{"duplicate email", NewDuplicateEmailError(), http.StatusBadRequest, ErrorTypeDuplicateEmail},
		{"already voted", NewAlreadyVotedError(), http.StatusBadRequest, ErrorTypeAlreadyVoted},
		{"duplicate request", NewDuplicateRequestError(), http.StatusBadRequest, ErrorTypeDuplicateRequest},
		{"invalid role", NewInvalidRoleError("nope"), http.StatusBadRequest, ErrorTypeInvalidRole},
		{"forbidden", NewForbiddenError("Access denied"), http.StatusForbidden, ErrorTypeForbidden},
		{"internal", NewInternalError("boom"), http.StatusInternalServerError, ErrorTypeInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantCode, tt.err.Code)
			assert.Equal(t, tt.wantType, tt.err.Type)
		})
	}
}

func TestGetAppError_Wrapped(t *testing.T) {
	wrapped := fmt.Errorf("loading ticket: %w", NewNotFoundError("Ticket not found"))

	assert.True(t, IsNotFoundError(wrapped))
	assert.False(t, IsValidationError(wrapped))
	assert.Equal(t, "Ticket not found", GetAppError(wrapped).Message)
}

func TestAuthErrors_UnwrapToAppError(t *testing.T) {
	err := NewInvalidCredentialsError()

	appErr := GetAppError(err)
	if assert.NotNil(t, appErr) {
		assert.Equal(t, http.StatusBadRequest, appErr.Code)
	}
	assert.True(t, IsInvalidCredentialsError(err))
	assert.Equal(t, http.StatusUnauthorized, GetAppError(NewTokenExpiredError()).Code)
	assert.Equal(t, "No token provided", GetAppError(NewTokenMissingError()).Message)
}

func TestIsDuplicateError(t *testing.T) {
	assert.True(t, IsDuplicateError(fmt.Errorf("Error 1062: Duplicate entry 'a@b.c' for key 'idx_users_email'")))
	assert.True(t, IsDuplicateError(fmt.Errorf("UNIQUE constraint failed: users.email")))
	assert.False(t, IsDuplicateError(fmt.Errorf("connection refused")))
	assert.False(t, IsDuplicateError(nil))
}
