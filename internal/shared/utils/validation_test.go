package utils

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "quickdesk/internal/shared/errors"
)

type signupBody struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"required,email"`
}

func TestTranslate_FieldErrors(t *testing.T) {
	tests := []struct {
		name        string
		body        signupBody
		wantErr     bool
		wantDetails string
	}{
		{name: "valid", body: signupBody{Name: "Ann", Email: "ann@example.com"}},
		{name: "missing name", body: signupBody{Email: "ann@example.com"}, wantErr: true, wantDetails: "name is required"},
		{name: "bad email", body: signupBody{Name: "Ann", Email: "nope"}, wantErr: true, wantDetails: "email must be a valid email address"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validate.Struct(tt.body)
			translated := translate(err, "All fields are required")
			if !tt.wantErr {
				assert.NoError(t, translated)
				return
			}
			appErr := apperrors.GetAppError(translated)
			require.NotNil(t, appErr)
			assert.Contains(t, appErr.Details, tt.wantDetails)
		})
	}
}

func TestBindingError_RequiredUsesEndpointMessage(t *testing.T) {
	err := translate(validate.Struct(signupBody{}), "All fields are required")
	appErr := apperrors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, "All fields are required", appErr.Message)
	assert.Equal(t, http.StatusBadRequest, appErr.Code)

	appErr = apperrors.GetAppError(BindingError(io.EOF, "All fields are required"))
	require.NotNil(t, appErr)
	assert.Equal(t, "All fields are required", appErr.Message)
}

func TestParseIDParam(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		raw     string
		want    uint
		wantErr bool
	}{
		{raw: "42", want: 42},
		{raw: "0", wantErr: true},
		{raw: "abc", wantErr: true},
		{raw: "-1", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			c, _ := gin.CreateTestContext(httptest.NewRecorder())
			c.Params = gin.Params{{Key: "id", Value: tt.raw}}

			got, err := ParseIDParam(c, "id", "ticket")
			if tt.wantErr {
				assert.True(t, apperrors.IsValidationError(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestErrorResponseWithError_HidesInternalErrors(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/tickets", nil)

	ErrorResponseWithError(c, errors.New("dial tcp 10.0.0.3:3306: connection refused"))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "10.0.0.3")
	assert.Contains(t, w.Body.String(), `"type":"internal_error"`)
}

func TestErrorResponseWithError_AppError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/tickets/9", nil)

	ErrorResponseWithError(c, apperrors.NewNotFoundError("Ticket not found"))

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"message":"Ticket not found","type":"not_found"}`, w.Body.String())
}
