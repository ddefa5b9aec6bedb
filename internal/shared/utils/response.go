package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"quickdesk/internal/shared/constants"
	"quickdesk/internal/shared/errors"
	"quickdesk/internal/shared/logger"
)

// ErrorBody is the JSON shape of every error response.
type ErrorBody struct {
	Message string `json:"message"`
	Type    string `json:"type"`
	Details string `json:"details,omitempty"`
}

// MessageResponse is the JSON shape of responses that only carry a message.
type MessageResponse struct {
	Message string `json:"message"`
}

// SuccessResponse sends {"message": message, key: data}. An empty key sends
// the message alone.
func SuccessResponse(c *gin.Context, statusCode int, message, key string, data interface{}) {
	body := gin.H{"message": message}
	if key != "" {
		body[key] = data
	}
	c.JSON(statusCode, body)
}

// DataResponse sends data as the whole body. Lists are sent as bare arrays.
func DataResponse(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, data)
}

// ErrorResponseWithError sends an error response based on error type
func ErrorResponseWithError(c *gin.Context, err error) {
	if appErr := errors.GetAppError(err); appErr != nil {
		if appErr.Code >= http.StatusInternalServerError {
			logger.Error("request failed",
				"path", c.Request.URL.Path,
				"method", c.Request.Method,
				"error", appErr)
			c.JSON(appErr.Code, ErrorBody{
				Message: constants.ErrMsgInternalServerError,
				Type:    string(errors.ErrorTypeInternal),
			})
			return
		}
		c.JSON(appErr.Code, ErrorBody{
			Message: appErr.Message,
			Type:    string(appErr.Type),
			Details: appErr.Details,
		})
		return
	}

	// internal details never leave the process
	logger.Error("unhandled error",
		"path", c.Request.URL.Path,
		"method", c.Request.Method,
		"error", err)
	c.JSON(http.StatusInternalServerError, ErrorBody{
		Message: constants.ErrMsgInternalServerError,
		Type:    string(errors.ErrorTypeInternal),
	})
}
