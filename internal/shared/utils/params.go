package utils

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"quickdesk/internal/shared/errors"
)

// ParseIDParam parses a numeric primary key from a URL path parameter.
// entityName is used in error messages (e.g., "ticket", "request").
func ParseIDParam(c *gin.Context, paramName, entityName string) (uint, error) {
	raw := c.Param(paramName)
	if raw == "" {
		return 0, errors.NewValidationError(entityName + " ID is required")
	}

	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, errors.NewValidationError("Invalid " + entityName + " ID")
	}

	return uint(id), nil
}
