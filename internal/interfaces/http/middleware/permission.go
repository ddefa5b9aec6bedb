package middleware

import (
	"github.com/gin-gonic/gin"

	"quickdesk/internal/application/permission"
	"quickdesk/internal/domain/user"
	"quickdesk/internal/shared/authorization"
	"quickdesk/internal/shared/constants"
	"quickdesk/internal/shared/errors"
	"quickdesk/internal/shared/logger"
	"quickdesk/internal/shared/utils"
)

type PermissionMiddleware struct {
	permissionService *permission.Service
	logger            logger.Interface
}

func NewPermissionMiddleware(permissionService *permission.Service, logger logger.Interface) *PermissionMiddleware {
	return &PermissionMiddleware{
		permissionService: permissionService,
		logger:            logger,
	}
}

// RequireRole reloads the caller and checks the stored role. Must run after
// RequireAuth.
func (m *PermissionMiddleware) RequireRole(roles ...authorization.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := GetUserID(c)
		if !ok {
			utils.ErrorResponseWithError(c, errors.NewTokenMissingError())
			c.Abort()
			return
		}

		u, err := m.permissionService.RequireRole(c.Request.Context(), userID, roles...)
		if err != nil {
			utils.ErrorResponseWithError(c, err)
			c.Abort()
			return
		}

		c.Set(constants.ContextKeyUser, u)
		c.Next()
	}
}

// RequirePermission reloads the caller and checks the policy store.
func (m *PermissionMiddleware) RequirePermission(resource, action string) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := GetUserID(c)
		if !ok {
			utils.ErrorResponseWithError(c, errors.NewTokenMissingError())
			c.Abort()
			return
		}

		u, err := m.permissionService.Authorize(c.Request.Context(), userID, resource, action)
		if err != nil {
			utils.ErrorResponseWithError(c, err)
			c.Abort()
			return
		}

		c.Set(constants.ContextKeyUser, u)
		c.Next()
	}
}

// GetCurrentUser returns the user loaded by RequireRole or RequirePermission.
func GetCurrentUser(c *gin.Context) (*user.User, bool) {
	v, exists := c.Get(constants.ContextKeyUser)
	if !exists {
		return nil, false
	}
	u, ok := v.(*user.User)
	return u, ok && u != nil
}
