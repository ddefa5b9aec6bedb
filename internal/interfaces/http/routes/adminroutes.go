package routes

import (
	"github.com/gin-gonic/gin"

	"quickdesk/internal/domain/permission"
	adminHandlers "quickdesk/internal/interfaces/http/handlers/admin"
	"quickdesk/internal/interfaces/http/middleware"
)

// AdminRouteConfig holds dependencies for admin-only routes.
type AdminRouteConfig struct {
	UpgradeRequestHandler *adminHandlers.UpgradeRequestHandler
	UserHandler           *adminHandlers.UserHandler
	AuthMiddleware        *middleware.AuthMiddleware
	PermissionMiddleware  *middleware.PermissionMiddleware
}

// SetupAdminRoutes configures admin-only routes.
func SetupAdminRoutes(engine *gin.Engine, cfg *AdminRouteConfig) {
	upgradeRequests := engine.Group("/admin/upgrade-requests")
	upgradeRequests.Use(
		cfg.AuthMiddleware.RequireAuth(),
		cfg.PermissionMiddleware.RequirePermission(permission.ResourceUpgradeRequests, permission.ActionResolve),
	)
	{
		upgradeRequests.GET("", cfg.UpgradeRequestHandler.ListRequests)
		upgradeRequests.PUT("/:id", cfg.UpgradeRequestHandler.ResolveRequest)
	}

	users := engine.Group("/admin/users")
	users.Use(
		cfg.AuthMiddleware.RequireAuth(),
		cfg.PermissionMiddleware.RequirePermission(permission.ResourceUsers, permission.ActionManage),
	)
	{
		users.GET("", cfg.UserHandler.ListUsers)
		users.PUT("/:id/role", cfg.UserHandler.ChangeRole)
	}
}
