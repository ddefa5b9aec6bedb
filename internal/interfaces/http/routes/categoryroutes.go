package routes

import (
	"github.com/gin-gonic/gin"

	"quickdesk/internal/domain/permission"
	"quickdesk/internal/interfaces/http/handlers"
	"quickdesk/internal/interfaces/http/middleware"
)

type CategoryRouteConfig struct {
	CategoryHandler      *handlers.CategoryHandler
	AuthMiddleware       *middleware.AuthMiddleware
	PermissionMiddleware *middleware.PermissionMiddleware
}

func SetupCategoryRoutes(engine *gin.Engine, config *CategoryRouteConfig) {
	categories := engine.Group("/categories")
	{
		categories.GET("", config.CategoryHandler.ListCategories)
		categories.POST("",
			config.AuthMiddleware.RequireAuth(),
			config.PermissionMiddleware.RequirePermission(permission.ResourceCategories, permission.ActionCreate),
			config.CategoryHandler.CreateCategory)
	}
}
