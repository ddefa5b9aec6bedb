package routes

import (
	"github.com/gin-gonic/gin"

	"quickdesk/internal/interfaces/http/handlers"
	"quickdesk/internal/interfaces/http/middleware"
)

// AuthRouteConfig holds dependencies for account routes.
type AuthRouteConfig struct {
	AuthHandler    *handlers.AuthHandler
	ProfileHandler *handlers.ProfileHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// SetupAuthRoutes configures signup, login and the caller's own profile.
func SetupAuthRoutes(engine *gin.Engine, cfg *AuthRouteConfig) {
	engine.POST("/signup", cfg.AuthHandler.Signup)
	engine.POST("/login", cfg.AuthHandler.Login)

	authed := engine.Group("")
	authed.Use(cfg.AuthMiddleware.RequireAuth())
	{
		authed.GET("/profile", cfg.ProfileHandler.GetProfile)
		authed.PUT("/profile", cfg.ProfileHandler.UpdateProfile)
		authed.POST("/upgrade-request", cfg.ProfileHandler.RequestUpgrade)
	}
}
