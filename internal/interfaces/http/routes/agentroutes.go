package routes

import (
	"github.com/gin-gonic/gin"

	tickethandlers "quickdesk/internal/interfaces/http/handlers/ticket"
	"quickdesk/internal/interfaces/http/middleware"
	"quickdesk/internal/shared/authorization"
)

type AgentRouteConfig struct {
	AgentTicketHandler   *tickethandlers.AgentTicketHandler
	AuthMiddleware       *middleware.AuthMiddleware
	PermissionMiddleware *middleware.PermissionMiddleware
}

// SetupAgentRoutes configures the staff queue. The role is checked against
// the stored user on every request.
func SetupAgentRoutes(engine *gin.Engine, config *AgentRouteConfig) {
	agent := engine.Group("/agent/tickets")
	agent.Use(
		config.AuthMiddleware.RequireAuth(),
		config.PermissionMiddleware.RequireRole(authorization.RoleAgent, authorization.RoleAdmin),
	)
	{
		agent.GET("", config.AgentTicketHandler.ListTickets)

		// Specific action endpoints (must come BEFORE /:id to avoid conflicts)
		agent.PUT("/:id/status", config.AgentTicketHandler.UpdateStatus)
		agent.POST("/:id/comment", config.AgentTicketHandler.AddComment)
		agent.GET("/:id/comments", config.AgentTicketHandler.ListComments)

		agent.GET("/:id", config.AgentTicketHandler.GetTicket)
	}
}
