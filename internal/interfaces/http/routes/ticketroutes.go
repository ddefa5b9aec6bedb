package routes

import (
	"github.com/gin-gonic/gin"

	tickethandlers "quickdesk/internal/interfaces/http/handlers/ticket"
	"quickdesk/internal/interfaces/http/middleware"
)

type TicketRouteConfig struct {
	TicketHandler  *tickethandlers.TicketHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// SetupTicketRoutes configures the public feed and end-user ticket actions.
func SetupTicketRoutes(engine *gin.Engine, config *TicketRouteConfig) {
	tickets := engine.Group("/tickets")
	{
		tickets.GET("", config.TicketHandler.ListTickets)
		tickets.POST("",
			config.AuthMiddleware.RequireAuth(),
			config.TicketHandler.CreateTicket)
		tickets.POST("/:id/upvote",
			config.AuthMiddleware.RequireAuth(),
			config.TicketHandler.UpvoteTicket)
	}

	endUser := engine.Group("/end-user")
	endUser.Use(config.AuthMiddleware.RequireAuth())
	{
		endUser.GET("/my-tickets", config.TicketHandler.ListMyTickets)
	}
}
