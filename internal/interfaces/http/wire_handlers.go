package http

import (
	"quickdesk/internal/interfaces/http/handlers"
	adminHandlers "quickdesk/internal/interfaces/http/handlers/admin"
	ticketHandlers "quickdesk/internal/interfaces/http/handlers/ticket"
	"quickdesk/internal/interfaces/http/middleware"
)

// allHandlers holds all HTTP handler instances used by the application.
type allHandlers struct {
	// User & Auth
	authHandler    *handlers.AuthHandler
	profileHandler *handlers.ProfileHandler

	// Tickets
	ticketHandler      *ticketHandlers.TicketHandler
	agentTicketHandler *ticketHandlers.AgentTicketHandler

	// Categories
	categoryHandler *handlers.CategoryHandler

	// Admin
	adminUpgradeHandler *adminHandlers.UpgradeRequestHandler
	adminUserHandler    *adminHandlers.UserHandler

	healthHandler *handlers.HealthHandler
}

// initHandlers builds handlers and the middlewares that guard them.
func (c *Container) initHandlers() {
	u := c.ucs
	log := c.log

	c.hdlrs = &allHandlers{
		authHandler:    handlers.NewAuthHandler(u.registerUC, u.loginUC, log),
		profileHandler: handlers.NewProfileHandler(u.getProfileUC, u.updateProfileUC, u.requestUpgradeUC, log),

		ticketHandler: ticketHandlers.NewTicketHandler(u.createTicketUC, u.listTicketsUC, u.listMyTicketsUC, u.upvoteTicketUC, log),
		agentTicketHandler: ticketHandlers.NewAgentTicketHandler(
			u.listTicketsUC, u.getTicketUC, u.changeStatusUC, u.addCommentUC, u.listCommentsUC, log,
		),

		categoryHandler: handlers.NewCategoryHandler(u.listCategoriesUC, u.createCategoryUC, log),

		adminUpgradeHandler: adminHandlers.NewUpgradeRequestHandler(u.listRequestsUC, u.resolveUpgradeUC, log),
		adminUserHandler:    adminHandlers.NewUserHandler(u.listUsersUC, u.changeRoleUC, log),

		healthHandler: handlers.NewHealthHandler(c.db),
	}

	c.authMiddleware = middleware.NewAuthMiddleware(c.svcs.jwtSvc, log)
	c.permissionMiddleware = middleware.NewPermissionMiddleware(u.permissionService, log)
}
