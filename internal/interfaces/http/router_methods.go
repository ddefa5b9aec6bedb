package http

import (
	"quickdesk/internal/interfaces/http/routes"
)

func (r *Router) setupAuthRoutes() {
	routes.SetupAuthRoutes(r.engine, &routes.AuthRouteConfig{
		AuthHandler:    r.hdlrs.authHandler,
		ProfileHandler: r.hdlrs.profileHandler,
		AuthMiddleware: r.authMiddleware,
	})
}

func (r *Router) setupTicketRoutes() {
	routes.SetupTicketRoutes(r.engine, &routes.TicketRouteConfig{
		TicketHandler:  r.hdlrs.ticketHandler,
		AuthMiddleware: r.authMiddleware,
	})
}

func (r *Router) setupCategoryRoutes() {
	routes.SetupCategoryRoutes(r.engine, &routes.CategoryRouteConfig{
		CategoryHandler:      r.hdlrs.categoryHandler,
		AuthMiddleware:       r.authMiddleware,
		PermissionMiddleware: r.permissionMiddleware,
	})
}

func (r *Router) setupAgentRoutes() {
	routes.SetupAgentRoutes(r.engine, &routes.AgentRouteConfig{
		AgentTicketHandler:   r.hdlrs.agentTicketHandler,
		AuthMiddleware:       r.authMiddleware,
		PermissionMiddleware: r.permissionMiddleware,
	})
}

func (r *Router) setupAdminRoutes() {
	routes.SetupAdminRoutes(r.engine, &routes.AdminRouteConfig{
		UpgradeRequestHandler: r.hdlrs.adminUpgradeHandler,
		UserHandler:           r.hdlrs.adminUserHandler,
		AuthMiddleware:        r.authMiddleware,
		PermissionMiddleware:  r.permissionMiddleware,
	})
}
