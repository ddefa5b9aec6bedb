package http

import (
	categoryUsecases "quickdesk/internal/application/category/usecases"
	permissionApp "quickdesk/internal/application/permission"
	ticketUsecases "quickdesk/internal/application/ticket/usecases"
	upgradeUsecases "quickdesk/internal/application/upgrade/usecases"
	"quickdesk/internal/application/user/usecases"
	shareddb "quickdesk/internal/shared/db"
)

// allUseCases holds all use case instances used by the application.
type allUseCases struct {
	// User / Auth
	registerUC      *usecases.RegisterUseCase
	loginUC         *usecases.LoginUseCase
	getProfileUC    *usecases.GetProfileUseCase
	updateProfileUC *usecases.UpdateProfileUseCase
	listUsersUC     *usecases.ListUsersUseCase
	changeRoleUC    *usecases.ChangeRoleUseCase

	// Tickets
	createTicketUC  *ticketUsecases.CreateTicketUseCase
	listTicketsUC   *ticketUsecases.ListTicketsUseCase
	listMyTicketsUC *ticketUsecases.ListMyTicketsUseCase
	getTicketUC     *ticketUsecases.GetTicketUseCase
	upvoteTicketUC  *ticketUsecases.UpvoteTicketUseCase
	changeStatusUC  *ticketUsecases.ChangeStatusUseCase
	addCommentUC    *ticketUsecases.AddCommentUseCase
	listCommentsUC  *ticketUsecases.ListCommentsUseCase

	// Upgrade requests
	requestUpgradeUC *upgradeUsecases.RequestUpgradeUseCase
	listRequestsUC   *upgradeUsecases.ListRequestsUseCase
	resolveUpgradeUC *upgradeUsecases.ResolveUpgradeUseCase

	// Categories
	listCategoriesUC *categoryUsecases.ListCategoriesUseCase
	createCategoryUC *categoryUsecases.CreateCategoryUseCase

	// Authorization
	permissionService *permissionApp.Service
}

// initUseCases builds every use case on top of the repositories and services.
func (c *Container) initUseCases() {
	r := c.repos
	s := c.svcs
	log := c.log
	txMgr := shareddb.NewTransactionManager(c.db)

	c.ucs = &allUseCases{
		registerUC:      usecases.NewRegisterUseCase(r.userRepo, s.hasher, log),
		loginUC:         usecases.NewLoginUseCase(r.userRepo, s.hasher, s.jwtSvc, log),
		getProfileUC:    usecases.NewGetProfileUseCase(r.userRepo, log),
		updateProfileUC: usecases.NewUpdateProfileUseCase(r.userRepo, log),
		listUsersUC:     usecases.NewListUsersUseCase(r.userRepo, log),
		changeRoleUC:    usecases.NewChangeRoleUseCase(r.userRepo, log),

		createTicketUC:  ticketUsecases.NewCreateTicketUseCase(r.ticketRepo, log),
		listTicketsUC:   ticketUsecases.NewListTicketsUseCase(r.ticketRepo, log),
		listMyTicketsUC: ticketUsecases.NewListMyTicketsUseCase(r.ticketRepo, log),
		getTicketUC:     ticketUsecases.NewGetTicketUseCase(r.ticketRepo, s.renderer, log),
		upvoteTicketUC:  ticketUsecases.NewUpvoteTicketUseCase(r.ticketRepo, r.upvoteRepo, txMgr, log),
		changeStatusUC:  ticketUsecases.NewChangeStatusUseCase(r.ticketRepo, log),
		addCommentUC:    ticketUsecases.NewAddCommentUseCase(r.ticketRepo, r.commentRepo, txMgr, log),
		listCommentsUC:  ticketUsecases.NewListCommentsUseCase(r.ticketRepo, r.commentRepo, log),

		requestUpgradeUC: upgradeUsecases.NewRequestUpgradeUseCase(r.userRepo, r.requestRepo, txMgr, log),
		listRequestsUC:   upgradeUsecases.NewListRequestsUseCase(r.requestRepo, log),
		resolveUpgradeUC: upgradeUsecases.NewResolveUpgradeUseCase(r.requestRepo, r.userRepo, txMgr, s.notifier, log),

		listCategoriesUC: categoryUsecases.NewListCategoriesUseCase(r.categoryRepo, s.categoryCache, log),
		createCategoryUC: categoryUsecases.NewCreateCategoryUseCase(r.categoryRepo, s.categoryCache, log),

		permissionService: permissionApp.NewService(r.userRepo, s.enforcer, log),
	}
}
