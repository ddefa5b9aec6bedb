package http

import (
	"gorm.io/gorm"

	"quickdesk/internal/domain/category"
	"quickdesk/internal/domain/ticket"
	"quickdesk/internal/domain/upgrade"
	"quickdesk/internal/domain/user"
	"quickdesk/internal/infrastructure/repository"
	"quickdesk/internal/shared/logger"
)

// repositories holds all repository instances used by the application.
type repositories struct {
	userRepo     user.Repository
	categoryRepo category.Repository
	ticketRepo   ticket.TicketRepository
	commentRepo  ticket.CommentRepository
	upvoteRepo   ticket.UpvoteRepository
	requestRepo  upgrade.Repository
}

// newRepositories creates all repository instances from the database connection.
func newRepositories(db *gorm.DB, log logger.Interface) *repositories {
	return &repositories{
		userRepo:     repository.NewUserRepository(db, log),
		categoryRepo: repository.NewCategoryRepository(db),
		ticketRepo:   repository.NewTicketRepository(db),
		commentRepo:  repository.NewCommentRepository(db),
		upvoteRepo:   repository.NewUpvoteRepository(db),
		requestRepo:  repository.NewUpgradeRequestRepository(db),
	}
}
