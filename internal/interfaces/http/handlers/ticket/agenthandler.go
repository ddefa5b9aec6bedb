package ticket

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"quickdesk/internal/application/ticket/usecases"
	domainticket "quickdesk/internal/domain/ticket"
	"quickdesk/internal/interfaces/http/middleware"
	"quickdesk/internal/shared/errors"
	"quickdesk/internal/shared/logger"
	"quickdesk/internal/shared/utils"
)

// AgentTicketHandler serves the staff queue. Routes are mounted behind
// RequireRole(agent, admin), which leaves the loaded user in the context.
type AgentTicketHandler struct {
	listTicketsUC  usecases.ListTicketsExecutor
	getTicketUC    usecases.GetTicketExecutor
	changeStatusUC usecases.ChangeStatusExecutor
	addCommentUC   usecases.AddCommentExecutor
	listCommentsUC usecases.ListCommentsExecutor
	logger         logger.Interface
}

func NewAgentTicketHandler(
	listTicketsUC usecases.ListTicketsExecutor,
	getTicketUC usecases.GetTicketExecutor,
	changeStatusUC usecases.ChangeStatusExecutor,
	addCommentUC usecases.AddCommentExecutor,
	listCommentsUC usecases.ListCommentsExecutor,
	logger logger.Interface,
) *AgentTicketHandler {
	return &AgentTicketHandler{
		listTicketsUC:  listTicketsUC,
		getTicketUC:    getTicketUC,
		changeStatusUC: changeStatusUC,
		addCommentUC:   addCommentUC,
		listCommentsUC: listCommentsUC,
		logger:         logger,
	}
}

// ListTickets handles GET /agent/tickets
//
//	@Summary	Staff ticket queue with assigned agents
//	@Tags		agent
//	@Produce	json
//	@Security	Bearer
//	@Param		status	query		string	false	"Status filter"
//	@Param		tag		query		string	false	"Tag filter"
//	@Param		q		query		string	false	"Search text"
//	@Success	200		{array}		dto.TicketDTO
//	@Failure	403		{object}	utils.ErrorBody
//	@Router		/agent/tickets [get]
func (h *AgentTicketHandler) ListTickets(c *gin.Context) {
	result, err := h.listTicketsUC.Execute(c.Request.Context(), listQuery(c))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.DataResponse(c, http.StatusOK, result)
}

// GetTicket handles GET /agent/tickets/:id
//
//	@Summary	Ticket detail with rendered description
//	@Tags		agent
//	@Produce	json
//	@Security	Bearer
//	@Param		id	path		int	true	"Ticket ID"
//	@Success	200	{object}	dto.TicketDTO
//	@Failure	404	{object}	utils.ErrorBody
//	@Router		/agent/tickets/{id} [get]
func (h *AgentTicketHandler) GetTicket(c *gin.Context) {
	ticketID, err := utils.ParseIDParam(c, "id", "ticket")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getTicketUC.Execute(c.Request.Context(), usecases.GetTicketQuery{
		TicketID:   ticketID,
		RenderHTML: true,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.DataResponse(c, http.StatusOK, result)
}

// UpdateStatus handles PUT /agent/tickets/:id/status
//
//	@Summary	Set status and take the ticket
//	@Tags		agent
//	@Accept		json
//	@Produce	json
//	@Security	Bearer
//	@Param		id		path		int					true	"Ticket ID"
//	@Param		body	body		UpdateStatusRequest	true	"New status"
//	@Success	200		{object}	map[string]interface{}
//	@Failure	400		{object}	utils.ErrorBody	"Invalid status"
//	@Failure	404		{object}	utils.ErrorBody
//	@Router		/agent/tickets/{id}/status [put]
func (h *AgentTicketHandler) UpdateStatus(c *gin.Context) {
	agent, ok := middleware.GetCurrentUser(c)
	if !ok {
		utils.ErrorResponseWithError(c, errors.NewTokenMissingError())
		return
	}

	ticketID, err := utils.ParseIDParam(c, "id", "ticket")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, utils.BindingError(err, "Invalid status"))
		return
	}

	result, err := h.changeStatusUC.Execute(c.Request.Context(), usecases.ChangeStatusCommand{
		TicketID:   ticketID,
		Status:     req.Status,
		AgentID:    agent.ID(),
		AgentEmail: agent.Email(),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Status updated", "ticket", result)
}

// AddComment handles POST /agent/tickets/:id/comment
//
//	@Summary	Reply on a ticket
//	@Tags		agent
//	@Accept		json
//	@Produce	json
//	@Security	Bearer
//	@Param		id		path		int					true	"Ticket ID"
//	@Param		body	body		AddCommentRequest	true	"Comment"
//	@Success	201		{object}	map[string]interface{}
//	@Failure	400		{object}	utils.ErrorBody	"Comment cannot be empty"
//	@Failure	404		{object}	utils.ErrorBody
//	@Router		/agent/tickets/{id}/comment [post]
func (h *AgentTicketHandler) AddComment(c *gin.Context) {
	author, ok := middleware.GetCurrentUser(c)
	if !ok {
		utils.ErrorResponseWithError(c, errors.NewTokenMissingError())
		return
	}

	ticketID, err := utils.ParseIDParam(c, "id", "ticket")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req AddCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, utils.BindingError(err, "Comment cannot be empty"))
		return
	}

	result, err := h.addCommentUC.Execute(c.Request.Context(), usecases.AddCommentCommand{
		TicketID: ticketID,
		Message:  req.Comment,
		Author: domainticket.Author{
			Name:  author.Name(),
			Email: author.Email(),
			Role:  author.Role(),
		},
		AuthorID: author.ID(),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusCreated, "Comment added", "comment", result)
}

// ListComments handles GET /agent/tickets/:id/comments
//
//	@Summary	Ticket conversation, oldest first
//	@Tags		agent
//	@Produce	json
//	@Security	Bearer
//	@Param		id	path		int	true	"Ticket ID"
//	@Success	200	{array}		dto.CommentDTO
//	@Failure	404	{object}	utils.ErrorBody
//	@Router		/agent/tickets/{id}/comments [get]
func (h *AgentTicketHandler) ListComments(c *gin.Context) {
	ticketID, err := utils.ParseIDParam(c, "id", "ticket")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.listCommentsUC.Execute(c.Request.Context(), ticketID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.DataResponse(c, http.StatusOK, result)
}
