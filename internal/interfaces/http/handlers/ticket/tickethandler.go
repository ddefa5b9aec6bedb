package ticket

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"quickdesk/internal/application/ticket/dto"
	"quickdesk/internal/application/ticket/usecases"
	"quickdesk/internal/interfaces/http/middleware"
	"quickdesk/internal/shared/constants"
	"quickdesk/internal/shared/errors"
	"quickdesk/internal/shared/logger"
	"quickdesk/internal/shared/utils"
)

// TicketHandler serves the public ticket feed and end-user actions.
type TicketHandler struct {
	createTicketUC  usecases.CreateTicketExecutor
	listTicketsUC   usecases.ListTicketsExecutor
	listMyTicketsUC usecases.ListMyTicketsExecutor
	upvoteTicketUC  usecases.UpvoteTicketExecutor
	logger          logger.Interface
}

func NewTicketHandler(
	createTicketUC usecases.CreateTicketExecutor,
	listTicketsUC usecases.ListTicketsExecutor,
	listMyTicketsUC usecases.ListMyTicketsExecutor,
	upvoteTicketUC usecases.UpvoteTicketExecutor,
	logger logger.Interface,
) *TicketHandler {
	return &TicketHandler{
		createTicketUC:  createTicketUC,
		listTicketsUC:   listTicketsUC,
		listMyTicketsUC: listMyTicketsUC,
		upvoteTicketUC:  upvoteTicketUC,
		logger:          logger,
	}
}

// ListTickets handles GET /tickets
//
//	@Summary	Public ticket feed, newest first
//	@Tags		tickets
//	@Produce	json
//	@Param		status	query		string	false	"open, in-progress, resolved or closed"
//	@Param		tag		query		string	false	"Exact tag"
//	@Param		q		query		string	false	"Substring over question, description and tags"
//	@Success	200		{array}		dto.PublicTicketDTO
//	@Failure	400		{object}	utils.ErrorBody
//	@Router		/tickets [get]
func (h *TicketHandler) ListTickets(c *gin.Context) {
	result, err := h.listTicketsUC.Execute(c.Request.Context(), listQuery(c))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.DataResponse(c, http.StatusOK, dto.ToPublicTicketDTOList(result))
}

// CreateTicket handles POST /tickets
//
//	@Summary	Raise a ticket
//	@Tags		tickets
//	@Accept		json
//	@Produce	json
//	@Security	Bearer
//	@Param		body	body		CreateTicketRequest	true	"Ticket"
//	@Success	201		{object}	map[string]interface{}
//	@Failure	400		{object}	utils.ErrorBody
//	@Router		/tickets [post]
func (h *TicketHandler) CreateTicket(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		utils.ErrorResponseWithError(c, errors.NewTokenMissingError())
		return
	}

	var req CreateTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, utils.BindingError(err, "All fields are required"))
		return
	}

	result, err := h.createTicketUC.Execute(c.Request.Context(), usecases.CreateTicketCommand{
		Question:     req.Question,
		Description:  req.Description,
		Tags:         req.Tags,
		CreatorID:    userID,
		CreatorEmail: c.GetString(constants.ContextKeyUserEmail),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusCreated, "Ticket created successfully", "ticket", result)
}

// UpvoteTicket handles POST /tickets/:id/upvote
//
//	@Summary	Upvote a ticket once
//	@Tags		tickets
//	@Produce	json
//	@Security	Bearer
//	@Param		id	path		int	true	"Ticket ID"
//	@Success	201	{object}	utils.MessageResponse
//	@Failure	400	{object}	utils.ErrorBody	"Already upvoted"
//	@Failure	404	{object}	utils.ErrorBody
//	@Router		/tickets/{id}/upvote [post]
func (h *TicketHandler) UpvoteTicket(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		utils.ErrorResponseWithError(c, errors.NewTokenMissingError())
		return
	}

	ticketID, err := utils.ParseIDParam(c, "id", "ticket")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.upvoteTicketUC.Execute(c.Request.Context(), usecases.UpvoteTicketCommand{
		TicketID: ticketID,
		UserID:   userID,
	}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusCreated, "Ticket upvoted", "", nil)
}

// ListMyTickets handles GET /end-user/my-tickets
//
//	@Summary	Tickets raised by the caller
//	@Tags		tickets
//	@Produce	json
//	@Security	Bearer
//	@Success	200	{array}	dto.TicketDTO
//	@Router		/end-user/my-tickets [get]
func (h *TicketHandler) ListMyTickets(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		utils.ErrorResponseWithError(c, errors.NewTokenMissingError())
		return
	}

	result, err := h.listMyTicketsUC.Execute(c.Request.Context(), userID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.DataResponse(c, http.StatusOK, result)
}
