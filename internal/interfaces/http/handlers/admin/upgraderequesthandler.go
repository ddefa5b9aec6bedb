package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"quickdesk/internal/application/upgrade/usecases"
	"quickdesk/internal/interfaces/http/middleware"
	"quickdesk/internal/shared/errors"
	"quickdesk/internal/shared/logger"
	"quickdesk/internal/shared/utils"
)

type ResolveRequestBody struct {
	Status string `json:"status" binding:"required" example:"approved"`
}

type UpgradeRequestHandler struct {
	listRequestsUC usecases.ListRequestsExecutor
	resolveUC      usecases.ResolveUpgradeExecutor
	logger         logger.Interface
}

func NewUpgradeRequestHandler(listRequestsUC usecases.ListRequestsExecutor, resolveUC usecases.ResolveUpgradeExecutor, logger logger.Interface) *UpgradeRequestHandler {
	return &UpgradeRequestHandler{
		listRequestsUC: listRequestsUC,
		resolveUC:      resolveUC,
		logger:         logger,
	}
}

// ListRequests handles GET /admin/upgrade-requests
//
//	@Summary	Upgrade requests with requester details
//	@Tags		admin
//	@Produce	json
//	@Security	Bearer
//	@Param		status	query		string	false	"pending (default), approved or rejected"
//	@Success	200		{array}		dto.RequestDTO
//	@Failure	403		{object}	utils.ErrorBody
//	@Router		/admin/upgrade-requests [get]
func (h *UpgradeRequestHandler) ListRequests(c *gin.Context) {
	result, err := h.listRequestsUC.Execute(c.Request.Context(), c.Query("status"))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.DataResponse(c, http.StatusOK, result)
}

// ResolveRequest handles PUT /admin/upgrade-requests/:id
//
//	@Summary	Approve or reject a pending request
//	@Tags		admin
//	@Accept		json
//	@Produce	json
//	@Security	Bearer
//	@Param		id		path		int					true	"Request ID"
//	@Param		body	body		ResolveRequestBody	true	"Decision"
//	@Success	200		{object}	map[string]interface{}
//	@Failure	400		{object}	utils.ErrorBody
//	@Failure	404		{object}	utils.ErrorBody	"Request not found"
//	@Router		/admin/upgrade-requests/{id} [put]
func (h *UpgradeRequestHandler) ResolveRequest(c *gin.Context) {
	adminID, ok := middleware.GetUserID(c)
	if !ok {
		utils.ErrorResponseWithError(c, errors.NewTokenMissingError())
		return
	}

	requestID, err := utils.ParseIDParam(c, "id", "request")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var body ResolveRequestBody
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.ErrorResponseWithError(c, utils.BindingError(err, "Invalid status. Must be approved or rejected"))
		return
	}

	result, err := h.resolveUC.Execute(c.Request.Context(), usecases.ResolveUpgradeCommand{
		RequestID: requestID,
		Decision:  body.Status,
		AdminID:   adminID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Request "+result.Status, "request", result)
}
