package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"quickdesk/internal/application/user/usecases"
	"quickdesk/internal/interfaces/http/middleware"
	"quickdesk/internal/shared/errors"
	"quickdesk/internal/shared/logger"
	"quickdesk/internal/shared/utils"
)

type ChangeRoleRequest struct {
	Role string `json:"role" binding:"required" example:"agent"`
}

type UserHandler struct {
	listUsersUC  usecases.ListUsersExecutor
	changeRoleUC usecases.ChangeRoleExecutor
	logger       logger.Interface
}

func NewUserHandler(listUsersUC usecases.ListUsersExecutor, changeRoleUC usecases.ChangeRoleExecutor, logger logger.Interface) *UserHandler {
	return &UserHandler{
		listUsersUC:  listUsersUC,
		changeRoleUC: changeRoleUC,
		logger:       logger,
	}
}

// ListUsers handles GET /admin/users
//
//	@Summary	All accounts, newest first
//	@Tags		admin
//	@Produce	json
//	@Security	Bearer
//	@Success	200	{array}	dto.UserDTO
//	@Router		/admin/users [get]
func (h *UserHandler) ListUsers(c *gin.Context) {
	result, err := h.listUsersUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.DataResponse(c, http.StatusOK, result)
}

// ChangeRole handles PUT /admin/users/:id/role
//
//	@Summary	Promote to agent or demote to end-user
//	@Tags		admin
//	@Accept		json
//	@Produce	json
//	@Security	Bearer
//	@Param		id		path		int					true	"User ID"
//	@Param		body	body		ChangeRoleRequest	true	"Target role"
//	@Success	200		{object}	map[string]interface{}
//	@Failure	400		{object}	utils.ErrorBody
//	@Failure	403		{object}	utils.ErrorBody	"Admin roles cannot be changed"
//	@Failure	404		{object}	utils.ErrorBody
//	@Router		/admin/users/{id}/role [put]
func (h *UserHandler) ChangeRole(c *gin.Context) {
	actorID, ok := middleware.GetUserID(c)
	if !ok {
		utils.ErrorResponseWithError(c, errors.NewTokenMissingError())
		return
	}

	targetID, err := utils.ParseIDParam(c, "id", "user")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req ChangeRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, utils.BindingError(err, "Role must be agent or end-user"))
		return
	}

	result, err := h.changeRoleUC.Execute(c.Request.Context(), usecases.ChangeRoleCommand{
		TargetUserID: targetID,
		Role:         req.Role,
		ActorID:      actorID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Role updated", "user", result)
}
