package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	upgradeusecases "quickdesk/internal/application/upgrade/usecases"
	"quickdesk/internal/application/user/usecases"
	"quickdesk/internal/interfaces/http/middleware"
	"quickdesk/internal/shared/errors"
	"quickdesk/internal/shared/logger"
	"quickdesk/internal/shared/utils"
)

type UpdateProfileRequest struct {
	Name     string `json:"name" binding:"required"`
	Gender   string `json:"gender" binding:"required"`
	Category string `json:"category" binding:"required"`
}

// ProfileHandler serves the caller's own account.
type ProfileHandler struct {
	getProfileUC     usecases.GetProfileExecutor
	updateProfileUC  usecases.UpdateProfileExecutor
	requestUpgradeUC upgradeusecases.RequestUpgradeExecutor
	logger           logger.Interface
}

func NewProfileHandler(
	getProfileUC usecases.GetProfileExecutor,
	updateProfileUC usecases.UpdateProfileExecutor,
	requestUpgradeUC upgradeusecases.RequestUpgradeExecutor,
	logger logger.Interface,
) *ProfileHandler {
	return &ProfileHandler{
		getProfileUC:     getProfileUC,
		updateProfileUC:  updateProfileUC,
		requestUpgradeUC: requestUpgradeUC,
		logger:           logger,
	}
}

// GetProfile handles GET /profile
//
//	@Summary	Current user's profile
//	@Tags		profile
//	@Produce	json
//	@Security	Bearer
//	@Success	200	{object}	map[string]interface{}
//	@Failure	400	{object}	utils.ErrorBody	"User not found"
//	@Failure	401	{object}	utils.ErrorBody
//	@Router		/profile [get]
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		utils.ErrorResponseWithError(c, errors.NewTokenMissingError())
		return
	}

	result, err := h.getProfileUC.Execute(c.Request.Context(), userID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.DataResponse(c, http.StatusOK, gin.H{"user": result})
}

// UpdateProfile handles PUT /profile
//
//	@Summary	Edit name, gender and category
//	@Tags		profile
//	@Accept		json
//	@Produce	json
//	@Security	Bearer
//	@Param		body	body		UpdateProfileRequest	true	"Profile fields"
//	@Success	200		{object}	map[string]interface{}
//	@Failure	400		{object}	utils.ErrorBody
//	@Router		/profile [put]
func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		utils.ErrorResponseWithError(c, errors.NewTokenMissingError())
		return
	}

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, utils.BindingError(err, "Name, gender, and category are required"))
		return
	}

	result, err := h.updateProfileUC.Execute(c.Request.Context(), usecases.UpdateProfileCommand{
		UserID:   userID,
		Name:     req.Name,
		Gender:   req.Gender,
		Category: req.Category,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Profile updated successfully", "user", result)
}

// RequestUpgrade handles POST /upgrade-request
//
//	@Summary	Ask an admin to make the caller an agent
//	@Tags		profile
//	@Produce	json
//	@Security	Bearer
//	@Success	201	{object}	map[string]interface{}
//	@Failure	400	{object}	utils.ErrorBody	"Not an end-user, or a request is already pending"
//	@Router		/upgrade-request [post]
func (h *ProfileHandler) RequestUpgrade(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		utils.ErrorResponseWithError(c, errors.NewTokenMissingError())
		return
	}

	result, err := h.requestUpgradeUC.Execute(c.Request.Context(), userID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusCreated, "Upgrade request submitted", "request", result)
}
