package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"quickdesk/internal/application/user/usecases"
	"quickdesk/internal/shared/logger"
	"quickdesk/internal/shared/utils"
)

type SignupRequest struct {
	Name     string `json:"name" binding:"required" example:"Grace Hopper"`
	Gender   string `json:"gender" binding:"required" example:"female"`
	Email    string `json:"email" binding:"required" example:"grace@example.com"`
	Password string `json:"password" binding:"required" example:"s3cret"`
	Category string `json:"category" binding:"required" example:"Engineering"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required" example:"grace@example.com"`
	Password string `json:"password" binding:"required" example:"s3cret"`
}

type AuthHandler struct {
	registerUC usecases.RegisterExecutor
	loginUC    usecases.LoginExecutor
	logger     logger.Interface
}

func NewAuthHandler(registerUC usecases.RegisterExecutor, loginUC usecases.LoginExecutor, logger logger.Interface) *AuthHandler {
	return &AuthHandler{
		registerUC: registerUC,
		loginUC:    loginUC,
		logger:     logger,
	}
}

// Signup handles POST /signup
//
//	@Summary		Register an end-user account
//	@Description	Any role in the body is ignored; new accounts are always end-users
//	@Tags			auth
//	@Accept			json
//	@Produce		json
//	@Param			body	body		SignupRequest	true	"Account details"
//	@Success		201		{object}	map[string]interface{}
//	@Failure		400		{object}	utils.ErrorBody
//	@Router			/signup [post]
func (h *AuthHandler) Signup(c *gin.Context) {
	var req SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, utils.BindingError(err, "All fields are required"))
		return
	}

	result, err := h.registerUC.Execute(c.Request.Context(), usecases.RegisterCommand{
		Name:     req.Name,
		Gender:   req.Gender,
		Email:    req.Email,
		Password: req.Password,
		Category: req.Category,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusCreated, "User registered successfully", "user", result)
}

// Login handles POST /login
//
//	@Summary	Exchange credentials for a session token
//	@Tags		auth
//	@Accept		json
//	@Produce	json
//	@Param		body	body		LoginRequest	true	"Credentials"
//	@Success	200		{object}	map[string]interface{}
//	@Failure	400		{object}	utils.ErrorBody
//	@Router		/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, utils.BindingError(err, "All fields are required"))
		return
	}

	result, err := h.loginUC.Execute(c.Request.Context(), usecases.LoginCommand{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.DataResponse(c, http.StatusOK, result)
}
