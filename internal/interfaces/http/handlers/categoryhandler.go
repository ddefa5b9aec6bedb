package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"quickdesk/internal/application/category/usecases"
	"quickdesk/internal/shared/logger"
	"quickdesk/internal/shared/utils"
)

type CreateCategoryRequest struct {
	Name string `json:"name" binding:"required" example:"Billing"`
}

type CategoryHandler struct {
	listUC   usecases.ListCategoriesExecutor
	createUC usecases.CreateCategoryExecutor
	logger   logger.Interface
}

func NewCategoryHandler(listUC usecases.ListCategoriesExecutor, createUC usecases.CreateCategoryExecutor, logger logger.Interface) *CategoryHandler {
	return &CategoryHandler{
		listUC:   listUC,
		createUC: createUC,
		logger:   logger,
	}
}

// ListCategories handles GET /categories
//
//	@Summary	All ticket categories
//	@Tags		categories
//	@Produce	json
//	@Success	200	{array}	map[string]interface{}
//	@Router		/categories [get]
func (h *CategoryHandler) ListCategories(c *gin.Context) {
	result, err := h.listUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.DataResponse(c, http.StatusOK, result)
}

// CreateCategory handles POST /categories
//
//	@Summary	Add a category (agents and admins)
//	@Tags		categories
//	@Accept		json
//	@Produce	json
//	@Security	Bearer
//	@Param		body	body		CreateCategoryRequest	true	"Category"
//	@Success	201		{object}	map[string]interface{}
//	@Failure	400		{object}	utils.ErrorBody
//	@Failure	403		{object}	utils.ErrorBody
//	@Router		/categories [post]
func (h *CategoryHandler) CreateCategory(c *gin.Context) {
	var req CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, utils.BindingError(err, "Category name is required"))
		return
	}

	result, err := h.createUC.Execute(c.Request.Context(), req.Name)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusCreated, "Category created successfully", "category", result)
}
