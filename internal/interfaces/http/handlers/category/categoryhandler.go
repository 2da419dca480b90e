package category

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"hilla/internal/application/ticket/usecases"
	"hilla/internal/shared/errors"
	"hilla/internal/shared/logger"
	"hilla/internal/shared/utils"
)

type CategoryHandler struct {
	createCategoryUC usecases.CreateCategoryExecutor
	listCategoriesUC usecases.ListCategoriesExecutor
	deleteCategoryUC usecases.DeleteCategoryExecutor
	logger           logger.Interface
}

func NewCategoryHandler(
	createCategoryUC usecases.CreateCategoryExecutor,
	listCategoriesUC usecases.ListCategoriesExecutor,
	deleteCategoryUC usecases.DeleteCategoryExecutor,
) *CategoryHandler {
	return &CategoryHandler{
		createCategoryUC: createCategoryUC,
		listCategoriesUC: listCategoriesUC,
		deleteCategoryUC: deleteCategoryUC,
		logger:           logger.NewLogger(),
	}
}

type CreateCategoryRequest struct {
	Name string `json:"name" binding:"required,max=120"`
}

// CreateCategory handles POST /api/categories
func (h *CategoryHandler) CreateCategory(c *gin.Context) {
	var req CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create category", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.createCategoryUC.Execute(c.Request.Context(), usecases.CreateCategoryCommand{Name: req.Name})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result)
}

// ListCategories handles GET /api/categories
func (h *CategoryHandler) ListCategories(c *gin.Context) {
	result, err := h.listCategoriesUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.JSONResponse(c, http.StatusOK, result)
}

// DeleteCategory handles DELETE /api/categories/:id
func (h *CategoryHandler) DeleteCategory(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		utils.ErrorResponseWithError(c, errors.NewBadRequestError("invalid category ID"))
		return
	}

	if err := h.deleteCategoryUC.Execute(c.Request.Context(), usecases.DeleteCategoryCommand{CategoryID: uint(id)}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}
