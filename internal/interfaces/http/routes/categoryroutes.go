package routes

import (
	"github.com/gin-gonic/gin"

	categoryhandlers "hilla/internal/interfaces/http/handlers/category"
)

type CategoryRouteConfig struct {
	CategoryHandler *categoryhandlers.CategoryHandler
}

func SetupCategoryRoutes(api *gin.RouterGroup, config *CategoryRouteConfig) {
	categories := api.Group("/categories")
	{
		categories.POST("", config.CategoryHandler.CreateCategory)
		categories.GET("", config.CategoryHandler.ListCategories)
		categories.DELETE("/:id", config.CategoryHandler.DeleteCategory)
	}
}
