package routes

import (
	"github.com/gin-gonic/gin"

	aihandlers "hilla/internal/interfaces/http/handlers/ai"
)

type AIRouteConfig struct {
	AIHandler *aihandlers.AIHandler
}

func SetupAIRoutes(api *gin.RouterGroup, config *AIRouteConfig) {
	api.POST("/ai/generate", config.AIHandler.Generate)
}
