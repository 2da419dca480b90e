package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hilla/internal/infrastructure/config"
	"hilla/internal/interfaces/http/middleware"
	"hilla/internal/interfaces/http/routes"
	"hilla/internal/shared/logger"
)

func newEngine(cfg *config.Config, log logger.Interface, hdlrs *handlers) *gin.Engine {
	gin.SetMode(ginMode(cfg.Server.Mode))

	engine := gin.New()
	engine.Use(middleware.Recovery())
	engine.Use(middleware.Logger(log))
	engine.Use(middleware.CORS(cfg.Server.AllowedOrigins))
	engine.Use(middleware.SecurityHeaders())

	// Wrong verb on a known path must answer 405, not 404.
	engine.HandleMethodNotAllowed = true
	engine.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, gin.H{
			"error": gin.H{
				"type":    "method_not_allowed",
				"message": "method not allowed",
			},
		})
	})

	engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := engine.Group("/api")
	routes.SetupTicketRoutes(api, &routes.TicketRouteConfig{TicketHandler: hdlrs.ticket})
	routes.SetupCategoryRoutes(api, &routes.CategoryRouteConfig{CategoryHandler: hdlrs.category})
	routes.SetupDashboardRoutes(api, &routes.DashboardRouteConfig{DashboardHandler: hdlrs.dashboard})
	routes.SetupAIRoutes(api, &routes.AIRouteConfig{AIHandler: hdlrs.ai})

	return engine
}

func ginMode(mode string) string {
	switch mode {
	case "release", "production":
		return gin.ReleaseMode
	case "test":
		return gin.TestMode
	default:
		return gin.DebugMode
	}
}
