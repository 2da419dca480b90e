package routes

import (
	"github.com/gin-gonic/gin"

	dashboardhandlers "hilla/internal/interfaces/http/handlers/dashboard"
)

type DashboardRouteConfig struct {
	DashboardHandler *dashboardhandlers.DashboardHandler
}

func SetupDashboardRoutes(api *gin.RouterGroup, config *DashboardRouteConfig) {
	api.GET("/dashboard/stats", config.DashboardHandler.GetStats)
}
