package dashboard

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hilla/internal/application/ticket/usecases"
	"hilla/internal/shared/utils"
)

type DashboardHandler struct {
	getStatsUC usecases.GetDashboardStatsExecutor
}

func NewDashboardHandler(getStatsUC usecases.GetDashboardStatsExecutor) *DashboardHandler {
	return &DashboardHandler{getStatsUC: getStatsUC}
}

// GetStats handles GET /api/dashboard/stats
func (h *DashboardHandler) GetStats(c *gin.Context) {
	stats, err := h.getStatsUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.JSONResponse(c, http.StatusOK, stats)
}
