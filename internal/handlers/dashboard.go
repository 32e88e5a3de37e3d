// internal/handlers/dashboard.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/javajoker/shopsmart-admin/internal/services"
	"github.com/javajoker/shopsmart-admin/internal/utils"
)

type DashboardHandler struct {
	dashboardService *services.DashboardService
}

func NewDashboardHandler(dashboardService *services.DashboardService) *DashboardHandler {
	return &DashboardHandler{
		dashboardService: dashboardService,
	}
}

// GET /dashboard
func (h *DashboardHandler) GetDashboard(c *gin.Context) {
	utils.SuccessResponse(c, h.dashboardService.GetDashboard())
}
