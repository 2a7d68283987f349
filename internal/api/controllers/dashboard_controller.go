package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"wxbrief/internal/services"
	"wxbrief/pkg/middleware"
	"wxbrief/pkg/utils"
)

type DashboardController struct {
	dashboardService services.DashboardService
}

func NewDashboardController(dashboardService services.DashboardService) *DashboardController {
	return &DashboardController{
		dashboardService: dashboardService,
	}
}

// GetDashboard returns the caller's summary plus their most recent plans.
func (d *DashboardController) GetDashboard(c *gin.Context) {
	user := middleware.CurrentUser(c)
	if user == nil {
		utils.RespondError(c, http.StatusUnauthorized, "Not authenticated")
		return
	}

	dashboard, err := d.dashboardService.BuildDashboard(c.Request.Context(), user)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, dashboard, "Dashboard data fetched successfully")
}
