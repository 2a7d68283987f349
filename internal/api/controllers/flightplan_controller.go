package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"wxbrief/internal/models/request_models"
	"wxbrief/internal/services"
	"wxbrief/pkg/middleware"
	"wxbrief/pkg/utils"
)

type FlightPlanController struct {
	planService services.FlightPlanServiceInterface
}

func NewFlightPlanController(planService services.FlightPlanServiceInterface) *FlightPlanController {
	return &FlightPlanController{
		planService: planService,
	}
}

func (f *FlightPlanController) CreateFlightPlan(c *gin.Context) {
	user := middleware.CurrentUser(c)
	if user == nil {
		utils.RespondError(c, http.StatusUnauthorized, "Not authenticated")
		return
	}

	var req request_models.CreateFlightPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	planID, err := f.planService.CreateFlightPlan(c.Request.Context(), user.ID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"id": planID.String()}, "Flight plan created successfully")
}
