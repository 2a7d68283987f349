package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"wxbrief/internal/models/request_models"
	"wxbrief/internal/services"
	"wxbrief/pkg/middleware"
	"wxbrief/pkg/utils"
)

type BriefingController struct {
	briefingService services.BriefingServiceInterface
}

func NewBriefingController(briefingService services.BriefingServiceInterface) *BriefingController {
	return &BriefingController{
		briefingService: briefingService,
	}
}

func (b *BriefingController) GenerateBriefing(c *gin.Context) {
	user := middleware.CurrentUser(c)
	if user == nil {
		utils.RespondError(c, http.StatusUnauthorized, "Not authenticated")
		return
	}

	var req request_models.BriefingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	briefing, err := b.briefingService.GenerateBriefing(c.Request.Context(), user, req.FlightPlanID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, briefing, "Briefing generated successfully")
}
