package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/oguzk/studenthub/internal/app/models/dto"
	"github.com/oguzk/studenthub/internal/app/services"
	"github.com/oguzk/studenthub/internal/middleware"
	"github.com/rs/zerolog"
)

// DashboardController serves the home dashboard counters
type DashboardController struct {
	dashboardService services.DashboardService
	logger           zerolog.Logger
}

// NewDashboardController creates a new DashboardController
func NewDashboardController(dashboardService services.DashboardService, logger zerolog.Logger) *DashboardController {
	return &DashboardController{
		dashboardService: dashboardService,
		logger:           logger,
	}
}

// GetDashboard returns dashboard counters for the caller. Administrators get
// system wide counts, students get their own enrollment breakdown.
// @Summary Dashboard counters
// @Tags dashboard
// @Produce json
// @Success 200 {object} dto.APIResponse "Dashboard data"
// @Failure 404 {object} dto.ErrorResponse "Student profile not found"
// @Security BearerAuth
// @Router /dashboard [get]
func (c *DashboardController) GetDashboard(ctx *gin.Context) {
	if ctx.GetBool("isSuperuser") {
		dashboard, err := c.dashboardService.GetAdminDashboard(ctx.Request.Context())
		if err != nil {
			c.logger.Error().Err(err).Msg("Failed to load admin dashboard")
			middleware.HandleAPIError(ctx, err)
			return
		}

		ctx.JSON(http.StatusOK, dto.APIResponse{Data: dashboard})
		return
	}

	userID := ctx.GetInt64("userID")
	dashboard, err := c.dashboardService.GetStudentDashboard(ctx.Request.Context(), userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: dashboard})
}
