package controller

import (
	"learning_portal_backend/internal/service"
	"learning_portal_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type DashboardController struct {
	DashboardService *service.DashboardService
}

func NewDashboardController(dashboardService *service.DashboardService) *DashboardController {
	return &DashboardController{DashboardService: dashboardService}
}

// Stats godoc
// @Summary Dashboard counters for the caller's role
// @Description Students get enrollment and assignment counts, teachers get course,
// @Description assignment and submission counts, admins get platform totals.
// @Tags dashboard
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=object}
// @Router /api/dashboard/dashboard-stats [get]
func (c *DashboardController) Stats(ctx *gin.Context) {
	user := currentUser(ctx)
	if user == nil {
		return
	}
	stats, err := c.DashboardService.Stats(user)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, stats)
}
