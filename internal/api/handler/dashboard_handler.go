package handler

import (
	"Sheetcast/internal/pkg/response"
	"Sheetcast/internal/pkg/util"
	"Sheetcast/internal/service"

	"github.com/gin-gonic/gin"
)

type DashboardHandler struct {
	dashboardSvc service.DashboardService
	activitySvc  service.ActivityService
}

func NewDashboardHandler(dashboardSvc service.DashboardService, activitySvc service.ActivityService) *DashboardHandler {
	return &DashboardHandler{
		dashboardSvc: dashboardSvc,
		activitySvc:  activitySvc,
	}
}

func (s *DashboardHandler) GetStats(c *gin.Context) {
	stats, err := s.dashboardSvc.GetStats(c.Request.Context(), currentUserID(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, stats)
}

func (s *DashboardHandler) ListActivities(c *gin.Context) {
	limit := util.ParseLimit(c.Query("limit"), service.DefaultActivityLimit)
	activities, err := s.activitySvc.ListActivities(c.Request.Context(), currentUserID(c), limit)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, activities)
}
