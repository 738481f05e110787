package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/krupasawant/SoleSense/internal/service"
	"github.com/krupasawant/SoleSense/internal/utils"
)

// DashboardHandler serves the aggregated dashboard view.
type DashboardHandler struct {
	dashboardService *service.DashboardService
}

// NewDashboardHandler constructs a DashboardHandler.
func NewDashboardHandler(dashboardService *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// Summary handles GET /v1/admin/dashboard/summary. Always 200: sections whose
// read failed come back empty, the page renders what it can.
func (h *DashboardHandler) Summary(c *gin.Context) {
	summary := h.dashboardService.Summary(c.Request.Context())
	utils.Success(c, 200, "Dashboard summary", summary)
}
