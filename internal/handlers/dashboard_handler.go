package handlers

import (
	"net/http"

	"github.com/kiranvs080988/Boutique1/internal/services"

	"github.com/gin-gonic/gin"
)

type DashboardHandler struct {
	dashboardService services.DashboardService
}

func NewDashboardHandler(dashboardService services.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

func (h *DashboardHandler) GetSummary(c *gin.Context) {
	stats, err := h.dashboardService.Summary()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (h *DashboardHandler) GetRevenueMetrics(c *gin.Context) {
	metrics, err := h.dashboardService.RevenueMetrics()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, metrics)
}

func (h *DashboardHandler) GetOrderMetrics(c *gin.Context) {
	metrics, err := h.dashboardService.OrderMetrics()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, metrics)
}

func (h *DashboardHandler) GetAlerts(c *gin.Context) {
	alerts, err := h.dashboardService.Alerts()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, alerts)
}

func (h *DashboardHandler) GetRecentActivity(c *gin.Context) {
	activity, err := h.dashboardService.RecentActivity()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, activity)
}
