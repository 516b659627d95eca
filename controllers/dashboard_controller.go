package controllers

import (
	"net/http"

	"github.com/r-4-e/SwasthAI/middlewares"
	"github.com/r-4-e/SwasthAI/services"

	"github.com/gin-gonic/gin"
)

type DashboardController struct {
	dashboards *services.DashboardService
}

func NewDashboardController(dashboards *services.DashboardService) *DashboardController {
	return &DashboardController{dashboards: dashboards}
}

// GetDashboard returns the daily aggregate, the day's entries and recent
// weight history for one calendar date.
func (dc *DashboardController) GetDashboard(c *gin.Context) {
	id, _ := middlewares.CurrentIdentity(c)
	date := c.Param("date")

	data, err := dc.dashboards.Dashboard(id.ID, date)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch dashboard data"})
		return
	}
	c.JSON(http.StatusOK, data)
}
