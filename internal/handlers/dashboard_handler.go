package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"cadee/internal/models"
	"cadee/internal/services"
	"cadee/internal/summary"
)

// DashboardHandler handles the dashboard view-model request.
type DashboardHandler struct {
	dashboardService services.DashboardServicer
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(dashboardService services.DashboardServicer) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// GetDashboard returns the financial summary for the authenticated user.
// Anonymous callers get the empty view-model; no queries are issued for them.
// @Summary     Dashboard
// @Description Get the dashboard view-model: recent transactions, totals, limit percentages, and goal progress
// @Tags        dashboard
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} services.DashboardData "Dashboard view-model"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      / [get]
func (h *DashboardHandler) GetDashboard(c *gin.Context) {
	userID, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusOK, services.DashboardData{
			Folders: []models.Category{},
			Summary: summary.Empty(),
		})
		return
	}

	data, err := h.dashboardService.GetDashboard(userID.(string), time.Now())
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, data)
}
