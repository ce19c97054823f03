package api

import (
	"net/http"

	resdto "machine-rental/internal/handler/dto/response"
	"machine-rental/internal/handler/middleware"
	"machine-rental/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type DashboardHandler struct {
	dashboardQueries queries.DashboardQueries
}

func NewDashboardHandler(dashboardQueries queries.DashboardQueries) *DashboardHandler {
	return &DashboardHandler{dashboardQueries: dashboardQueries}
}

// @Summary Owner dashboard
// @Description Fleet totals, six-month revenue, status mix and utilization ranking
// @Tags owner-dashboard
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.DashboardResponse
// @Router /owner/dashboard [get]
func (h *DashboardHandler) Get(c *gin.Context) {
	ownerID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	view, err := h.dashboardQueries.GetOwnerDashboard(c.Request.Context(), ownerID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromDashboardView(view))
}
