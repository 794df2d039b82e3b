package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "carbontrack/internal/errors"
	"carbontrack/internal/services"
)

// AnalyticsHandler handles footprint analytics requests.
type AnalyticsHandler struct {
	analyticsService services.AnalyticsServicer
}

// NewAnalyticsHandler creates a new AnalyticsHandler.
func NewAnalyticsHandler(analyticsService services.AnalyticsServicer) *AnalyticsHandler {
	return &AnalyticsHandler{analyticsService: analyticsService}
}

// GetAnalytics handles the analytics summary endpoint
// @Summary     Footprint analytics
// @Description Get the total footprint, daily average, category breakdown, six-month trend, and efficiency metrics for a period
// @Tags        activities
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       period query string false "Lookback period: week, month, or year (default month)"
// @Success     200 {object} services.AnalyticsSummary "Analytics summary"
// @Failure     400 {object} ErrorResponse "Invalid period"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /activities/analytics [get]
func (h *AnalyticsHandler) GetAnalytics(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	period := c.DefaultQuery("period", "month")
	switch period {
	case "week", "month", "year":
	default:
		respondWithError(c, apperrors.ErrInvalidPeriod)
		return
	}

	summary, err := h.analyticsService.GetSummary(userID, period)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, summary)
}
