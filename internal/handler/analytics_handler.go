package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Kenji-One/tikd-api/internal/dto"
	"github.com/Kenji-One/tikd-api/internal/service"
	"github.com/Kenji-One/tikd-api/pkg/response"
)

// AnalyticsHandler handles the dashboard summary endpoint
type AnalyticsHandler struct {
	analyticsService service.AnalyticsService
}

// NewAnalyticsHandler creates a new AnalyticsHandler
func NewAnalyticsHandler(analyticsService service.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{analyticsService: analyticsService}
}

// Summary handles the analytics summary for an organization
// GET /api/v1/organizations/:id/analytics/summary
func (h *AnalyticsHandler) Summary(c *gin.Context) {
	orgID := c.Param("id")
	if orgID == "" {
		c.JSON(http.StatusBadRequest, response.BadRequest("Organization ID is required"))
		return
	}

	var query dto.SummaryQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, response.BadRequest(err.Error()))
		return
	}

	result, err := h.analyticsService.Summary(c.Request.Context(), orgID, &query)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrOrganizationNotFound):
			c.JSON(http.StatusNotFound, response.NotFound("Organization not found"))
		case errors.Is(err, service.ErrInvalidDateRange):
			c.JSON(http.StatusBadRequest, response.BadRequest(err.Error()))
		default:
			c.JSON(http.StatusInternalServerError, response.InternalError(err.Error()))
		}
		return
	}

	c.JSON(http.StatusOK, response.Success(result))
}
