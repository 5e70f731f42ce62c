package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Kenji-One/tikd-api/internal/domain"
	"github.com/Kenji-One/tikd-api/internal/dto"
	"github.com/Kenji-One/tikd-api/internal/service"
	"github.com/Kenji-One/tikd-api/pkg/response"
	"github.com/Kenji-One/tikd-api/pkg/telemetry"
)

// TrackingLinkHandler handles tracking-link HTTP requests, including the
// public short-code redirect.
type TrackingLinkHandler struct {
	linkService service.TrackingLinkService
	redirects   *telemetry.Counter
	refused     *telemetry.Counter
}

// NewTrackingLinkHandler creates a new TrackingLinkHandler
func NewTrackingLinkHandler(linkService service.TrackingLinkService) *TrackingLinkHandler {
	redirects, _ := telemetry.NewCounter(telemetry.MetricOpts{
		Name:        "tracking_link_redirects_total",
		Description: "Tracking link redirects served",
	})
	refused, _ := telemetry.NewCounter(telemetry.MetricOpts{
		Name:        "tracking_link_refusals_total",
		Description: "Tracking link lookups refused with 404",
	})
	return &TrackingLinkHandler{
		linkService: linkService,
		redirects:   redirects,
		refused:     refused,
	}
}

// Create handles tracking-link creation
// POST /api/v1/tracking-links
func (h *TrackingLinkHandler) Create(c *gin.Context) {
	var req dto.CreateTrackingLinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.BadRequest(err.Error()))
		return
	}

	result, err := h.linkService.Create(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, domain.ErrMalformedDestination) {
			c.JSON(http.StatusBadRequest, response.Error(response.ErrCodeValidationFailed, "Invalid destination"))
			return
		}
		c.JSON(http.StatusInternalServerError, response.InternalError(err.Error()))
		return
	}

	c.JSON(http.StatusCreated, response.Success(result))
}

// List handles retrieving an organization's tracking links
// GET /api/v1/tracking-links
func (h *TrackingLinkHandler) List(c *gin.Context) {
	var query dto.ListTrackingLinksQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, response.BadRequest(err.Error()))
		return
	}
	if query.OrgID == "" {
		c.JSON(http.StatusBadRequest, response.BadRequest("orgId is required"))
		return
	}

	result, err := h.linkService.List(c.Request.Context(), &query)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.InternalError(err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.Success(result))
}

// MemberStats handles the per-member aggregation
// GET /api/v1/organizations/:id/tracking-links/members
func (h *TrackingLinkHandler) MemberStats(c *gin.Context) {
	orgID := c.Param("id")
	if orgID == "" {
		c.JSON(http.StatusBadRequest, response.BadRequest("Organization ID is required"))
		return
	}

	result, err := h.linkService.MemberStats(c.Request.Context(), orgID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.InternalError(err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.Success(result))
}

// Redirect handles the public short-code redirect. Missing, paused, archived
// and malformed links all answer a plain 404; only a served redirect counts
// a view.
// GET /t/:code
func (h *TrackingLinkHandler) Redirect(c *gin.Context) {
	ctx := c.Request.Context()

	path, err := h.linkService.Resolve(ctx, c.Param("code"))
	if err != nil {
		h.refused.Inc(ctx)
		switch {
		case errors.Is(err, service.ErrTrackingLinkNotFound),
			errors.Is(err, domain.ErrLinkNotRedirectable),
			errors.Is(err, domain.ErrMalformedDestination):
			c.JSON(http.StatusNotFound, response.Error(response.ErrCodeLinkInactive, "Link not found"))
		default:
			c.JSON(http.StatusInternalServerError, response.InternalError(err.Error()))
		}
		return
	}

	h.redirects.Inc(ctx)
	c.Redirect(http.StatusFound, path)
}
