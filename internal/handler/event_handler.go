package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Kenji-One/tikd-api/internal/dto"
	"github.com/Kenji-One/tikd-api/internal/service"
	"github.com/Kenji-One/tikd-api/pkg/middleware"
	"github.com/Kenji-One/tikd-api/pkg/response"
)

// EventHandler handles event management HTTP requests
type EventHandler struct {
	eventService service.EventService
}

// NewEventHandler creates a new EventHandler
func NewEventHandler(eventService service.EventService) *EventHandler {
	return &EventHandler{eventService: eventService}
}

// Create handles event creation
// POST /api/v1/events
func (h *EventHandler) Create(c *gin.Context) {
	var req dto.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.BadRequest(err.Error()))
		return
	}

	orgID := c.GetString(middleware.ContextKeyOrgID)
	if orgID == "" {
		c.JSON(http.StatusForbidden, response.Error(response.ErrCodeForbidden, "No organization in token"))
		return
	}

	result, err := h.eventService.Create(c.Request.Context(), orgID, &req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidEventForm) {
			c.JSON(http.StatusBadRequest, response.Error(response.ErrCodeValidationFailed, err.Error()))
			return
		}
		c.JSON(http.StatusInternalServerError, response.InternalError(err.Error()))
		return
	}

	c.JSON(http.StatusCreated, response.Success(result))
}

// GetByID handles retrieving an event by ID
// GET /api/v1/events/:id
func (h *EventHandler) GetByID(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, response.BadRequest("Event ID is required"))
		return
	}

	result, err := h.eventService.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrEventNotFound) {
			c.JSON(http.StatusNotFound, response.NotFound("Event not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, response.InternalError(err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.Success(result))
}

// List handles retrieving events
// GET /api/v1/events
func (h *EventHandler) List(c *gin.Context) {
	var query dto.ListEventsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, response.BadRequest(err.Error()))
		return
	}
	if query.OrgID == "" {
		query.OrgID = c.GetString(middleware.ContextKeyOrgID)
	}
	if query.OrgID == "" {
		c.JSON(http.StatusBadRequest, response.BadRequest("orgId is required"))
		return
	}

	result, err := h.eventService.List(c.Request.Context(), &query)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.InternalError(err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.Success(result))
}

// Update handles event update
// PATCH /api/v1/events/:id
func (h *EventHandler) Update(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, response.BadRequest("Event ID is required"))
		return
	}

	var req dto.UpdateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.BadRequest(err.Error()))
		return
	}

	result, err := h.eventService.Update(c.Request.Context(), id, &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEventNotFound):
			c.JSON(http.StatusNotFound, response.NotFound("Event not found"))
		case errors.Is(err, service.ErrInvalidEventForm):
			c.JSON(http.StatusBadRequest, response.Error(response.ErrCodeValidationFailed, err.Error()))
		default:
			c.JSON(http.StatusInternalServerError, response.InternalError(err.Error()))
		}
		return
	}

	c.JSON(http.StatusOK, response.Success(result))
}

// Publish handles publishing a draft event
// POST /api/v1/events/:id/publish
func (h *EventHandler) Publish(c *gin.Context) {
	h.transition(c, h.eventService.Publish, "Event published")
}

// Unpublish handles reverting a published event to draft
// POST /api/v1/events/:id/unpublish
func (h *EventHandler) Unpublish(c *gin.Context) {
	h.transition(c, h.eventService.Unpublish, "Event unpublished")
}

// Delete handles event soft deletion
// DELETE /api/v1/events/:id
func (h *EventHandler) Delete(c *gin.Context) {
	h.transition(c, h.eventService.Delete, "Event deleted")
}

// transition runs one of the id-only event operations and renders the shared
// success/error shape.
func (h *EventHandler) transition(c *gin.Context, op func(ctx context.Context, id string) error, message string) {
	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, response.BadRequest("Event ID is required"))
		return
	}

	if err := op(c.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrEventNotFound) {
			c.JSON(http.StatusNotFound, response.NotFound("Event not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, response.InternalError(err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.Success(gin.H{"message": message}))
}
