package dto

import (
	"time"

	"github.com/Kenji-One/tikd-api/internal/domain"
)

// DayRange is the selected calendar day span of an event, as "2006-01-02"
// strings. End may be empty for single-day events.
type DayRange struct {
	Start string `json:"start" binding:"required"`
	End   string `json:"end,omitempty"`
}

// CreateEventRequest carries the event-creation form. Date and EndDate are
// never accepted from clients: they are derived from Days plus the clock
// times, and Status is always forced to draft on create.
type CreateEventRequest struct {
	Title      string              `json:"title" binding:"required,min=3"`
	Days       DayRange            `json:"days" binding:"required"`
	StartTime  string              `json:"start_time" binding:"required"`
	EndTime    string              `json:"end_time" binding:"required"`
	MinimumAge int                 `json:"minimum_age" binding:"required,gte=0"`
	Location   domain.LocationSpec `json:"location" binding:"required"`
	Categories []string            `json:"categories,omitempty"`
	Artists    []string            `json:"artists,omitempty"`
	// Status is deliberately accepted and ignored; new events start as draft
	// no matter what the client sends.
	Status string `json:"status,omitempty"`
}

// UpdateEventRequest mirrors the creation form with optional fields
type UpdateEventRequest struct {
	Title      *string              `json:"title,omitempty"`
	Days       *DayRange            `json:"days,omitempty"`
	StartTime  *string              `json:"start_time,omitempty"`
	EndTime    *string              `json:"end_time,omitempty"`
	MinimumAge *int                 `json:"minimum_age,omitempty"`
	Location   *domain.LocationSpec `json:"location,omitempty"`
	Categories *[]string            `json:"categories,omitempty"`
	Artists    *[]string            `json:"artists,omitempty"`
}

// EventResponse is the public event shape
type EventResponse struct {
	ID         string              `json:"id"`
	OrgID      string              `json:"org_id"`
	Title      string              `json:"title"`
	Date       string              `json:"date"`
	EndDate    string              `json:"end_date"`
	Location   string              `json:"location"`
	LocSpec    domain.LocationSpec `json:"location_spec"`
	MinimumAge int                 `json:"minimum_age"`
	Categories []string            `json:"categories,omitempty"`
	Artists    []string            `json:"artists,omitempty"`
	Status     domain.EventStatus  `json:"status"`
	CreatedAt  string              `json:"created_at"`
	UpdatedAt  string              `json:"updated_at"`
}

// FromEvent converts a domain Event to its response shape
func FromEvent(e *domain.Event) *EventResponse {
	return &EventResponse{
		ID:         e.ID,
		OrgID:      e.OrgID,
		Title:      e.Title,
		Date:       e.Date.Format(time.RFC3339),
		EndDate:    e.EndDate.Format(time.RFC3339),
		Location:   e.Location,
		LocSpec:    e.LocSpec,
		MinimumAge: e.MinimumAge,
		Categories: e.Categories,
		Artists:    e.Artists,
		Status:     e.Status,
		CreatedAt:  e.CreatedAt.Format(time.RFC3339),
		UpdatedAt:  e.UpdatedAt.Format(time.RFC3339),
	}
}

// ListEventsQuery filters the event list
type ListEventsQuery struct {
	OrgID  string `form:"orgId"`
	Status string `form:"status"`
	SortBy string `form:"sortBy"`
}
