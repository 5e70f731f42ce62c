package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/Kenji-One/tikd-api/internal/domain"
	"github.com/Kenji-One/tikd-api/internal/dto"
	"github.com/Kenji-One/tikd-api/internal/repository"
	"github.com/Kenji-One/tikd-api/pkg/timeutil"
)

var (
	ErrEventNotFound    = errors.New("event not found")
	ErrInvalidEventForm = errors.New("invalid event form")
)

const dayFormat = "2006-01-02"

// EventService defines the interface for event management operations
type EventService interface {
	// Create creates a new draft event from the creation form
	Create(ctx context.Context, orgID string, req *dto.CreateEventRequest) (*dto.EventResponse, error)
	// GetByID retrieves an event by ID
	GetByID(ctx context.Context, id string) (*dto.EventResponse, error)
	// List retrieves events for an organization
	List(ctx context.Context, query *dto.ListEventsQuery) ([]*dto.EventResponse, error)
	// Update re-derives and persists the editable event fields
	Update(ctx context.Context, id string, req *dto.UpdateEventRequest) (*dto.EventResponse, error)
	// Publish makes a draft event publicly visible
	Publish(ctx context.Context, id string) error
	// Unpublish reverts a published event to draft
	Unpublish(ctx context.Context, id string) error
	// Delete soft deletes an event
	Delete(ctx context.Context, id string) error
}

// eventService implements EventService
type eventService struct {
	eventRepo repository.EventRepository
}

// NewEventService creates a new EventService
func NewEventService(eventRepo repository.EventRepository) EventService {
	return &eventService{eventRepo: eventRepo}
}

// Create creates a new draft event from the creation form. Date, EndDate and
// the location string are derived server-side; the request's status field is
// ignored and the event always starts as draft.
func (s *eventService) Create(ctx context.Context, orgID string, req *dto.CreateEventRequest) (*dto.EventResponse, error) {
	start, end, err := composeEventDates(req.Days, req.StartTime, req.EndTime)
	if err != nil {
		return nil, err
	}

	loc := req.Location.Normalize()
	if err := loc.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidEventForm, err)
	}

	now := time.Now()
	event := &domain.Event{
		ID:         uuid.New().String(),
		OrgID:      orgID,
		Title:      req.Title,
		Date:       start,
		EndDate:    end,
		Location:   loc.Display(),
		LocSpec:    loc,
		MinimumAge: req.MinimumAge,
		Categories: req.Categories,
		Artists:    req.Artists,
		Status:     domain.EventStatusDraft,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := s.eventRepo.Create(ctx, event); err != nil {
		return nil, err
	}

	return dto.FromEvent(event), nil
}

// GetByID retrieves an event by ID
func (s *eventService) GetByID(ctx context.Context, id string) (*dto.EventResponse, error) {
	event, err := s.eventRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if event == nil {
		return nil, ErrEventNotFound
	}
	return dto.FromEvent(event), nil
}

// List retrieves events for an organization
func (s *eventService) List(ctx context.Context, query *dto.ListEventsQuery) ([]*dto.EventResponse, error) {
	events, err := s.eventRepo.List(ctx, query.OrgID, query.Status, query.SortBy)
	if err != nil {
		return nil, err
	}

	responses := make([]*dto.EventResponse, 0, len(events))
	for _, e := range events {
		responses = append(responses, dto.FromEvent(e))
	}
	return responses, nil
}

// Update re-derives and persists the editable event fields. Status is not
// touched here; publish and unpublish are explicit transitions.
func (s *eventService) Update(ctx context.Context, id string, req *dto.UpdateEventRequest) (*dto.EventResponse, error) {
	event, err := s.eventRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if event == nil {
		return nil, ErrEventNotFound
	}

	if req.Title != nil {
		event.Title = *req.Title
	}
	if req.MinimumAge != nil {
		event.MinimumAge = *req.MinimumAge
	}
	if req.Categories != nil {
		event.Categories = *req.Categories
	}
	if req.Artists != nil {
		event.Artists = *req.Artists
	}

	if req.Location != nil {
		loc := req.Location.Normalize()
		if err := loc.Validate(); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidEventForm, err)
		}
		event.LocSpec = loc
		event.Location = loc.Display()
	}

	// Any change to the day range or clock times re-derives both instants.
	if req.Days != nil || req.StartTime != nil || req.EndTime != nil {
		days := dto.DayRange{
			Start: event.Date.Format(dayFormat),
			End:   event.EndDate.Format(dayFormat),
		}
		startTime := event.Date.Format("15:04")
		endTime := event.EndDate.Format("15:04")

		if req.Days != nil {
			days = *req.Days
		}
		if req.StartTime != nil {
			startTime = *req.StartTime
		}
		if req.EndTime != nil {
			endTime = *req.EndTime
		}

		start, end, err := composeEventDates(days, startTime, endTime)
		if err != nil {
			return nil, err
		}
		event.Date = start
		event.EndDate = end
	}

	if err := s.eventRepo.Update(ctx, event); err != nil {
		return nil, err
	}

	return dto.FromEvent(event), nil
}

// Publish makes a draft event publicly visible
func (s *eventService) Publish(ctx context.Context, id string) error {
	return s.setStatus(ctx, id, domain.EventStatusPublished)
}

// Unpublish reverts a published event to draft
func (s *eventService) Unpublish(ctx context.Context, id string) error {
	return s.setStatus(ctx, id, domain.EventStatusDraft)
}

func (s *eventService) setStatus(ctx context.Context, id string, status domain.EventStatus) error {
	event, err := s.eventRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if event == nil {
		return ErrEventNotFound
	}
	return s.eventRepo.UpdateStatus(ctx, id, status)
}

// Delete soft deletes an event
func (s *eventService) Delete(ctx context.Context, id string) error {
	event, err := s.eventRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if event == nil {
		return ErrEventNotFound
	}
	return s.eventRepo.SoftDelete(ctx, id)
}

// composeEventDates turns the form's day range and clock strings into the
// event's concrete start and end instants.
func composeEventDates(days dto.DayRange, startTime, endTime string) (time.Time, time.Time, error) {
	day, err := time.ParseInLocation(dayFormat, days.Start, time.Local)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: bad start day %q", ErrInvalidEventForm, days.Start)
	}

	endDay := time.Time{}
	if days.End != "" {
		endDay, err = time.ParseInLocation(dayFormat, days.End, time.Local)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("%w: bad end day %q", ErrInvalidEventForm, days.End)
		}
	}

	start, end, err := timeutil.ComposeStartEnd(day, endDay, startTime, endTime)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: %v", ErrInvalidEventForm, err)
	}
	return start, end, nil
}
