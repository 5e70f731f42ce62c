package repository

import (
	"context"

	"github.com/Kenji-One/tikd-api/internal/domain"
)

// EventRepository defines the interface for event data access
type EventRepository interface {
	// Create creates a new event
	Create(ctx context.Context, event *domain.Event) error
	// GetByID retrieves an event by ID
	GetByID(ctx context.Context, id string) (*domain.Event, error)
	// List retrieves events for an organization with optional status filter
	List(ctx context.Context, orgID string, status string, sortBy string) ([]*domain.Event, error)
	// Update updates an event
	Update(ctx context.Context, event *domain.Event) error
	// UpdateStatus transitions an event's visibility state
	UpdateStatus(ctx context.Context, id string, status domain.EventStatus) error
	// SoftDelete soft deletes an event
	SoftDelete(ctx context.Context, id string) error
}
