package repository

import (
	"context"

	"github.com/Kenji-One/tikd-api/internal/domain"
	"github.com/Kenji-One/tikd-api/internal/dto"
)

// TrackingLinkRepository defines the interface for tracking-link data access
type TrackingLinkRepository interface {
	// Create creates a new tracking link
	Create(ctx context.Context, link *domain.TrackingLink) error
	// GetByCode retrieves a tracking link by its short code
	GetByCode(ctx context.Context, code string) (*domain.TrackingLink, error)
	// List retrieves an organization's tracking links
	List(ctx context.Context, orgID string, status string, sortBy string) ([]*domain.TrackingLink, error)
	// MemberStats aggregates link performance per team member
	MemberStats(ctx context.Context, orgID string) ([]*dto.MemberLinkStats, error)
	// IncrementViews bumps the persisted view counter for a link
	IncrementViews(ctx context.Context, id string, delta int64) error
	// ExistsByCode checks if a link exists with the given code
	ExistsByCode(ctx context.Context, code string) (bool, error)
}
