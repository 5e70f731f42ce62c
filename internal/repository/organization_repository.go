package repository

import (
	"context"

	"github.com/Kenji-One/tikd-api/internal/domain"
)

// OrganizationRepository defines the interface for organization data access
type OrganizationRepository interface {
	// Create creates a new organization
	Create(ctx context.Context, org *domain.Organization) error
	// GetByID retrieves an organization by ID
	GetByID(ctx context.Context, id string) (*domain.Organization, error)
	// GetBySlug retrieves an organization by slug
	GetBySlug(ctx context.Context, slug string) (*domain.Organization, error)
	// Update updates an organization profile
	Update(ctx context.Context, org *domain.Organization) error
	// ListMembers retrieves the organization's team members
	ListMembers(ctx context.Context, orgID string) ([]*domain.Member, error)
	// ExistsBySlug checks if an organization exists with the given slug
	ExistsBySlug(ctx context.Context, slug string) (bool, error)
}
