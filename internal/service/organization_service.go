package service

import (
	"context"
	"errors"

	"github.com/Kenji-One/tikd-api/internal/dto"
	"github.com/Kenji-One/tikd-api/internal/repository"
)

var ErrOrganizationNotFound = errors.New("organization not found")

// OrganizationService defines the interface for organization operations
type OrganizationService interface {
	// GetByID retrieves an organization profile by ID
	GetByID(ctx context.Context, id string) (*dto.OrganizationResponse, error)
	// Update applies a partial profile update
	Update(ctx context.Context, id string, req *dto.UpdateOrganizationRequest) (*dto.OrganizationResponse, error)
	// ListMembers retrieves the organization's team members
	ListMembers(ctx context.Context, orgID string) ([]*dto.MemberResponse, error)
}

// organizationService implements OrganizationService
type organizationService struct {
	orgRepo repository.OrganizationRepository
}

// NewOrganizationService creates a new OrganizationService
func NewOrganizationService(orgRepo repository.OrganizationRepository) OrganizationService {
	return &organizationService{orgRepo: orgRepo}
}

// GetByID retrieves an organization profile by ID
func (s *organizationService) GetByID(ctx context.Context, id string) (*dto.OrganizationResponse, error) {
	org, err := s.orgRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if org == nil {
		return nil, ErrOrganizationNotFound
	}
	return dto.FromOrganization(org), nil
}

// Update applies a partial profile update
func (s *organizationService) Update(ctx context.Context, id string, req *dto.UpdateOrganizationRequest) (*dto.OrganizationResponse, error) {
	if valid, errMsg := req.Validate(); !valid {
		return nil, errors.New(errMsg)
	}

	org, err := s.orgRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if org == nil {
		return nil, ErrOrganizationNotFound
	}

	if req.Name != nil {
		org.Name = *req.Name
	}
	if req.LogoURL != nil {
		org.LogoURL = *req.LogoURL
	}
	if req.Website != nil {
		org.Website = *req.Website
	}
	if req.Bio != nil {
		org.Bio = *req.Bio
	}

	if err := s.orgRepo.Update(ctx, org); err != nil {
		return nil, err
	}

	return dto.FromOrganization(org), nil
}

// ListMembers retrieves the organization's team members
func (s *organizationService) ListMembers(ctx context.Context, orgID string) ([]*dto.MemberResponse, error) {
	org, err := s.orgRepo.GetByID(ctx, orgID)
	if err != nil {
		return nil, err
	}
	if org == nil {
		return nil, ErrOrganizationNotFound
	}

	members, err := s.orgRepo.ListMembers(ctx, orgID)
	if err != nil {
		return nil, err
	}

	responses := make([]*dto.MemberResponse, 0, len(members))
	for _, m := range members {
		responses = append(responses, dto.FromMember(m))
	}
	return responses, nil
}
