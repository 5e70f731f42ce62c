package dto

import (
	"time"

	"github.com/Kenji-One/tikd-api/internal/domain"
)

// OrganizationResponse is the public organization profile
type OrganizationResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Slug      string `json:"slug"`
	LogoURL   string `json:"logo_url,omitempty"`
	Website   string `json:"website,omitempty"`
	Bio       string `json:"bio,omitempty"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

// FromOrganization converts a domain Organization to its response shape
func FromOrganization(o *domain.Organization) *OrganizationResponse {
	return &OrganizationResponse{
		ID:        o.ID,
		Name:      o.Name,
		Slug:      o.Slug,
		LogoURL:   o.LogoURL,
		Website:   o.Website,
		Bio:       o.Bio,
		CreatedAt: o.CreatedAt.Format(time.RFC3339),
		UpdatedAt: o.UpdatedAt.Format(time.RFC3339),
	}
}

// UpdateOrganizationRequest is a partial profile update; nil fields are
// left untouched
type UpdateOrganizationRequest struct {
	Name    *string `json:"name,omitempty"`
	LogoURL *string `json:"logo_url,omitempty"`
	Website *string `json:"website,omitempty"`
	Bio     *string `json:"bio,omitempty"`
}

// Validate checks that at least one field is provided
func (r *UpdateOrganizationRequest) Validate() (bool, string) {
	if r.Name == nil && r.LogoURL == nil && r.Website == nil && r.Bio == nil {
		return false, "at least one field must be provided"
	}
	if r.Name != nil && *r.Name == "" {
		return false, "name cannot be empty"
	}
	return true, ""
}

// MemberResponse is one row of an organization's team list
type MemberResponse struct {
	ID    string `json:"_id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role,omitempty"`
}

// FromMember converts a domain Member to its response shape
func FromMember(m *domain.Member) *MemberResponse {
	return &MemberResponse{
		ID:    m.ID,
		Name:  m.Name,
		Email: m.Email,
		Role:  m.Role,
	}
}
