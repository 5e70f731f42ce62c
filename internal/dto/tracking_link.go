package dto

import (
	"time"

	"github.com/Kenji-One/tikd-api/internal/domain"
)

// ListTrackingLinksQuery filters and orders the tracking-link list
type ListTrackingLinksQuery struct {
	OrgID  string `form:"orgId"`
	Status string `form:"status"`
	SortBy string `form:"sortBy"` // views, conversions, created
}

// TrackingLinkResponse is one row of the tracking-link table
type TrackingLinkResponse struct {
	ID          string             `json:"id"`
	Code        string             `json:"code"`
	OrgID       string             `json:"org_id"`
	MemberID    string             `json:"member_id,omitempty"`
	Label       string             `json:"label,omitempty"`
	Destination domain.Destination `json:"destination"`
	Status      domain.LinkStatus  `json:"status"`
	Views       int64              `json:"views"`
	Conversions int64              `json:"conversions"`
	CreatedAt   string             `json:"created_at"`
}

// FromTrackingLink converts a domain TrackingLink to its response shape
func FromTrackingLink(l *domain.TrackingLink) *TrackingLinkResponse {
	return &TrackingLinkResponse{
		ID:          l.ID,
		Code:        l.Code,
		OrgID:       l.OrgID,
		MemberID:    l.MemberID,
		Label:       l.Label,
		Destination: l.Destination,
		Status:      l.Status,
		Views:       l.Views,
		Conversions: l.Conversions,
		CreatedAt:   l.CreatedAt.Format(time.RFC3339),
	}
}

// CreateTrackingLinkRequest creates a new short-code redirect
type CreateTrackingLinkRequest struct {
	OrgID       string             `json:"org_id" binding:"required"`
	MemberID    string             `json:"member_id,omitempty"`
	Label       string             `json:"label,omitempty"`
	Destination domain.Destination `json:"destination" binding:"required"`
}

// MemberLinkStats aggregates link performance per team member
type MemberLinkStats struct {
	MemberID    string `json:"member_id"`
	Name        string `json:"name"`
	Links       int    `json:"links"`
	Views       int64  `json:"views"`
	Conversions int64  `json:"conversions"`
}
