package domain

import (
	"errors"
	"fmt"
	"time"
)

// LinkStatus is the lifecycle state of a tracking link. Only Active links
// redirect; Paused and Archived links answer 404 and never count views.
type LinkStatus string

const (
	LinkStatusActive   LinkStatus = "Active"
	LinkStatusPaused   LinkStatus = "Paused"
	LinkStatusArchived LinkStatus = "Archived"
)

// DestinationKind is the type of resource a tracking link points at.
type DestinationKind string

const (
	DestinationEvent        DestinationKind = "event"
	DestinationOrganization DestinationKind = "organization"
)

var (
	ErrLinkNotRedirectable  = errors.New("tracking link is not redirectable")
	ErrMalformedDestination = errors.New("malformed tracking link destination")
)

// Destination identifies where a tracking link redirects.
type Destination struct {
	Kind     DestinationKind `json:"kind"`
	TargetID string          `json:"target_id"`
}

// Path returns the redirect target path, or ErrMalformedDestination when the
// destination cannot produce one.
func (d Destination) Path() (string, error) {
	if d.TargetID == "" {
		return "", ErrMalformedDestination
	}
	switch d.Kind {
	case DestinationEvent:
		return fmt.Sprintf("/events/%s/", d.TargetID), nil
	case DestinationOrganization:
		return fmt.Sprintf("/organizations/%s/", d.TargetID), nil
	}
	return "", ErrMalformedDestination
}

// TrackingLink is a short-code redirect URL attributed to a promoter,
// used to measure referral views and conversions.
type TrackingLink struct {
	ID          string      `json:"id"`
	Code        string      `json:"code"`
	OrgID       string      `json:"org_id"`
	MemberID    string      `json:"member_id,omitempty"`
	Label       string      `json:"label,omitempty"`
	Destination Destination `json:"destination"`
	Status      LinkStatus  `json:"status"`
	Views       int64       `json:"views"`
	Conversions int64       `json:"conversions"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}

// RedirectPath validates that the link may serve a redirect and returns the
// destination path. Non-active links and malformed destinations refuse.
func (l *TrackingLink) RedirectPath() (string, error) {
	if l.Status != LinkStatusActive {
		return "", ErrLinkNotRedirectable
	}
	return l.Destination.Path()
}
