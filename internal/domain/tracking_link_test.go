package domain

import (
	"errors"
	"testing"
)

func TestDestination_Path(t *testing.T) {
	tests := []struct {
		name    string
		dest    Destination
		want    string
		wantErr bool
	}{
		{"event", Destination{Kind: DestinationEvent, TargetID: "ev-1"}, "/events/ev-1/", false},
		{"organization", Destination{Kind: DestinationOrganization, TargetID: "org-1"}, "/organizations/org-1/", false},
		{"missing target", Destination{Kind: DestinationEvent}, "", true},
		{"unknown kind", Destination{Kind: "venue", TargetID: "v-1"}, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.dest.Path()
			if tt.wantErr {
				if !errors.Is(err, ErrMalformedDestination) {
					t.Fatalf("expected ErrMalformedDestination, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Path() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTrackingLink_RedirectPath(t *testing.T) {
	dest := Destination{Kind: DestinationEvent, TargetID: "ev-9"}

	tests := []struct {
		name    string
		link    TrackingLink
		wantErr error
	}{
		{"active link redirects", TrackingLink{Status: LinkStatusActive, Destination: dest}, nil},
		{"paused link refuses", TrackingLink{Status: LinkStatusPaused, Destination: dest}, ErrLinkNotRedirectable},
		{"archived link refuses", TrackingLink{Status: LinkStatusArchived, Destination: dest}, ErrLinkNotRedirectable},
		{"active with bad destination", TrackingLink{Status: LinkStatusActive}, ErrMalformedDestination},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path, err := tt.link.RedirectPath()
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if path != "/events/ev-9/" {
				t.Errorf("path = %q", path)
			}
		})
	}
}
