package domain

import (
	"errors"
	"fmt"
	"time"
)

// EventStatus is the visibility state of an event. New events always start
// as draft; publishing is an explicit transition.
type EventStatus string

const (
	EventStatusDraft     EventStatus = "draft"
	EventStatusPublished EventStatus = "published"
)

// LocationMode selects which location fields of an event are meaningful.
type LocationMode string

const (
	LocationSpecific LocationMode = "specific"
	LocationCity     LocationMode = "city"
	LocationTBD      LocationMode = "tbd"
	LocationTBA      LocationMode = "tba"
	LocationSecret   LocationMode = "secret"
	LocationOther    LocationMode = "other"
)

var ErrInvalidLocationMode = errors.New("invalid location mode")

// LocationSpec is the tagged union behind an event's location. Only the
// fields belonging to the active mode are meaningful; Normalize clears the
// rest so stale cross-mode data never leaks into the derived string.
type LocationSpec struct {
	Mode    LocationMode `json:"mode"`
	Name    string       `json:"name,omitempty"`
	Address string       `json:"address,omitempty"`
	City    string       `json:"city,omitempty"`
	Text    string       `json:"text,omitempty"`
}

// Validate checks the mode and its required fields.
func (l LocationSpec) Validate() error {
	switch l.Mode {
	case LocationSpecific:
		if l.Name == "" && l.Address == "" && l.City == "" {
			return errors.New("specific location requires a venue name, address or city")
		}
	case LocationCity:
		if l.City == "" {
			return errors.New("city location requires a city")
		}
	case LocationOther:
		if l.Text == "" {
			return errors.New("other location requires a description")
		}
	case LocationTBD, LocationTBA, LocationSecret:
		// No fields required.
	default:
		return fmt.Errorf("%w: %q", ErrInvalidLocationMode, l.Mode)
	}
	return nil
}

// Normalize returns a copy with every field outside the active mode cleared.
func (l LocationSpec) Normalize() LocationSpec {
	out := LocationSpec{Mode: l.Mode}
	switch l.Mode {
	case LocationSpecific:
		out.Name, out.Address, out.City = l.Name, l.Address, l.City
	case LocationCity:
		out.City = l.City
	case LocationOther:
		out.Text = l.Text
	}
	return out
}

// Display derives the location string shown to attendees. Specific venues
// render as "Name · Address", falling back to the city when the name is
// missing and to an empty string when everything is.
func (l LocationSpec) Display() string {
	switch l.Mode {
	case LocationSpecific:
		if l.Name != "" {
			if l.Address != "" {
				return l.Name + " · " + l.Address
			}
			return l.Name
		}
		return l.City
	case LocationCity:
		return l.City
	case LocationOther:
		return l.Text
	case LocationTBD:
		return "TBD"
	case LocationTBA:
		return "TBA"
	case LocationSecret:
		return "Secret location"
	}
	return ""
}

// Event is a published or draft event owned by an organization. Date and
// EndDate are derived from the form's day range and clock times, never
// supplied directly by clients.
type Event struct {
	ID         string       `json:"id"`
	OrgID      string       `json:"org_id"`
	Title      string       `json:"title"`
	Date       time.Time    `json:"date"`
	EndDate    time.Time    `json:"end_date"`
	Location   string       `json:"location"`
	LocSpec    LocationSpec `json:"location_spec"`
	MinimumAge int          `json:"minimum_age"`
	Categories []string     `json:"categories,omitempty"`
	Artists    []string     `json:"artists,omitempty"`
	Status     EventStatus  `json:"status"`
	CreatedAt  time.Time    `json:"created_at"`
	UpdatedAt  time.Time    `json:"updated_at"`
}
