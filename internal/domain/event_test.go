package domain

import "testing"

func TestLocationSpec_Display(t *testing.T) {
	tests := []struct {
		name string
		loc  LocationSpec
		want string
	}{
		{
			"specific with name and address",
			LocationSpec{Mode: LocationSpecific, Name: "The Venue", Address: "123 Main St"},
			"The Venue · 123 Main St",
		},
		{
			"specific with name only",
			LocationSpec{Mode: LocationSpecific, Name: "The Venue"},
			"The Venue",
		},
		{
			"specific without name falls back to city",
			LocationSpec{Mode: LocationSpecific, Address: "123 Main St", City: "Austin"},
			"Austin",
		},
		{
			"specific with everything empty",
			LocationSpec{Mode: LocationSpecific},
			"",
		},
		{"city", LocationSpec{Mode: LocationCity, City: "Berlin"}, "Berlin"},
		{"other", LocationSpec{Mode: LocationOther, Text: "On the river boat"}, "On the river boat"},
		{"tbd", LocationSpec{Mode: LocationTBD}, "TBD"},
		{"tba", LocationSpec{Mode: LocationTBA}, "TBA"},
		{"secret", LocationSpec{Mode: LocationSecret}, "Secret location"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.loc.Display(); got != tt.want {
				t.Errorf("Display() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestLocationSpec_NormalizeClearsInactiveFields(t *testing.T) {
	// Mode switched to city after the specific fields were filled in.
	loc := LocationSpec{
		Mode:    LocationCity,
		Name:    "Stale Venue",
		Address: "Stale Address",
		City:    "Paris",
		Text:    "stale",
	}
	got := loc.Normalize()
	if got.Name != "" || got.Address != "" || got.Text != "" {
		t.Errorf("expected inactive fields cleared, got %+v", got)
	}
	if got.City != "Paris" {
		t.Errorf("expected active field preserved, got %q", got.City)
	}

	// TBD carries no fields at all.
	got = LocationSpec{Mode: LocationTBD, Name: "x", City: "y", Text: "z"}.Normalize()
	if got != (LocationSpec{Mode: LocationTBD}) {
		t.Errorf("expected bare TBD spec, got %+v", got)
	}
}

func TestLocationSpec_Validate(t *testing.T) {
	tests := []struct {
		name    string
		loc     LocationSpec
		wantErr bool
	}{
		{"valid specific", LocationSpec{Mode: LocationSpecific, Name: "Venue"}, false},
		{"empty specific", LocationSpec{Mode: LocationSpecific}, true},
		{"valid city", LocationSpec{Mode: LocationCity, City: "Oslo"}, false},
		{"empty city", LocationSpec{Mode: LocationCity}, true},
		{"valid other", LocationSpec{Mode: LocationOther, Text: "somewhere"}, false},
		{"empty other", LocationSpec{Mode: LocationOther}, true},
		{"tbd needs nothing", LocationSpec{Mode: LocationTBD}, false},
		{"unknown mode", LocationSpec{Mode: "galaxy"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.loc.Validate()
			if tt.wantErr && err == nil {
				t.Error("expected error, got nil")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}
