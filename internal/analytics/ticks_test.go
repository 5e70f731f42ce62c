package analytics

import (
	"math"
	"testing"
)

func TestNiceTicks_Invariants(t *testing.T) {
	tests := []struct {
		name  string
		max   float64
		count int
	}{
		{"small max", 3, 5},
		{"single digit", 7, 5},
		{"tens", 42, 6},
		{"hundreds", 875, 6},
		{"thousands", 12345, 8},
		{"fractional max", 0.73, 5},
		{"exact step multiple", 100, 5},
		{"count below minimum clamps to 2", 50, 1},
		{"count above maximum clamps to 8", 50, 20},
		{"zero max treated as one", 0, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ticks := NiceTicks(tt.max, tt.count)
			if len(ticks) < 2 {
				t.Fatalf("expected at least 2 ticks, got %v", ticks)
			}
			if len(ticks) > 8 {
				t.Fatalf("expected at most 8 ticks, got %d", len(ticks))
			}
			if ticks[0] != 0 {
				t.Errorf("first tick = %v, want 0", ticks[0])
			}
			last := ticks[len(ticks)-1]
			if tt.max > 0 && last < tt.max {
				t.Errorf("last tick %v is below max %v", last, tt.max)
			}
			for i := 1; i < len(ticks); i++ {
				if ticks[i] <= ticks[i-1] {
					t.Errorf("ticks not strictly increasing at %d: %v", i, ticks)
				}
			}
		})
	}
}

func TestNiceTicks_StepLadder(t *testing.T) {
	tests := []struct {
		max  float64
		top  float64
	}{
		{1.0, 1.0},   // norm 1.0 → step 0.2
		{1.1, 1.2},   // norm 1.1 → step 0.2
		{2.3, 2.5},   // norm 2.3 → step 0.5
		{5.5, 6.0},   // norm 5.5 → step 1
		{9.0, 10.0},  // norm 9.0 → step 2
		{110, 120},   // norm 1.1 → step 20
		{875, 1000},  // norm 8.75 → step 200
	}

	for _, tt := range tests {
		ticks := NiceTicks(tt.max, 5)
		last := ticks[len(ticks)-1]
		if math.Abs(last-tt.top) > 1e-9 {
			t.Errorf("NiceTicks(%v) top = %v, want %v", tt.max, last, tt.top)
		}
	}
}

func TestNiceTicks_SmallTopDeduplicates(t *testing.T) {
	// top=3 with 8 requested ticks produces rounded duplicates that must collapse.
	ticks := NiceTicks(3, 8)
	seen := make(map[float64]bool)
	for _, v := range ticks {
		if seen[v] {
			t.Fatalf("duplicate tick %v in %v", v, ticks)
		}
		seen[v] = true
	}
}
