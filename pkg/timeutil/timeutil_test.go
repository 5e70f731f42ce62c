package timeutil

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestDays(t *testing.T) {
	tests := []struct {
		name  string
		start time.Time
		end   time.Time
		want  int
	}{
		{"single day", date(2025, time.March, 10), date(2025, time.March, 10), 1},
		{"one week", date(2025, time.March, 10), date(2025, time.March, 16), 7},
		{"across month boundary", date(2025, time.January, 30), date(2025, time.February, 2), 4},
		{"inverted range is swapped", date(2025, time.March, 16), date(2025, time.March, 10), 7},
		{"leap february", date(2024, time.February, 1), date(2024, time.February, 29), 29},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			days := Days(tt.start, tt.end)
			if len(days) != tt.want {
				t.Fatalf("expected %d days, got %d", tt.want, len(days))
			}
			for i := 1; i < len(days); i++ {
				if diff := days[i].Sub(days[i-1]); diff != 24*time.Hour {
					t.Errorf("day %d is %v after day %d, expected 24h", i, diff, i-1)
				}
			}
		})
	}
}

func TestMonths(t *testing.T) {
	months := Months(date(2025, time.January, 15), date(2025, time.April, 3))
	if len(months) != 4 {
		t.Fatalf("expected 4 months, got %d", len(months))
	}
	if months[0].Day() != 1 {
		t.Errorf("expected month start clamped to day 1, got %d", months[0].Day())
	}
	if months[3].Month() != time.April {
		t.Errorf("expected last month April, got %s", months[3].Month())
	}
}

func TestParseHHMM(t *testing.T) {
	tests := []struct {
		in      string
		hour    int
		minute  int
		wantErr bool
	}{
		{"00:00", 0, 0, false},
		{"23:59", 23, 59, false},
		{"09:05", 9, 5, false},
		{"24:00", 0, 0, true},
		{"12:60", 0, 0, true},
		{"9:05", 0, 0, true},
		{"1205", 0, 0, true},
		{"", 0, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			h, m, err := ParseHHMM(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error for %q", tt.in)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if h != tt.hour || m != tt.minute {
				t.Errorf("expected %02d:%02d, got %02d:%02d", tt.hour, tt.minute, h, m)
			}
		})
	}
}

func TestComposeStartEnd_SameDay(t *testing.T) {
	day := date(2025, time.June, 21)
	start, end, err := ComposeStartEnd(day, day, "19:00", "23:00")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if start.Hour() != 19 || end.Hour() != 23 {
		t.Errorf("unexpected clock times: start=%v end=%v", start, end)
	}
	if !SameDay(start, end) {
		t.Error("expected start and end on the same day")
	}
}

func TestComposeStartEnd_OvernightRollover(t *testing.T) {
	day := date(2025, time.June, 21)
	start, end, err := ComposeStartEnd(day, day, "23:30", "00:15")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !end.After(start) {
		t.Fatalf("expected end after start, got start=%v end=%v", start, end)
	}
	if end.Day() != 22 {
		t.Errorf("expected end rolled to the next calendar day, got day %d", end.Day())
	}
}

func TestComposeStartEnd_EqualInstantRollsOver(t *testing.T) {
	day := date(2025, time.June, 21)
	start, end, err := ComposeStartEnd(day, day, "20:00", "20:00")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !end.After(start) {
		t.Error("expected equal start/end clock to roll the end forward one day")
	}
}

func TestComposeStartEnd_InvalidClock(t *testing.T) {
	day := date(2025, time.June, 21)
	if _, _, err := ComposeStartEnd(day, day, "25:00", "23:00"); err == nil {
		t.Error("expected error for invalid start time")
	}
	if _, _, err := ComposeStartEnd(day, day, "20:00", "20:75"); err == nil {
		t.Error("expected error for invalid end time")
	}
}
