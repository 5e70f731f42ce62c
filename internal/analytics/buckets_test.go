package analytics

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestStepForRangeDays(t *testing.T) {
	tests := []struct {
		days int
		want int
	}{
		{1, 1},
		{31, 1},
		{32, 2},
		{62, 2},
		{63, 3},
		{365, 3},
	}

	for _, tt := range tests {
		if got := StepForRangeDays(tt.days); got != tt.want {
			t.Errorf("StepForRangeDays(%d) = %d, want %d", tt.days, got, tt.want)
		}
	}
}

func TestMonthlyBuckets(t *testing.T) {
	buckets := MonthlyBuckets(date(2025, time.January, 1), date(2025, time.December, 31))
	if len(buckets) != 12 {
		t.Fatalf("expected 12 monthly buckets, got %d", len(buckets))
	}
	if buckets[0].Label != "Jan" {
		t.Errorf("expected label Jan, got %s", buckets[0].Label)
	}
	for i, b := range buckets {
		if b.RepDate.Day() != 21 {
			t.Errorf("bucket %d: expected rep date on the 21st, got %d", i, b.RepDate.Day())
		}
		if b.Start.Day() != 1 {
			t.Errorf("bucket %d: expected start on day 1, got %d", i, b.Start.Day())
		}
	}
	if buckets[1].End.Day() != 28 {
		t.Errorf("expected February 2025 to end on the 28th, got %d", buckets[1].End.Day())
	}
}

func TestRangeBuckets_SingleDay(t *testing.T) {
	buckets := RangeBuckets(date(2025, time.March, 10), date(2025, time.March, 10))
	if len(buckets) != 1 {
		t.Fatalf("expected 1 bucket for a single-day range, got %d", len(buckets))
	}
	if buckets[0].Label != "Mon" {
		t.Errorf("expected weekday label, got %s", buckets[0].Label)
	}
}

func TestRangeBuckets_DailyLabels(t *testing.T) {
	tests := []struct {
		name  string
		start time.Time
		end   time.Time
		first string
	}{
		{"week or less uses weekday names", date(2025, time.March, 10), date(2025, time.March, 14), "Mon"},
		{"within one month uses day numbers", date(2025, time.March, 1), date(2025, time.March, 20), "1"},
		{"across months uses month-day", date(2025, time.March, 20), date(2025, time.April, 10), "Mar 20"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buckets := RangeBuckets(tt.start, tt.end)
			if buckets[0].Label != tt.first {
				t.Errorf("expected first label %q, got %q", tt.first, buckets[0].Label)
			}
		})
	}
}

func TestRangeBuckets_PartitionCoverage(t *testing.T) {
	tests := []struct {
		name  string
		start time.Time
		end   time.Time
	}{
		{"short daily range", date(2025, time.March, 1), date(2025, time.March, 14)},
		{"two-day step range", date(2025, time.March, 1), date(2025, time.April, 15)},
		{"three-day step range", date(2025, time.January, 1), date(2025, time.April, 30)},
		{"step does not divide range evenly", date(2025, time.January, 1), date(2025, time.March, 8)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buckets := RangeBuckets(tt.start, tt.end)
			if len(buckets) == 0 {
				t.Fatal("expected at least one bucket")
			}
			if !buckets[0].Start.Equal(tt.start) {
				t.Errorf("first bucket starts at %v, want %v", buckets[0].Start, tt.start)
			}
			if !buckets[len(buckets)-1].End.Equal(tt.end) {
				t.Errorf("last bucket ends at %v, want %v", buckets[len(buckets)-1].End, tt.end)
			}
			for i := 1; i < len(buckets); i++ {
				gap := buckets[i].Start.Sub(buckets[i-1].End)
				if gap != 24*time.Hour {
					t.Errorf("bucket %d starts %v after bucket %d ends, want exactly one day", i, gap, i-1)
				}
			}
			for i, b := range buckets {
				if b.End.Before(b.Start) {
					t.Errorf("bucket %d has end before start", i)
				}
			}
		})
	}
}

func TestBucketLabel(t *testing.T) {
	tests := []struct {
		name  string
		start time.Time
		end   time.Time
		want  string
	}{
		{"single day", date(2025, time.March, 2), date(2025, time.March, 2), "Mar 2"},
		{"same month", date(2025, time.March, 2), date(2025, time.March, 5), "Mar 2–5"},
		{"across months", date(2025, time.January, 30), date(2025, time.February, 2), "Jan 30–Feb 2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := bucketLabel(tt.start, tt.end); got != tt.want {
				t.Errorf("bucketLabel = %q, want %q", got, tt.want)
			}
		})
	}
}
