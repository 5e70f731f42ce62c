package analytics

import (
	"fmt"
	"time"

	"github.com/Kenji-One/tikd-api/pkg/timeutil"
)

// Bucket is a contiguous span of calendar days treated as one aggregation
// unit for chart display. Buckets partition their day range with no gaps or
// overlaps; the final bucket may be shorter than the step.
type Bucket struct {
	Start   time.Time `json:"start"`
	End     time.Time `json:"end"`
	Label   string    `json:"label"`
	RepDate time.Time `json:"rep_date"`
}

// monthlyAnchorDay is the representative day used for monthly buckets.
// A mid-month anchor avoids month-end edge cases in downstream date math.
const monthlyAnchorDay = 21

// StepForRangeDays returns the bucket width in days for an explicit range.
func StepForRangeDays(n int) int {
	switch {
	case n <= 31:
		return 1
	case n <= 62:
		return 2
	default:
		return 3
	}
}

// MonthlyBuckets produces one bucket per calendar month from start to end
// inclusive. Labels are short month names; the representative date is the
// 21st of each month.
func MonthlyBuckets(start, end time.Time) []Bucket {
	months := timeutil.Months(start, end)
	buckets := make([]Bucket, 0, len(months))
	for _, m := range months {
		lastDay := m.AddDate(0, 1, -1)
		buckets = append(buckets, Bucket{
			Start:   m,
			End:     lastDay,
			Label:   m.Format("Jan"),
			RepDate: time.Date(m.Year(), m.Month(), monthlyAnchorDay, 0, 0, 0, 0, m.Location()),
		})
	}
	return buckets
}

// RangeBuckets partitions an explicit date range. The step degenerates to
// daily buckets for short spans; longer spans are grouped into runs of
// StepForRangeDays days.
func RangeBuckets(start, end time.Time) []Bucket {
	days := timeutil.Days(start, end)
	step := StepForRangeDays(len(days))
	if step == 1 {
		return dailyBuckets(days)
	}

	buckets := make([]Bucket, 0, (len(days)+step-1)/step)
	for i := 0; i < len(days); i += step {
		j := i + step - 1
		if j >= len(days) {
			j = len(days) - 1
		}
		buckets = append(buckets, Bucket{
			Start:   days[i],
			End:     days[j],
			Label:   bucketLabel(days[i], days[j]),
			RepDate: days[i],
		})
	}
	return buckets
}

func dailyBuckets(days []time.Time) []Bucket {
	label := dailyLabelFunc(days)
	buckets := make([]Bucket, 0, len(days))
	for _, d := range days {
		buckets = append(buckets, Bucket{Start: d, End: d, Label: label(d), RepDate: d})
	}
	return buckets
}

// dailyLabelFunc picks the label policy for a daily range: weekday names for
// a week or less, bare day numbers inside a single month, "Jan 2" otherwise.
func dailyLabelFunc(days []time.Time) func(time.Time) string {
	if len(days) <= 7 {
		return func(d time.Time) string { return d.Format("Mon") }
	}
	first, last := days[0], days[len(days)-1]
	if first.Year() == last.Year() && first.Month() == last.Month() {
		return func(d time.Time) string { return fmt.Sprintf("%d", d.Day()) }
	}
	return func(d time.Time) string { return d.Format("Jan 2") }
}

func bucketLabel(start, end time.Time) string {
	if timeutil.SameDay(start, end) {
		return start.Format("Jan 2")
	}
	if start.Year() == end.Year() && start.Month() == end.Month() {
		return fmt.Sprintf("%s–%d", start.Format("Jan 2"), end.Day())
	}
	return fmt.Sprintf("%s–%s", start.Format("Jan 2"), end.Format("Jan 2"))
}

// Labels returns the display labels of the buckets, aligned by index.
func Labels(buckets []Bucket) []string {
	labels := make([]string, len(buckets))
	for i, b := range buckets {
		labels[i] = b.Label
	}
	return labels
}

// RepDates returns the representative dates of the buckets, aligned by index.
func RepDates(buckets []Bucket) []time.Time {
	dates := make([]time.Time, len(buckets))
	for i, b := range buckets {
		dates[i] = b.RepDate
	}
	return dates
}
