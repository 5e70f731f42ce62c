package analytics

import (
	"math"
	"time"

	"github.com/Kenji-One/tikd-api/pkg/timeutil"
)

// DailyPoint is a single day's value in a daily-granularity series.
type DailyPoint struct {
	Date  time.Time `json:"date"`
	Value float64   `json:"value"`
}

// Series is a daily-granularity time series ordered by date.
type Series []DailyPoint

// SumRange sums the values of all points whose date falls inside [from, to]
// inclusive, matching on calendar day.
func (s Series) SumRange(from, to time.Time) float64 {
	from, to = timeutil.ClampToDay(from), timeutil.ClampToDay(to)
	var sum float64
	for _, p := range s {
		d := timeutil.ClampToDay(p.Date)
		if !d.Before(from) && !d.After(to) {
			sum += p.Value
		}
	}
	return sum
}

// Rebucket maps a daily series into bucket-aligned values by summing the
// daily values covered by each bucket's window.
func Rebucket(s Series, buckets []Bucket) []float64 {
	values := make([]float64, len(buckets))
	for i, b := range buckets {
		values[i] = s.SumRange(b.Start, b.End)
	}
	return values
}

// MonthTotal pairs a month (any day within it identifies the month) with the
// aggregate value for that month.
type MonthTotal struct {
	Month time.Time
	Total float64
}

// DailyizeMonthly spreads monthly aggregate totals evenly across each
// month's days, then applies a smooth multiplicative wiggle so the daily
// line is not flat. The wiggle is seeded by point index, not absolute date:
// the same date can land on slightly different values under different range
// selections. That is acceptable for demo series, where visual plausibility
// matters more than cross-range value stability.
func DailyizeMonthly(months []MonthTotal) Series {
	var out Series
	i := 0
	for _, mt := range months {
		first := time.Date(mt.Month.Year(), mt.Month.Month(), 1, 0, 0, 0, 0, mt.Month.Location())
		days := timeutil.Days(first, first.AddDate(0, 1, -1))
		base := mt.Total / float64(len(days))
		for _, d := range days {
			out = append(out, DailyPoint{Date: d, Value: base * wiggle(i)})
			i++
		}
	}
	return out
}

// wiggle returns a smooth multiplier around 1.0 for the i-th point.
// Coefficients keep the result strictly positive.
func wiggle(i int) float64 {
	x := float64(i)
	return 1 + 0.12*math.Sin(0.9*x) + 0.08*math.Cos(1.7*x) + 0.05*math.Sin(2.3*x)
}
