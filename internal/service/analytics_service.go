package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Kenji-One/tikd-api/internal/analytics"
	"github.com/Kenji-One/tikd-api/internal/dto"
	"github.com/Kenji-One/tikd-api/internal/repository"
	"github.com/Kenji-One/tikd-api/pkg/timeutil"
)

var ErrInvalidDateRange = errors.New("invalid date range")

const (
	tickCount = 5

	// Bounds for the synthetic demo metrics, chosen to look like a mid-size
	// organizer. Real rows always win over synthetic ones.
	synthMonthMin    = 800
	synthMonthMax    = 12000
	synthAudienceMin = 1500
	synthAudienceMax = 45000
)

// genderPercents is the fixed demo gender split.
var genderPercents = []float64{66, 23, 11}

var genderLabels = []string{"Female", "Male", "Other"}

// AnalyticsService defines the interface for the dashboard summary
type AnalyticsService interface {
	// Summary builds the analytics summary for an organization and range
	Summary(ctx context.Context, orgID string, query *dto.SummaryQuery) (*dto.SummaryResponse, error)
}

// analyticsService implements AnalyticsService
type analyticsService struct {
	orgRepo     repository.OrganizationRepository
	revenueRepo repository.RevenueRepository
}

// NewAnalyticsService creates a new AnalyticsService
func NewAnalyticsService(orgRepo repository.OrganizationRepository, revenueRepo repository.RevenueRepository) AnalyticsService {
	return &analyticsService{orgRepo: orgRepo, revenueRepo: revenueRepo}
}

// Summary builds the analytics summary for an organization and range. With no
// explicit range the current calendar year is used at monthly granularity;
// an inverted range is normalized by swapping its ends. Real daily revenue
// rows are used when present, otherwise a deterministic synthetic series
// keyed by the organization id stands in.
func (s *analyticsService) Summary(ctx context.Context, orgID string, query *dto.SummaryQuery) (*dto.SummaryResponse, error) {
	org, err := s.orgRepo.GetByID(ctx, orgID)
	if err != nil {
		return nil, err
	}
	if org == nil {
		return nil, ErrOrganizationNotFound
	}

	from, to, monthly, err := resolveRange(query, time.Now())
	if err != nil {
		return nil, err
	}

	var buckets []analytics.Bucket
	if monthly {
		buckets = analytics.MonthlyBuckets(from, to)
	} else {
		buckets = analytics.RangeBuckets(from, to)
	}

	series, err := s.revenueRepo.DailyRevenue(ctx, orgID, from, to)
	if err != nil {
		return nil, err
	}
	synthetic := len(series) == 0
	if synthetic {
		series = syntheticRevenue(orgID, from, to)
	}

	revenue := analytics.Rebucket(series, buckets)
	var total, maxVal float64
	for _, v := range revenue {
		total += v
		if v > maxVal {
			maxVal = v
		}
	}

	dates := make([]string, len(buckets))
	for i, d := range analytics.RepDates(buckets) {
		dates[i] = d.Format(dayFormat)
	}

	audience := analytics.StableTotal("aud:"+orgID, synthAudienceMin, synthAudienceMax)
	genderCounts := analytics.SplitByPercent(audience, genderPercents)
	gender := make([]dto.Segment, len(genderCounts))
	for i, c := range genderCounts {
		gender[i] = dto.Segment{Label: genderLabels[i], Value: c}
	}

	return &dto.SummaryResponse{
		From:      from.Format(dayFormat),
		To:        to.Format(dayFormat),
		Labels:    analytics.Labels(buckets),
		Dates:     dates,
		Revenue:   revenue,
		Ticks:     analytics.NiceTicks(maxVal, tickCount),
		Total:     total,
		Synthetic: synthetic,
		Audience:  audience,
		Gender:    gender,
		Ages:      analytics.StableAges("ages:"+orgID, audience),
	}, nil
}

// resolveRange turns the query's optional bounds into a concrete window.
// Both bounds absent means "all time", rendered as the current calendar year
// in monthly mode. A single absent bound is filled from the other end's year.
func resolveRange(query *dto.SummaryQuery, now time.Time) (from, to time.Time, monthly bool, err error) {
	if query.From == "" && query.To == "" {
		from = time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, now.Location())
		to = time.Date(now.Year(), time.December, 31, 0, 0, 0, 0, now.Location())
		return from, to, true, nil
	}

	parse := func(s string) (time.Time, error) {
		t, err := time.ParseInLocation(dayFormat, s, now.Location())
		if err != nil {
			return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDateRange, s)
		}
		return t, nil
	}

	switch {
	case query.From == "":
		if to, err = parse(query.To); err != nil {
			return
		}
		from = time.Date(to.Year(), time.January, 1, 0, 0, 0, 0, to.Location())
	case query.To == "":
		if from, err = parse(query.From); err != nil {
			return
		}
		to = time.Date(from.Year(), time.December, 31, 0, 0, 0, 0, from.Location())
	default:
		if from, err = parse(query.From); err != nil {
			return
		}
		if to, err = parse(query.To); err != nil {
			return
		}
	}

	if from.After(to) {
		from, to = to, from
	}
	return from, to, false, nil
}

// syntheticRevenue builds the deterministic stand-in series: a stable total
// per month keyed by org id and month, spread across the month's days.
func syntheticRevenue(orgID string, from, to time.Time) analytics.Series {
	months := timeutil.Months(from, to)
	totals := make([]analytics.MonthTotal, 0, len(months))
	for _, m := range months {
		seed := fmt.Sprintf("rev:%s:%s", orgID, m.Format("2006-01"))
		totals = append(totals, analytics.MonthTotal{
			Month: m,
			Total: float64(analytics.StableTotal(seed, synthMonthMin, synthMonthMax)),
		})
	}
	return analytics.DailyizeMonthly(totals)
}
