package service

import (
	"context"
	"reflect"
	"testing"
	"time"

	"github.com/Kenji-One/tikd-api/internal/analytics"
	"github.com/Kenji-One/tikd-api/internal/domain"
	"github.com/Kenji-One/tikd-api/internal/dto"
)

// fakeOrgRepo serves a single organization
type fakeOrgRepo struct {
	org *domain.Organization
}

func (r *fakeOrgRepo) Create(_ context.Context, _ *domain.Organization) error { return nil }

func (r *fakeOrgRepo) GetByID(_ context.Context, id string) (*domain.Organization, error) {
	if r.org != nil && r.org.ID == id {
		return r.org, nil
	}
	return nil, nil
}

func (r *fakeOrgRepo) GetBySlug(_ context.Context, _ string) (*domain.Organization, error) {
	return nil, nil
}

func (r *fakeOrgRepo) Update(_ context.Context, _ *domain.Organization) error { return nil }

func (r *fakeOrgRepo) ListMembers(_ context.Context, _ string) ([]*domain.Member, error) {
	return nil, nil
}

func (r *fakeOrgRepo) ExistsBySlug(_ context.Context, _ string) (bool, error) { return false, nil }

// fakeRevenueRepo returns a canned daily series
type fakeRevenueRepo struct {
	series analytics.Series
}

func (r *fakeRevenueRepo) DailyRevenue(_ context.Context, _ string, _, _ time.Time) (analytics.Series, error) {
	return r.series, nil
}

func newAnalyticsFixture(series analytics.Series) AnalyticsService {
	return NewAnalyticsService(
		&fakeOrgRepo{org: &domain.Organization{ID: "org-1", Name: "Org"}},
		&fakeRevenueRepo{series: series},
	)
}

func TestSummaryDefaultsToCurrentYearMonthly(t *testing.T) {
	svc := newAnalyticsFixture(nil)

	result, err := svc.Summary(context.Background(), "org-1", &dto.SummaryQuery{})
	if err != nil {
		t.Fatalf("Summary() error = %v", err)
	}

	year := time.Now().Year()
	if result.From != time.Date(year, 1, 1, 0, 0, 0, 0, time.Local).Format("2006-01-02") {
		t.Errorf("From = %q, want Jan 1 of current year", result.From)
	}
	if len(result.Labels) != 12 {
		t.Fatalf("Labels = %d buckets, want 12 months", len(result.Labels))
	}
	if result.Labels[0] != "Jan" || result.Labels[11] != "Dec" {
		t.Errorf("month labels = %v", result.Labels)
	}
	if !result.Synthetic {
		t.Error("no real rows should mean a synthetic series")
	}
}

func TestSummarySwapsInvertedRange(t *testing.T) {
	svc := newAnalyticsFixture(nil)

	result, err := svc.Summary(context.Background(), "org-1", &dto.SummaryQuery{
		From: "2026-03-10",
		To:   "2026-03-01",
	})
	if err != nil {
		t.Fatalf("Summary() error = %v", err)
	}
	if result.From != "2026-03-01" || result.To != "2026-03-10" {
		t.Errorf("range = [%s, %s], want swapped to [2026-03-01, 2026-03-10]", result.From, result.To)
	}
	if len(result.Labels) != 10 {
		t.Errorf("buckets = %d, want 10 daily buckets", len(result.Labels))
	}
}

func TestSummaryUsesRealRowsWhenPresent(t *testing.T) {
	day := func(d int) time.Time { return time.Date(2026, 3, d, 0, 0, 0, 0, time.Local) }
	svc := newAnalyticsFixture(analytics.Series{
		{Date: day(1), Value: 100},
		{Date: day(2), Value: 50},
		{Date: day(5), Value: 25},
	})

	result, err := svc.Summary(context.Background(), "org-1", &dto.SummaryQuery{
		From: "2026-03-01",
		To:   "2026-03-07",
	})
	if err != nil {
		t.Fatalf("Summary() error = %v", err)
	}
	if result.Synthetic {
		t.Error("real rows present, Synthetic should be false")
	}
	if result.Total != 175 {
		t.Errorf("Total = %v, want 175", result.Total)
	}
	want := []float64{100, 50, 0, 0, 25, 0, 0}
	if !reflect.DeepEqual(result.Revenue, want) {
		t.Errorf("Revenue = %v, want %v", result.Revenue, want)
	}
}

func TestSummaryDeterministicPerOrg(t *testing.T) {
	svc := newAnalyticsFixture(nil)
	query := &dto.SummaryQuery{From: "2026-01-01", To: "2026-02-28"}

	a, err := svc.Summary(context.Background(), "org-1", query)
	if err != nil {
		t.Fatalf("Summary() error = %v", err)
	}
	b, err := svc.Summary(context.Background(), "org-1", query)
	if err != nil {
		t.Fatalf("Summary() error = %v", err)
	}

	if !reflect.DeepEqual(a.Revenue, b.Revenue) {
		t.Error("synthetic revenue must be deterministic per org and range")
	}
	if a.Audience != b.Audience || !reflect.DeepEqual(a.Ages, b.Ages) {
		t.Error("audience breakdowns must be deterministic per org")
	}
}

func TestSummaryGenderSumsToAudience(t *testing.T) {
	svc := newAnalyticsFixture(nil)

	result, err := svc.Summary(context.Background(), "org-1", &dto.SummaryQuery{})
	if err != nil {
		t.Fatalf("Summary() error = %v", err)
	}

	var genderSum int
	for _, seg := range result.Gender {
		genderSum += seg.Value
	}
	if genderSum != result.Audience {
		t.Errorf("gender sum = %d, want audience %d", genderSum, result.Audience)
	}

	var ageSum int
	for _, a := range result.Ages {
		ageSum += a.Count
	}
	if ageSum != result.Audience {
		t.Errorf("age sum = %d, want audience %d", ageSum, result.Audience)
	}
}

func TestSummaryTicksCoverMax(t *testing.T) {
	svc := newAnalyticsFixture(nil)

	result, err := svc.Summary(context.Background(), "org-1", &dto.SummaryQuery{})
	if err != nil {
		t.Fatalf("Summary() error = %v", err)
	}

	if len(result.Ticks) < 2 {
		t.Fatalf("ticks = %v, want at least 2", result.Ticks)
	}
	if result.Ticks[0] != 0 {
		t.Errorf("first tick = %v, want 0", result.Ticks[0])
	}

	var maxRevenue float64
	for _, v := range result.Revenue {
		if v > maxRevenue {
			maxRevenue = v
		}
	}
	last := result.Ticks[len(result.Ticks)-1]
	if last < maxRevenue {
		t.Errorf("last tick %v below max revenue %v", last, maxRevenue)
	}
}

func TestSummaryRejectsBadDates(t *testing.T) {
	svc := newAnalyticsFixture(nil)

	_, err := svc.Summary(context.Background(), "org-1", &dto.SummaryQuery{From: "03/01/2026"})
	if err == nil {
		t.Fatal("Summary() with malformed date should fail")
	}
}

func TestSummaryUnknownOrg(t *testing.T) {
	svc := newAnalyticsFixture(nil)

	_, err := svc.Summary(context.Background(), "org-unknown", &dto.SummaryQuery{})
	if err != ErrOrganizationNotFound {
		t.Errorf("Summary() error = %v, want ErrOrganizationNotFound", err)
	}
}
