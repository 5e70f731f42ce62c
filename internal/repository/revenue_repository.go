package repository

import (
	"context"
	"time"

	"github.com/Kenji-One/tikd-api/internal/analytics"
)

// RevenueRepository defines the interface for revenue stats access
type RevenueRepository interface {
	// DailyRevenue retrieves per-day revenue totals for an organization
	// inside [from, to] inclusive. An empty series means no recorded sales.
	DailyRevenue(ctx context.Context, orgID string, from, to time.Time) (analytics.Series, error)
}
