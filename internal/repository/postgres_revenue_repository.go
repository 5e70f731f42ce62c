package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Kenji-One/tikd-api/internal/analytics"
)

// PostgresRevenueRepository implements RevenueRepository using PostgreSQL
type PostgresRevenueRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRevenueRepository creates a new PostgresRevenueRepository
func NewPostgresRevenueRepository(pool *pgxpool.Pool) *PostgresRevenueRepository {
	return &PostgresRevenueRepository{pool: pool}
}

// DailyRevenue retrieves per-day revenue totals for an organization
func (r *PostgresRevenueRepository) DailyRevenue(ctx context.Context, orgID string, from, to time.Time) (analytics.Series, error) {
	query := `
		SELECT date_trunc('day', paid_at)::date as day, SUM(amount) as total
		FROM orders
		WHERE org_id = $1 AND status = 'paid' AND paid_at >= $2 AND paid_at < $3
		GROUP BY day
		ORDER BY day ASC
	`
	// The upper bound is exclusive in SQL, so push it one day past "to".
	rows, err := r.pool.Query(ctx, query, orgID, from, to.AddDate(0, 0, 1))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	series := make(analytics.Series, 0)
	for rows.Next() {
		var p analytics.DailyPoint
		if err := rows.Scan(&p.Date, &p.Value); err != nil {
			return nil, err
		}
		series = append(series, p)
	}

	return series, nil
}
