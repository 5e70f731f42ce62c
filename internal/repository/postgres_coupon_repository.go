package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Kenji-One/tikd-api/internal/pricing"
)

// PostgresCouponRepository implements CouponRepository using PostgreSQL
type PostgresCouponRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresCouponRepository creates a new PostgresCouponRepository
func NewPostgresCouponRepository(pool *pgxpool.Pool) *PostgresCouponRepository {
	return &PostgresCouponRepository{pool: pool}
}

// GetByCode retrieves an active coupon by its code
func (r *PostgresCouponRepository) GetByCode(ctx context.Context, code string) (*pricing.Coupon, error) {
	query := `
		SELECT code, COALESCE(label, '') as label, kind, value
		FROM coupons
		WHERE code = $1 AND is_active = true AND (expires_at IS NULL OR expires_at > now())
	`
	coupon := &pricing.Coupon{}
	err := r.pool.QueryRow(ctx, query, code).Scan(
		&coupon.Code,
		&coupon.Label,
		&coupon.Kind,
		&coupon.Value,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return coupon, nil
}
