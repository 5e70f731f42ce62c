package repository

import (
	"context"

	"github.com/Kenji-One/tikd-api/internal/pricing"
)

// CouponRepository defines the interface for coupon lookup
type CouponRepository interface {
	// GetByCode retrieves an active coupon by its code
	GetByCode(ctx context.Context, code string) (*pricing.Coupon, error)
}
