package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/Kenji-One/tikd-api/internal/dto"
	"github.com/Kenji-One/tikd-api/internal/gateway"
	"github.com/Kenji-One/tikd-api/internal/pricing"
	"github.com/Kenji-One/tikd-api/internal/repository"
	"github.com/Kenji-One/tikd-api/pkg/config"
)

var (
	ErrInvalidCoupon = errors.New("invalid or expired coupon")
	ErrEmptyCart     = errors.New("cart has no purchasable items")
)

// CheckoutService defines the interface for checkout operations
type CheckoutService interface {
	// CreatePaymentIntent prices the cart and creates a payment intent
	CreatePaymentIntent(ctx context.Context, req *dto.CreatePaymentIntentRequest) (*dto.PaymentIntentResponse, error)
}

// checkoutService implements CheckoutService
type checkoutService struct {
	couponRepo repository.CouponRepository
	payments   gateway.PaymentGateway
	pricingCfg *config.PricingConfig
}

// NewCheckoutService creates a new CheckoutService
func NewCheckoutService(couponRepo repository.CouponRepository, payments gateway.PaymentGateway, pricingCfg *config.PricingConfig) CheckoutService {
	return &checkoutService{
		couponRepo: couponRepo,
		payments:   payments,
		pricingCfg: pricingCfg,
	}
}

// CreatePaymentIntent prices the cart server-side and creates a payment
// intent for the resulting total. Client-sent prices are trusted only as
// line inputs; the breakdown is always recomputed here.
func (s *checkoutService) CreatePaymentIntent(ctx context.Context, req *dto.CreatePaymentIntentRequest) (*dto.PaymentIntentResponse, error) {
	var coupon *pricing.Coupon
	if req.CouponCode != "" {
		found, err := s.couponRepo.GetByCode(ctx, req.CouponCode)
		if err != nil {
			return nil, err
		}
		if found == nil {
			return nil, ErrInvalidCoupon
		}
		coupon = found
	}

	breakdown, err := pricing.Calc(req.Items, coupon, s.pricingCfg.ServiceFeeRate)
	if err != nil {
		return nil, err
	}
	if breakdown.Total <= 0 {
		return nil, ErrEmptyCart
	}

	currency := breakdown.Currency
	if currency == "" {
		currency = s.pricingCfg.DefaultCurrency
	}

	metadata := map[string]string{
		"subtotal": fmt.Sprintf("%.2f", breakdown.Subtotal),
		"discount": fmt.Sprintf("%.2f", breakdown.Discount),
		"fees":     fmt.Sprintf("%.2f", breakdown.Fees),
	}
	if coupon != nil {
		metadata["coupon"] = coupon.Code
	}

	intent, err := s.payments.CreateIntent(ctx, pricing.MinorUnits(breakdown.Total), currency, metadata)
	if err != nil {
		return nil, err
	}

	return &dto.PaymentIntentResponse{
		ClientSecret: intent.ClientSecret,
		Amount:       breakdown.Total,
		Currency:     currency,
		Breakdown:    breakdown,
	}, nil
}
