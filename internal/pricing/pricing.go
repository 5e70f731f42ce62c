// Package pricing computes checkout totals from cart line items and an
// optional coupon. All amounts are in major currency units (dollars).
package pricing

import (
	"errors"
	"math"
)

var ErrMixedCurrencies = errors.New("cart items use more than one currency")

// CartItem is one ticket line in a checkout cart. Qty 0 means the line was
// removed and contributes nothing to the totals.
type CartItem struct {
	Key       string  `json:"key"`
	Label     string  `json:"label"`
	UnitPrice float64 `json:"unit_price"`
	Currency  string  `json:"currency"`
	Qty       int     `json:"qty"`
}

// CouponKind selects how a coupon's value is interpreted.
type CouponKind string

const (
	CouponPercent CouponKind = "percent"
	CouponAmount  CouponKind = "amount"
)

// Coupon is a discount rule applied to the cart subtotal.
type Coupon struct {
	Code  string     `json:"code"`
	Label string     `json:"label"`
	Kind  CouponKind `json:"kind"`
	Value float64    `json:"value"`
}

// Breakdown is the derived price summary for a cart.
type Breakdown struct {
	Subtotal float64 `json:"subtotal"`
	Discount float64 `json:"discount"`
	Fees     float64 `json:"fees"`
	Total    float64 `json:"total"`
	Currency string  `json:"currency"`
}

// Calc derives the checkout breakdown: subtotal over all lines, the coupon
// discount capped at the subtotal, service fees charged on the discounted
// amount, and the resulting total. A nil coupon means no discount.
func Calc(items []CartItem, coupon *Coupon, feeRate float64) (Breakdown, error) {
	var subtotal float64
	currency := ""
	for _, item := range items {
		if item.Qty <= 0 {
			continue
		}
		if currency == "" {
			currency = item.Currency
		} else if item.Currency != currency {
			return Breakdown{}, ErrMixedCurrencies
		}
		subtotal += item.UnitPrice * float64(item.Qty)
	}
	subtotal = roundCents(subtotal)

	discount := 0.0
	if coupon != nil {
		switch coupon.Kind {
		case CouponPercent:
			discount = subtotal * coupon.Value / 100
		case CouponAmount:
			discount = coupon.Value
		}
		if discount > subtotal {
			discount = subtotal
		}
		if discount < 0 {
			discount = 0
		}
		discount = roundCents(discount)
	}

	fees := roundCents((subtotal - discount) * feeRate)

	return Breakdown{
		Subtotal: subtotal,
		Discount: discount,
		Fees:     fees,
		Total:    roundCents(subtotal - discount + fees),
		Currency: currency,
	}, nil
}

// MinorUnits converts a major-unit amount to integer minor units (cents),
// the form payment gateways expect.
func MinorUnits(amount float64) int64 {
	return int64(math.Round(amount * 100))
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}
