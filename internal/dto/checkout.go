package dto

import "github.com/Kenji-One/tikd-api/internal/pricing"

// CreatePaymentIntentRequest is the checkout payload: the cart lines plus
// an optional coupon code. The server recomputes all prices.
type CreatePaymentIntentRequest struct {
	Items      []pricing.CartItem `json:"items" binding:"required,min=1"`
	CouponCode string             `json:"coupon_code,omitempty"`
}

// PaymentIntentResponse returns the Stripe client secret together with the
// derived price breakdown so the client can render the summary it is paying.
type PaymentIntentResponse struct {
	ClientSecret string            `json:"client_secret"`
	Amount       float64           `json:"amount"`
	Currency     string            `json:"currency"`
	Breakdown    pricing.Breakdown `json:"breakdown"`
}
