package gateway

import "context"

// PaymentIntent is the provider-neutral result of creating a payment intent.
type PaymentIntent struct {
	ID           string
	ClientSecret string
	Amount       int64 // minor units
	Currency     string
}

// PaymentGateway defines the interface for payment provider operations
type PaymentGateway interface {
	// CreateIntent creates a payment intent for the given amount in minor units
	CreateIntent(ctx context.Context, amount int64, currency string, metadata map[string]string) (*PaymentIntent, error)
}
