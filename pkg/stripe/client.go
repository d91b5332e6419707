package stripe

import (
	"context"

	"github.com/stripe/stripe-go/v81"
	"github.com/stripe/stripe-go/v81/balance"
	"github.com/stripe/stripe-go/v81/paymentintent"
)

// defines the methods that any of payment client must implement.
type Client interface {
	ChargePaymentMethod(ctx context.Context, amount int64, currency, paymentMethodID, description string) (*stripe.PaymentIntent, error)
	GetBalance(ctx context.Context) (*stripe.Balance, error)
}

// stripeClient is the implementation of the Client interface.
type stripeClient struct{}

func NewStripeClient(apiKey string) Client {
	stripe.Key = apiKey

	return &stripeClient{}
}

// ChargePaymentMethod creates and confirms a PaymentIntent in one call. The
// payment method comes from the client-side widget, so card data never passes
// through here. Redirect-based methods are refused because there is no page
// to return to.
func (s *stripeClient) ChargePaymentMethod(ctx context.Context, amount int64, currency, paymentMethodID, description string) (*stripe.PaymentIntent, error) {
	params := &stripe.PaymentIntentParams{
		Amount:        stripe.Int64(amount),
		Currency:      stripe.String(currency),
		Description:   stripe.String(description),
		PaymentMethod: stripe.String(paymentMethodID),
		Confirm:       stripe.Bool(true),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled:        stripe.Bool(true),
			AllowRedirects: stripe.String("never"),
		},
	}
	params.Context = ctx

	return paymentintent.New(params)
}

// GetBalance is a cheap authenticated call used by the health check.
func (s *stripeClient) GetBalance(ctx context.Context) (*stripe.Balance, error) {
	params := &stripe.BalanceParams{}
	params.Context = ctx

	return balance.Get(params)
}
