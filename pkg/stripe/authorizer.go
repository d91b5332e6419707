package stripe

import (
	"context"
	"errors"

	"github.com/stripe/stripe-go/v81"
	"github.com/vortexgear/storefront/internal/models"
	"github.com/vortexgear/storefront/internal/utils"
)

const requiresAction = "Payment requires additional verification that this checkout does not support."

// Authorizer charges the cart total through Stripe.
type Authorizer struct {
	client   Client
	currency string
}

func NewAuthorizer(client Client, currency string) *Authorizer {
	return &Authorizer{client: client, currency: currency}
}

// Authorize reports card declines as an unsuccessful result carrying Stripe's
// message. Any other Stripe or network failure is returned as an error.
func (a *Authorizer) Authorize(ctx context.Context, paymentMethod string, amount float64) (*models.PaymentResult, error) {

	intent, err := a.client.ChargePaymentMethod(ctx, utils.MinorUnits(amount), a.currency, paymentMethod, "Vortex order")
	if err != nil {
		var stripeErr *stripe.Error
		if errors.As(err, &stripeErr) && stripeErr.Type == stripe.ErrorTypeCard {
			return &models.PaymentResult{Success: false, Error: stripeErr.Msg}, nil
		}

		return nil, err
	}

	switch intent.Status {
	case stripe.PaymentIntentStatusSucceeded, stripe.PaymentIntentStatusRequiresCapture, stripe.PaymentIntentStatusProcessing:
		return &models.PaymentResult{Success: true, TransactionID: intent.ID}, nil
	default:
		return &models.PaymentResult{Success: false, Error: requiresAction}, nil
	}
}
