package service

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/vortexgear/storefront/internal/models"
)

// DefaultPaymentFailure is shown when the authorizer declines without a message.
const DefaultPaymentFailure = "Payment authorization failed."

// PaymentAuthorizer turns a payment-method reference and an amount into an
// authorization result. A returned error means the authorizer could not be
// reached; a declined payment is a result with Success=false.
type PaymentAuthorizer interface {
	Authorize(ctx context.Context, paymentMethod string, amount float64) (*models.PaymentResult, error)
}

// SimulatedAuthorizer approves any non-empty payment method after a fixed delay.
type SimulatedAuthorizer struct {
	latency time.Duration
}

func NewSimulatedAuthorizer(latency time.Duration) *SimulatedAuthorizer {
	return &SimulatedAuthorizer{latency: latency}
}

func (a *SimulatedAuthorizer) Authorize(ctx context.Context, paymentMethod string, amount float64) (*models.PaymentResult, error) {

	timer := time.NewTimer(a.latency)
	defer timer.Stop()

	select {
	case <-timer.C:
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	slog.Info("Simulated payment processed", slog.Float64("amount", amount), slog.Bool("has_payment_method", paymentMethod != ""))

	if paymentMethod == "" {
		return &models.PaymentResult{Success: false, Error: DefaultPaymentFailure}, nil
	}

	return &models.PaymentResult{
		Success:       true,
		TransactionID: "tx_" + strings.ReplaceAll(uuid.NewString(), "-", "")[:12],
	}, nil
}
