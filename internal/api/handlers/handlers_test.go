package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/vortexgear/storefront/internal/models"
	service "github.com/vortexgear/storefront/internal/services"
	"github.com/vortexgear/storefront/internal/storage/memory"
	"github.com/vortexgear/storefront/internal/storefront"
	"github.com/vortexgear/storefront/internal/testutils"
)

// authorizerFunc adapts a function to service.PaymentAuthorizer.
type authorizerFunc func(ctx context.Context, paymentMethod string, amount float64) (*models.PaymentResult, error)

func (f authorizerFunc) Authorize(ctx context.Context, paymentMethod string, amount float64) (*models.PaymentResult, error) {
	return f(ctx, paymentMethod, amount)
}

// setupApp -> a storefront backed by in-memory storage with an instant authorizer
func setupApp(t *testing.T, authorizer service.PaymentAuthorizer) *storefront.App {
	t.Helper()

	if authorizer == nil {
		authorizer = service.NewSimulatedAuthorizer(0)
	}

	app, err := storefront.New(t.Context(), memory.New(), storefront.Options{
		CatalogSeed:    2024,
		CatalogVersion: 4,
		Authorizer:     authorizer,
		PaymentTimeout: time.Second,
		ChatTimeout:    time.Second,
	})
	require.NoError(t, err)

	return app
}

func jsonRequest(t *testing.T, method, target string, body any, pathParams map[string]string) *http.Request {
	t.Helper()

	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := testutils.CreateTestRequest(method, target, bytes.NewReader(payload), pathParams)
	req.Header.Set("Content-Type", "application/json")

	return req
}

func validCheckout() models.CheckoutRequest {
	return models.CheckoutRequest{
		Shipping: models.ShippingDetails{
			FirstName: "Sam",
			LastName:  "Rivera",
			Email:     "sam@example.com",
			Address:   "42 Arcade Lane",
			City:      "Austin",
			ZIP:       "73301",
		},
		PaymentMethod: "pm_card_visa",
	}
}
