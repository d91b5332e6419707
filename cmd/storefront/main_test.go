package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vortexgear/storefront/internal/config"
	service "github.com/vortexgear/storefront/internal/services"
	"github.com/vortexgear/storefront/pkg/stripe"
)

func TestNewAuthorizer(t *testing.T) {
	t.Run("Success - Simulated", func(t *testing.T) {
		cfg := &config.Config{Payment: config.Payment{Provider: "simulated"}}

		authorizer, client, err := newAuthorizer(cfg)

		require.NoError(t, err)
		assert.IsType(t, &service.SimulatedAuthorizer{}, authorizer)
		assert.Nil(t, client)
	})

	t.Run("Success - Stripe", func(t *testing.T) {
		cfg := &config.Config{
			Payment: config.Payment{Provider: "stripe"},
			Stripe:  config.Stripe{APIKey: "sk_test_123", Currency: "usd"},
		}

		authorizer, client, err := newAuthorizer(cfg)

		require.NoError(t, err)
		assert.IsType(t, &stripe.Authorizer{}, authorizer)
		assert.NotNil(t, client)
	})

	t.Run("Failure - Unknown Provider", func(t *testing.T) {
		cfg := &config.Config{Payment: config.Payment{Provider: "strpe"}}

		authorizer, client, err := newAuthorizer(cfg)

		require.Error(t, err)
		assert.Contains(t, err.Error(), `unknown payment provider "strpe"`)
		assert.Nil(t, authorizer)
		assert.Nil(t, client)
	})
}
