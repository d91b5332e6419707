package health

import (
	"context"
	"fmt"
	"time"

	"github.com/hellofresh/health-go/v5"
	healthRedis "github.com/hellofresh/health-go/v5/checks/redis"
	"github.com/vortexgear/storefront/internal/config"
	"github.com/vortexgear/storefront/internal/storage"
	stripeClient "github.com/vortexgear/storefront/pkg/stripe"
)

type Endpoints struct {
	Storage      storage.KV
	StripeClient stripeClient.Client
}

func NewHealthHandler(cfg *config.Config, endpoints *Endpoints) (*health.Health, error) {

	checks := []health.Config{
		{
			Name:      "storage",
			Timeout:   3 * time.Second,
			SkipOnErr: false,
			Check: func(ctx context.Context) error {
				if endpoints.Storage == nil {
					return fmt.Errorf("storage is not initialized")
				}
				if err := endpoints.Storage.Ping(ctx); err != nil {
					return fmt.Errorf("storage unreachable: %w", err)
				}
				return nil
			},
		},
	}

	if cfg.Storage.Driver == storage.DriverRedis {
		checks = append(checks, health.Config{
			Name:      "redis",
			Timeout:   2 * time.Second,
			SkipOnErr: false,
			Check: healthRedis.New(
				healthRedis.Config{
					DSN: cfg.RedisConnect.GetDSN(),
				},
			),
		})
	}

	// Stripe being down degrades checkout only.
	if endpoints.StripeClient != nil {
		checks = append(checks, health.Config{
			Name:      "stripe",
			Timeout:   5 * time.Second,
			SkipOnErr: true,
			Check: func(ctx context.Context) error {
				if _, err := endpoints.StripeClient.GetBalance(ctx); err != nil {
					return fmt.Errorf("failed to connect to stripe: %w", err)
				}
				return nil
			},
		})
	}

	h, err := health.New(
		health.WithComponent(health.Component{
			Name:    cfg.Otel.ServiceName,
			Version: "1.0.0",
		}),
		health.WithSystemInfo(),
		health.WithChecks(checks...),
	)

	if err != nil {
		return nil, fmt.Errorf("failed to create health instance: %w", err)
	}

	return h, nil
}
