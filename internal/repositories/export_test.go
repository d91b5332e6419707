package repository

import (
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/vortexgear/storefront/internal/config"
)

func NewRateLimitRepoAt(client *redis.Client, cfg config.RateConfig, now time.Time) RateLimitRepository {
	return &rateLimitRepository{client: client, cfg: cfg, now: func() time.Time { return now }}
}
