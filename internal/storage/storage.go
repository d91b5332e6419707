package storage

import (
	"context"
	"fmt"

	"github.com/vortexgear/storefront/internal/config"
	"github.com/vortexgear/storefront/internal/storage/memory"
	"github.com/vortexgear/storefront/internal/storage/redis"
	"github.com/vortexgear/storefront/internal/storage/sqlite"
)

const (
	DriverMemory = "memory"
	DriverRedis  = "redis"
	DriverSQLite = "sqlite"
)

// KV is the persistence collaborator: string values under fixed keys that
// survive a restart (except for the memory driver).
type KV interface {
	// Get reports found=false for a missing key; that is not an error.
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	// Remove of a missing key is a no-op.
	Remove(ctx context.Context, key string) error
	Ping(ctx context.Context) error
	Close() error
}

func Open(ctx context.Context, cfg *config.Config) (KV, error) {

	switch cfg.Storage.Driver {
	case DriverMemory, "":
		return memory.New(), nil
	case DriverRedis:
		client, err := redis.NewClient(ctx, &cfg.RedisConnect)
		if err != nil {
			return nil, err
		}
		return redis.New(client), nil
	case DriverSQLite:
		return sqlite.Open(ctx, cfg.Storage.Path)
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
	}
}
