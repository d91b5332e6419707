package utils

import (
	"context"
	"time"
)

const DefaultStorageTimeout = 5 * time.Second

func WithStorageTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, DefaultStorageTimeout)
}
