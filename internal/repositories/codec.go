package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/vortexgear/storefront/internal/storage"
)

// schemaVersion is written into every envelope. Bump it when a stored shape
// changes and teach decode to upgrade the previous one.
const schemaVersion = 1

const (
	KeySession  = "vortex_user"
	KeyCart     = "vortex_cart"
	KeyWishlist = "vortex_wishlist"
	KeyOrders   = "vortex_orders"
)

var (
	ErrCorrupt            = errors.New("stored state is corrupt")
	ErrUnsupportedVersion = errors.New("stored state has an unsupported version")
)

type envelope struct {
	Version int             `json:"version"`
	Data    json.RawMessage `json:"data"`
}

func encode(value any) (string, error) {

	data, err := json.Marshal(value)
	if err != nil {
		return "", fmt.Errorf("failed to marshal state: %w", err)
	}

	raw, err := json.Marshal(envelope{Version: schemaVersion, Data: data})
	if err != nil {
		return "", fmt.Errorf("failed to marshal envelope: %w", err)
	}

	return string(raw), nil
}

func decode(raw string, dest any) error {

	var env envelope
	if err := json.Unmarshal([]byte(raw), &env); err != nil {
		return fmt.Errorf("%w: %v", ErrCorrupt, err)
	}

	if env.Version != schemaVersion {
		return fmt.Errorf("%w: %d", ErrUnsupportedVersion, env.Version)
	}

	if err := json.Unmarshal(env.Data, dest); err != nil {
		return fmt.Errorf("%w: %v", ErrCorrupt, err)
	}

	return nil
}

// load reports found=false when the key has never been written.
func load(ctx context.Context, kv storage.KV, key string, dest any) (bool, error) {

	raw, found, err := kv.Get(ctx, key)
	if err != nil {
		return false, err
	}

	if !found {
		return false, nil
	}

	if err := decode(raw, dest); err != nil {
		return false, fmt.Errorf("decoding %s: %w", key, err)
	}

	return true, nil
}

func save(ctx context.Context, kv storage.KV, key string, value any) error {

	raw, err := encode(value)
	if err != nil {
		return err
	}

	return kv.Set(ctx, key, raw)
}
