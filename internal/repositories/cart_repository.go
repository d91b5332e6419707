package repository

import (
	"context"

	"github.com/vortexgear/storefront/internal/models"
	"github.com/vortexgear/storefront/internal/storage"
)

type CartRepository interface {
	LoadItems(ctx context.Context) ([]models.CartItem, error)
	SaveItems(ctx context.Context, items []models.CartItem) error
}

type cartRepository struct {
	kv storage.KV
}

func NewCartRepo(kv storage.KV) CartRepository {
	return &cartRepository{kv: kv}
}

// LoadItems keeps line order as stored, which is insertion order.
func (r *cartRepository) LoadItems(ctx context.Context) ([]models.CartItem, error) {

	var items []models.CartItem

	if _, err := load(ctx, r.kv, KeyCart, &items); err != nil {
		return nil, err
	}

	return items, nil
}

func (r *cartRepository) SaveItems(ctx context.Context, items []models.CartItem) error {
	if items == nil {
		items = []models.CartItem{}
	}

	return save(ctx, r.kv, KeyCart, items)
}
