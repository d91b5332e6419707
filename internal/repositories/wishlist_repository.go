package repository

import (
	"context"

	"github.com/vortexgear/storefront/internal/models"
	"github.com/vortexgear/storefront/internal/storage"
)

type WishlistRepository interface {
	LoadEntries(ctx context.Context) ([]models.WishlistEntry, error)
	SaveEntries(ctx context.Context, entries []models.WishlistEntry) error
}

type wishlistRepository struct {
	kv storage.KV
}

func NewWishlistRepo(kv storage.KV) WishlistRepository {
	return &wishlistRepository{kv: kv}
}

func (r *wishlistRepository) LoadEntries(ctx context.Context) ([]models.WishlistEntry, error) {

	var entries []models.WishlistEntry

	if _, err := load(ctx, r.kv, KeyWishlist, &entries); err != nil {
		return nil, err
	}

	return entries, nil
}

func (r *wishlistRepository) SaveEntries(ctx context.Context, entries []models.WishlistEntry) error {
	if entries == nil {
		entries = []models.WishlistEntry{}
	}

	return save(ctx, r.kv, KeyWishlist, entries)
}
