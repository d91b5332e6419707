package repository

import (
	"context"
	"fmt"

	"github.com/vortexgear/storefront/internal/models"
	"github.com/vortexgear/storefront/internal/storage"
)

type CatalogRepository interface {
	LoadProducts(ctx context.Context) ([]models.Product, bool, error)
	SaveProducts(ctx context.Context, products []models.Product) error
}

type catalogRepository struct {
	kv  storage.KV
	key string
}

// NewCatalogRepo stores the catalog under a versioned key so that a new
// generator version does not read an older catalog.
func NewCatalogRepo(kv storage.KV, version int) CatalogRepository {
	return &catalogRepository{kv: kv, key: fmt.Sprintf("vortex_cj_products_v%d", version)}
}

func (r *catalogRepository) LoadProducts(ctx context.Context) ([]models.Product, bool, error) {

	var products []models.Product

	found, err := load(ctx, r.kv, r.key, &products)
	if err != nil || !found {
		return nil, false, err
	}

	return products, true, nil
}

func (r *catalogRepository) SaveProducts(ctx context.Context, products []models.Product) error {
	return save(ctx, r.kv, r.key, products)
}
