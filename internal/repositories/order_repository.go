package repository

import (
	"context"

	"github.com/vortexgear/storefront/internal/models"
	"github.com/vortexgear/storefront/internal/storage"
)

type OrderRepository interface {
	LoadOrders(ctx context.Context) ([]models.Order, error)
	SaveOrders(ctx context.Context, orders []models.Order) error
}

type orderRepository struct {
	kv storage.KV
}

func NewOrderRepository(kv storage.KV) OrderRepository {
	return &orderRepository{kv: kv}
}

func (r *orderRepository) LoadOrders(ctx context.Context) ([]models.Order, error) {

	var orders []models.Order

	if _, err := load(ctx, r.kv, KeyOrders, &orders); err != nil {
		return nil, err
	}

	return orders, nil
}

// SaveOrders rewrites the whole ledger; the ledger only ever grows.
func (r *orderRepository) SaveOrders(ctx context.Context, orders []models.Order) error {
	if orders == nil {
		orders = []models.Order{}
	}

	return save(ctx, r.kv, KeyOrders, orders)
}
