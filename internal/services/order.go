package service

import (
	"context"
	"log/slog"
	"slices"
	"strings"
	"sync"

	"github.com/shopspring/decimal"
	"github.com/vortexgear/storefront/internal/errors"
	"github.com/vortexgear/storefront/internal/metrics"
	"github.com/vortexgear/storefront/internal/models"
	repository "github.com/vortexgear/storefront/internal/repositories"
	"github.com/vortexgear/storefront/internal/utils"
)

// OrderService is the append-only order ledger. Orders are never mutated or
// removed, and ids are not deduplicated.
type OrderService struct {
	mu     sync.Mutex
	repo   repository.OrderRepository
	orders []models.Order
}

func NewOrderService(ctx context.Context, repo repository.OrderRepository) (*OrderService, error) {

	orders, err := repo.LoadOrders(ctx)
	if err != nil {
		if !isCorrupt(err) {
			return nil, errors.StorageError("Failed to load orders").WithError(err)
		}
		slog.Error("Stored orders unreadable, starting with an empty ledger", slog.String("error", err.Error()))
		orders = nil
	}

	return &OrderService{repo: repo, orders: orders}, nil
}

func (s *OrderService) CreateOrder(ctx context.Context, order models.Order) error {

	s.mu.Lock()
	defer s.mu.Unlock()

	next := make([]models.Order, len(s.orders), len(s.orders)+1)
	copy(next, s.orders)
	next = append(next, order)

	if err := s.repo.SaveOrders(ctx, next); err != nil {
		return errors.StorageError("Failed to record order").WithError(err)
	}

	s.orders = next
	metrics.OrdersCreatedTotal.Inc()

	return nil
}

// ListOrders returns every order in creation order.
func (s *OrderService) ListOrders() []models.Order {

	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]models.Order{}, s.orders...)
}

// FindOrder accepts the id with or without the "#" shown in the UI. When ids
// repeat, the first recorded order wins.
func (s *OrderService) FindOrder(id string) (models.Order, bool) {

	id = strings.TrimPrefix(id, "#")

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, order := range s.orders {
		if order.ID == id {
			return order, true
		}
	}

	return models.Order{}, false
}

// OrdersForUser returns the user's orders, newest first.
func (s *OrderService) OrdersForUser(userID string) []models.Order {

	s.mu.Lock()
	defer s.mu.Unlock()

	orders := []models.Order{}
	for _, order := range s.orders {
		if order.UserID == userID {
			orders = append(orders, order)
		}
	}

	slices.Reverse(orders)

	return orders
}

// Revenue sums stored order totals.
func (s *OrderService) Revenue() float64 {

	s.mu.Lock()
	defer s.mu.Unlock()

	total := decimal.Zero
	for _, order := range s.orders {
		total = total.Add(decimal.NewFromFloat(order.Total))
	}

	return utils.Cents(total)
}
