package service

import (
	"context"
	"log/slog"
	"sync"

	"github.com/shopspring/decimal"
	"github.com/vortexgear/storefront/internal/errors"
	"github.com/vortexgear/storefront/internal/metrics"
	"github.com/vortexgear/storefront/internal/models"
	repository "github.com/vortexgear/storefront/internal/repositories"
	"github.com/vortexgear/storefront/internal/utils"
)

// CartService holds at most one line per product id, in insertion order.
// Every mutation is written through before it becomes visible.
type CartService struct {
	mu    sync.Mutex
	repo  repository.CartRepository
	items []models.CartItem
}

func NewCartService(ctx context.Context, repo repository.CartRepository) (*CartService, error) {

	items, err := repo.LoadItems(ctx)
	if err != nil {
		if !isCorrupt(err) {
			return nil, errors.StorageError("Failed to load cart").WithError(err)
		}
		slog.Warn("Stored cart unreadable, starting empty", slog.String("error", err.Error()))
		items = nil
	}

	s := &CartService{repo: repo, items: items}
	metrics.CartItems.Set(float64(countUnits(items)))

	return s, nil
}

// AddToCart increments the line for product.ID or appends a new line with quantity 1.
func (s *CartService) AddToCart(ctx context.Context, product models.Product) (models.CartItem, error) {

	s.mu.Lock()
	defer s.mu.Unlock()

	next := make([]models.CartItem, len(s.items), len(s.items)+1)
	copy(next, s.items)

	idx := indexOfLine(next, product.ID)
	if idx >= 0 {
		next[idx].Quantity++
	} else {
		next = append(next, models.CartItem{Product: product, Quantity: 1})
		idx = len(next) - 1
	}

	if err := s.commit(ctx, next); err != nil {
		return models.CartItem{}, err
	}

	return next[idx], nil
}

// RemoveFromCart drops the whole line. Removing an absent product is a no-op.
func (s *CartService) RemoveFromCart(ctx context.Context, productID string) error {

	s.mu.Lock()
	defer s.mu.Unlock()

	idx := indexOfLine(s.items, productID)
	if idx < 0 {
		return nil
	}

	next := make([]models.CartItem, 0, len(s.items)-1)
	next = append(next, s.items[:idx]...)
	next = append(next, s.items[idx+1:]...)

	return s.commit(ctx, next)
}

func (s *CartService) ClearCart(ctx context.Context) error {

	s.mu.Lock()
	defer s.mu.Unlock()

	return s.commit(ctx, nil)
}

func (s *CartService) commit(ctx context.Context, next []models.CartItem) error {

	if err := s.repo.SaveItems(ctx, next); err != nil {
		return errors.StorageError("Failed to update cart").WithError(err)
	}

	s.items = next
	metrics.CartItems.Set(float64(countUnits(next)))

	return nil
}

func (s *CartService) Items() []models.CartItem {

	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]models.CartItem{}, s.items...)
}

// ItemCount is the total number of units, not lines.
func (s *CartService) ItemCount() int {

	s.mu.Lock()
	defer s.mu.Unlock()

	return countUnits(s.items)
}

func (s *CartService) CartTotal() float64 {

	s.mu.Lock()
	defer s.mu.Unlock()

	return utils.Cents(sumLines(s.items))
}

// Snapshot returns the items and total as one consistent view.
func (s *CartService) Snapshot() ([]models.CartItem, float64) {

	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]models.CartItem{}, s.items...), utils.Cents(sumLines(s.items))
}

func indexOfLine(items []models.CartItem, productID string) int {
	for i, item := range items {
		if item.ID == productID {
			return i
		}
	}

	return -1
}

func countUnits(items []models.CartItem) int {

	count := 0
	for _, item := range items {
		count += item.Quantity
	}

	return count
}

func sumLines(items []models.CartItem) decimal.Decimal {

	total := decimal.Zero
	for _, item := range items {
		total = total.Add(utils.LineTotal(item.Price, item.Quantity))
	}

	return total
}
