package service

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/vortexgear/storefront/internal/errors"
	"github.com/vortexgear/storefront/internal/models"
	repository "github.com/vortexgear/storefront/internal/repositories"
)

// WishlistService keeps saved products independently of the cart.
type WishlistService struct {
	mu      sync.Mutex
	repo    repository.WishlistRepository
	entries []models.WishlistEntry
	now     func() time.Time
}

func NewWishlistService(ctx context.Context, repo repository.WishlistRepository) (*WishlistService, error) {

	entries, err := repo.LoadEntries(ctx)
	if err != nil {
		if !isCorrupt(err) {
			return nil, errors.StorageError("Failed to load wishlist").WithError(err)
		}
		slog.Warn("Stored wishlist unreadable, starting empty", slog.String("error", err.Error()))
		entries = nil
	}

	return &WishlistService{repo: repo, entries: entries, now: time.Now}, nil
}

// ToggleWishlist adds the product when absent and removes it when present.
// It reports whether the product is in the wishlist afterwards.
func (s *WishlistService) ToggleWishlist(ctx context.Context, product models.Product) (bool, error) {

	s.mu.Lock()
	defer s.mu.Unlock()

	var next []models.WishlistEntry
	added := true

	for _, entry := range s.entries {
		if entry.ID == product.ID {
			added = false
			continue
		}
		next = append(next, entry)
	}

	if added {
		next = append(next, models.WishlistEntry{Product: product, AddedAt: s.now().UTC()})
	}

	if err := s.repo.SaveEntries(ctx, next); err != nil {
		return false, errors.StorageError("Failed to update wishlist").WithError(err)
	}

	s.entries = next

	return added, nil
}

func (s *WishlistService) IsInWishlist(productID string) bool {

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, entry := range s.entries {
		if entry.ID == productID {
			return true
		}
	}

	return false
}

func (s *WishlistService) Entries() []models.WishlistEntry {

	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]models.WishlistEntry{}, s.entries...)
}
