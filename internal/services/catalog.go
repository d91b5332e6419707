package service

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"math/rand/v2"
	"strings"

	"github.com/vortexgear/storefront/internal/models"
	repository "github.com/vortexgear/storefront/internal/repositories"
)

// CatalogService serves the product catalog. The catalog is generated once
// from the templates and persisted; it never changes while the process runs,
// so reads take no lock.
type CatalogService struct {
	products []models.Product
	byID     map[string]int
}

// NewCatalogService loads the persisted catalog, generating and persisting a
// fresh one from seed when none is stored or the stored one is unreadable.
func NewCatalogService(ctx context.Context, repo repository.CatalogRepository, seed uint64) *CatalogService {

	products, found, err := repo.LoadProducts(ctx)
	if err != nil {
		slog.Warn("Stored catalog unreadable, regenerating", slog.String("error", err.Error()))
	}

	if !found || len(products) == 0 {
		products = GenerateCatalog(seed)

		if err := repo.SaveProducts(ctx, products); err != nil {
			// The same seed regenerates the same catalog, so serving it unsaved is safe.
			slog.Warn("Failed to persist generated catalog", slog.String("error", err.Error()))
		}
	}

	return newCatalog(products)
}

func newCatalog(products []models.Product) *CatalogService {

	byID := make(map[string]int, len(products))
	for i, p := range products {
		byID[p.ID] = i
	}

	return &CatalogService{products: products, byID: byID}
}

// GenerateCatalog builds the full catalog. Equal seeds give equal catalogs.
func GenerateCatalog(seed uint64) []models.Product {

	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))

	var products []models.Product
	id := 1

	for _, tmpl := range catalogTemplates {
		for i := 0; i < tmpl.count; i++ {
			name := strings.Join([]string{
				pick(rng, namePrefixes),
				pick(rng, nameAdjectives),
				pick(rng, tmpl.nouns),
				pick(rng, nameSuffixes),
			}, " ")

			products = append(products, models.Product{
				ID:          fmt.Sprintf("cj_%s_%d", tmpl.category, id),
				Name:        name,
				Price:       float64(tmpl.minPrice + rng.IntN(tmpl.priceSpread)),
				Category:    tmpl.category,
				Image:       tmpl.images[i%len(tmpl.images)],
				Description: tmpl.description,
				Specs:       tmpl.specs(i),
				Rating:      math.Round((3+rng.Float64()*2)*10) / 10,
			})
			id++
		}
	}

	return products
}

func pick(rng *rand.Rand, options []string) string {
	return options[rng.IntN(len(options))]
}

func (s *CatalogService) ListProducts() []models.Product {
	return append([]models.Product(nil), s.products...)
}

// ListByCategory filters by category; an empty or "all" filter returns everything.
func (s *CatalogService) ListByCategory(filter string) []models.Product {

	if filter == "" || filter == models.CategoryFilterAll {
		return s.ListProducts()
	}

	products := []models.Product{}
	for _, p := range s.products {
		if string(p.Category) == filter {
			products = append(products, p)
		}
	}

	return products
}

func (s *CatalogService) FindProduct(id string) (models.Product, bool) {

	i, ok := s.byID[id]
	if !ok {
		return models.Product{}, false
	}

	return s.products[i], true
}

// Featured is the home page grid: the first n products.
func (s *CatalogService) Featured(n int) []models.Product {
	return append([]models.Product(nil), s.products[:min(max(n, 0), len(s.products))]...)
}

func (s *CatalogService) Categories() []models.CategoryInfo {
	return append([]models.CategoryInfo(nil), categoryInfos...)
}
