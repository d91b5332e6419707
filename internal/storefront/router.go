package storefront

import (
	"sync"

	"github.com/vortexgear/storefront/internal/models"
)

// View is the screen the session is on. Each variant carries exactly the data
// it needs, so a product detail view always has its product.
type View interface {
	Name() models.ViewName
}

type (
	HomeView       struct{}
	CategoriesView struct{}
	CartView       struct{}
	CheckoutView   struct{}
	LoginView      struct{}
	AdminView      struct{}
	ProfileView    struct{}
)

// ShopView lists products; Filter is a category id or "all".
type ShopView struct {
	Filter string
}

type ProductDetailView struct {
	Product models.Product
}

func (HomeView) Name() models.ViewName          { return models.ViewHome }
func (ShopView) Name() models.ViewName          { return models.ViewShop }
func (CategoriesView) Name() models.ViewName    { return models.ViewCategories }
func (ProductDetailView) Name() models.ViewName { return models.ViewProductDetail }
func (CartView) Name() models.ViewName          { return models.ViewCart }
func (CheckoutView) Name() models.ViewName      { return models.ViewCheckout }
func (LoginView) Name() models.ViewName         { return models.ViewLogin }
func (AdminView) Name() models.ViewName         { return models.ViewAdmin }
func (ProfileView) Name() models.ViewName       { return models.ViewProfile }

// Router holds the current view. It starts at home.
type Router struct {
	mu      sync.RWMutex
	current View
}

func NewRouter() *Router {
	return &Router{current: HomeView{}}
}

// Navigate switches to v and returns it. A nil view means home.
func (r *Router) Navigate(v View) View {
	if v == nil {
		v = HomeView{}
	}

	r.mu.Lock()
	r.current = v
	r.mu.Unlock()

	return v
}

func (r *Router) Current() View {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.current
}

// Resolve maps an external view name to a view. Unknown names, and a product
// detail whose product cannot be found, resolve to home.
func Resolve(req models.NavigateRequest, lookup func(id string) (models.Product, bool)) View {
	switch models.ViewName(req.View) {
	case models.ViewShop:
		filter := req.Filter
		if filter == "" {
			filter = models.CategoryFilterAll
		}
		return ShopView{Filter: filter}
	case models.ViewCategories:
		return CategoriesView{}
	case models.ViewProductDetail:
		if req.ProductID == "" || lookup == nil {
			return HomeView{}
		}
		product, ok := lookup(req.ProductID)
		if !ok {
			return HomeView{}
		}
		return ProductDetailView{Product: product}
	case models.ViewCart:
		return CartView{}
	case models.ViewCheckout:
		return CheckoutView{}
	case models.ViewLogin:
		return LoginView{}
	case models.ViewAdmin:
		return AdminView{}
	case models.ViewProfile:
		return ProfileView{}
	default:
		return HomeView{}
	}
}

// Describe renders a view for the API.
func Describe(v View) models.ViewResponse {
	resp := models.ViewResponse{View: v.Name()}

	switch view := v.(type) {
	case ShopView:
		resp.Filter = view.Filter
	case ProductDetailView:
		product := view.Product
		resp.Product = &product
	}

	return resp
}
