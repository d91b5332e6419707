package storefront

import (
	"context"
	"time"

	"github.com/vortexgear/storefront/internal/errors"
	"github.com/vortexgear/storefront/internal/models"
	repository "github.com/vortexgear/storefront/internal/repositories"
	service "github.com/vortexgear/storefront/internal/services"
	"github.com/vortexgear/storefront/internal/storage"
)

const featuredCount = 6

// Options carries the collaborators and tunables of an App. Generator and
// Notifier may be nil.
type Options struct {
	CatalogSeed    uint64
	CatalogVersion int
	Authorizer     service.PaymentAuthorizer
	Generator      service.TextGenerator
	Notifier       service.OrderNotifier
	PaymentTimeout time.Duration
	ChatTimeout    time.Duration
}

// App is the whole storefront session: every store plus the current view.
// Cross-store rules live here; each store only guards its own state.
type App struct {
	Catalog  *service.CatalogService
	Session  *service.SessionService
	Cart     *service.CartService
	Wishlist *service.WishlistService
	Orders   *service.OrderService
	Checkout *service.CheckoutService
	Chat     *service.ChatService
	Router   *Router
}

// New restores persisted state from kv and wires the stores together.
func New(ctx context.Context, kv storage.KV, opts Options) (*App, error) {

	if opts.Authorizer == nil {
		return nil, errors.InternalError("Payment authorizer is required")
	}

	catalog := service.NewCatalogService(ctx, repository.NewCatalogRepo(kv, opts.CatalogVersion), opts.CatalogSeed)

	session, err := service.NewSessionService(ctx, repository.NewSessionRepo(kv))
	if err != nil {
		return nil, err
	}

	cart, err := service.NewCartService(ctx, repository.NewCartRepo(kv))
	if err != nil {
		return nil, err
	}

	wishlist, err := service.NewWishlistService(ctx, repository.NewWishlistRepo(kv))
	if err != nil {
		return nil, err
	}

	orders, err := service.NewOrderService(ctx, repository.NewOrderRepository(kv))
	if err != nil {
		return nil, err
	}

	return &App{
		Catalog:  catalog,
		Session:  session,
		Cart:     cart,
		Wishlist: wishlist,
		Orders:   orders,
		Checkout: service.NewCheckoutService(cart, orders, session, opts.Authorizer, opts.Notifier, opts.PaymentTimeout),
		Chat:     service.NewChatService(opts.Generator, opts.ChatTimeout),
		Router:   NewRouter(),
	}, nil
}

// Navigate is the only way to change views. Entering checkout opens the
// checkout form; the chat follows the product being viewed.
func (a *App) Navigate(v View) View {

	v = a.Router.Navigate(v)

	switch view := v.(type) {
	case ProductDetailView:
		a.Chat.Focus(view.Product)
	case CheckoutView:
		a.Checkout.Begin()
		a.Chat.Unfocus()
	default:
		a.Chat.Unfocus()
	}

	return v
}

// NavigateTo resolves an external view request and navigates to it.
func (a *App) NavigateTo(req models.NavigateRequest) View {
	return a.Navigate(Resolve(req, a.Catalog.FindProduct))
}

func (a *App) Login(ctx context.Context, email string) (models.User, error) {
	return a.Session.Login(ctx, email)
}

// Logout ends the session and returns to the home view.
func (a *App) Logout(ctx context.Context) {
	a.Session.Logout(ctx)
	a.Navigate(HomeView{})
}

func (a *App) product(id string) (models.Product, error) {

	product, ok := a.Catalog.FindProduct(id)
	if !ok {
		return models.Product{}, errors.NotFoundError("Product not found")
	}

	return product, nil
}

func (a *App) AddToCart(ctx context.Context, productID string) (models.CartItem, error) {

	product, err := a.product(productID)
	if err != nil {
		return models.CartItem{}, err
	}

	return a.Cart.AddToCart(ctx, product)
}

func (a *App) ToggleWishlist(ctx context.Context, productID string) (bool, error) {

	product, err := a.product(productID)
	if err != nil {
		return false, err
	}

	return a.Wishlist.ToggleWishlist(ctx, product)
}

// PlaceOrder submits checkout and, on success, returns to the home view.
func (a *App) PlaceOrder(ctx context.Context, req *models.CheckoutRequest) (*models.Order, error) {

	order, err := a.Checkout.Submit(ctx, req)
	if err != nil {
		return nil, err
	}

	a.Navigate(HomeView{})

	return order, nil
}

// MyOrders is the logged-in user's order history, newest first.
func (a *App) MyOrders() ([]models.Order, error) {

	user, ok := a.Session.CurrentUser()
	if !ok {
		return nil, errors.ForbiddenError("Login required")
	}

	return a.Orders.OrdersForUser(user.ID), nil
}

// AdminOrders is every order plus revenue and the pending shipment count;
// admins only.
func (a *App) AdminOrders() (*models.AdminOrdersResponse, error) {

	user, ok := a.Session.CurrentUser()
	if !ok || !user.IsAdmin() {
		return nil, errors.ForbiddenError("Access denied")
	}

	orders := a.Orders.ListOrders()

	pending := 0
	for _, order := range orders {
		if order.Status == models.OrderStatusPending {
			pending++
		}
	}

	return &models.AdminOrdersResponse{
		Orders:  orders,
		Count:   len(orders),
		Pending: pending,
		Revenue: a.Orders.Revenue(),
	}, nil
}

func (a *App) FeaturedProducts() []models.Product {
	return a.Catalog.Featured(featuredCount)
}
