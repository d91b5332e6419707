package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/vortexgear/storefront/internal/api/handlers"
	"github.com/vortexgear/storefront/internal/api/middleware"
	"github.com/vortexgear/storefront/internal/cache"
	"github.com/vortexgear/storefront/internal/config"
	"github.com/vortexgear/storefront/internal/health"
	"github.com/vortexgear/storefront/internal/metrics"
	repository "github.com/vortexgear/storefront/internal/repositories"
	service "github.com/vortexgear/storefront/internal/services"
	"github.com/vortexgear/storefront/internal/storage"
	storageRedis "github.com/vortexgear/storefront/internal/storage/redis"
	"github.com/vortexgear/storefront/internal/storefront"
	"github.com/vortexgear/storefront/internal/tracing"
	"github.com/vortexgear/storefront/pkg/gemini"
	"github.com/vortexgear/storefront/pkg/sendGrid"
	"github.com/vortexgear/storefront/pkg/stripe"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

func main() {

	// Logger setup
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// Load config
	cfg := config.MustLoad()

	ctx := context.Background()

	// Tracing setup
	shutdownTracing, err := tracing.Init(ctx, cfg.Otel)
	if err != nil {
		slog.Error("❌ Error initializing tracing", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Payment provider
	authorizer, stripeClient, err := newAuthorizer(cfg)
	if err != nil {
		slog.Error("❌ Error configuring payments", slog.String("provider", cfg.Payment.Provider), slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Storage setup
	kv, err := storage.Open(ctx, cfg)
	if err != nil {
		slog.Error("❌ Error opening storage", slog.String("driver", cfg.Storage.Driver), slog.String("error", err.Error()))
		os.Exit(1)
	}

	defer func() {
		if err := kv.Close(); err != nil {
			slog.Error("⚠️ Error closing storage", slog.String("error", err.Error()))
		} else {
			slog.Info("✅ Storage closed")
		}
	}()

	endpoints := &health.Endpoints{Storage: kv, StripeClient: stripeClient}

	// Advisory chat; without an API key the assistant stays offline.
	var generator service.TextGenerator
	if g, err := gemini.NewGenerator(ctx, cfg.GenAI.APIKey, cfg.GenAI.Model); err != nil {
		slog.Warn("⚠️ AI assistant offline", slog.String("error", err.Error()))
	} else {
		generator = g
	}

	// Redis-only extras: reply cache and chat rate limiting.
	limitChat := func(next http.HandlerFunc) http.HandlerFunc { return next }
	if redisStore, ok := kv.(*storageRedis.Store); ok {
		if generator != nil {
			generator = service.NewCachedGenerator(generator, cache.NewRedisCache(redisStore.Client(), cfg.GenAI.CacheTTL), cfg.GenAI.CacheTTL)
		}
		rateLimiter := middleware.NewRateLimitMiddleware(repository.NewRateLimitRepo(redisStore.Client(), cfg.RateConfig), cfg.RateConfig.TrustProxy)
		limitChat = rateLimiter.Limit
	}

	var notifier service.OrderNotifier
	if cfg.SendGrid.APIKey != "" {
		notifier = sendGrid.NewOrderConfirmation(sendGrid.NewEmailService(cfg.SendGrid.APIKey, cfg.SendGrid.FromEmail, cfg.SendGrid.FromName))
	}

	app, err := storefront.New(ctx, kv, storefront.Options{
		CatalogSeed:    cfg.Catalog.Seed,
		CatalogVersion: cfg.Catalog.Version,
		Authorizer:     authorizer,
		Generator:      generator,
		Notifier:       notifier,
		PaymentTimeout: cfg.Payment.Timeout,
		ChatTimeout:    cfg.GenAI.Timeout,
	})
	if err != nil {
		slog.Error("❌ Error restoring storefront state", slog.String("error", err.Error()))
		os.Exit(1)
	}

	healthHandler, err := health.NewHealthHandler(cfg, endpoints)
	if err != nil {
		slog.Error("❌ Error creating health handler", slog.String("error", err.Error()))
		os.Exit(1)
	}

	productHandler := handlers.NewProductHandler(app)
	sessionHandler := handlers.NewSessionHandler(app)
	cartHandler := handlers.NewCartHandler(app)
	wishlistHandler := handlers.NewWishlistHandler(app)
	orderHandler := handlers.NewOrderHandler(app)
	checkoutHandler := handlers.NewCheckoutHandler(app)
	viewHandler := handlers.NewViewHandler(app)
	chatHandler := handlers.NewChatHandler(app)

	slog.Info("storefront initialized",
		slog.String("env", cfg.Env),
		slog.String("storage", cfg.Storage.Driver),
		slog.String("payment", cfg.Payment.Provider),
		slog.Int("products", len(app.Catalog.ListProducts())),
	)

	// Setup router
	routerMux := http.NewServeMux()
	routerMux.HandleFunc("GET /api/v1/products", productHandler.ListProducts())
	routerMux.HandleFunc("GET /api/v1/products/featured", productHandler.FeaturedProducts())
	routerMux.HandleFunc("GET /api/v1/products/{id}", productHandler.GetProduct())
	routerMux.HandleFunc("GET /api/v1/categories", productHandler.ListCategories())
	routerMux.HandleFunc("GET /api/v1/session", sessionHandler.GetSession())
	routerMux.HandleFunc("POST /api/v1/session", sessionHandler.Login())
	routerMux.HandleFunc("POST /api/v1/session/logout", sessionHandler.Logout())
	routerMux.HandleFunc("GET /api/v1/cart", cartHandler.GetCart())
	routerMux.HandleFunc("POST /api/v1/cart/items", cartHandler.AddItem())
	routerMux.HandleFunc("DELETE /api/v1/cart/items/{id}", cartHandler.RemoveItem())
	routerMux.HandleFunc("DELETE /api/v1/cart", cartHandler.ClearCart())
	routerMux.HandleFunc("GET /api/v1/wishlist", wishlistHandler.GetWishlist())
	routerMux.HandleFunc("POST /api/v1/wishlist/{id}", wishlistHandler.ToggleItem())
	routerMux.HandleFunc("GET /api/v1/orders", orderHandler.ListMyOrders())
	routerMux.HandleFunc("GET /api/v1/orders/{id}", orderHandler.GetOrder())
	routerMux.HandleFunc("GET /api/v1/admin/orders", orderHandler.ListAllOrders())
	routerMux.HandleFunc("GET /api/v1/checkout", checkoutHandler.GetStatus())
	routerMux.HandleFunc("POST /api/v1/checkout", checkoutHandler.PlaceOrder())
	routerMux.HandleFunc("GET /api/v1/view", viewHandler.GetView())
	routerMux.HandleFunc("PUT /api/v1/view", viewHandler.Navigate())
	routerMux.HandleFunc("GET /api/v1/chat", chatHandler.GetTranscript())
	routerMux.HandleFunc("POST /api/v1/chat/messages", limitChat(chatHandler.SendMessage()))
	routerMux.Handle("GET /metrics", metrics.Handler())
	routerMux.Handle("GET /health", healthHandler.Handler())

	// Middleware chaining
	var handler http.Handler = routerMux
	handler = metrics.Middleware(handler)
	handler = middleware.Logging(handler)
	handler = otelhttp.NewHandler(handler, "storefront")

	// Setup http server
	server := http.Server{
		Addr:    cfg.Addr,
		Handler: handler,
	}

	slog.Info("🚀 Server is starting...", slog.String("address", cfg.Addr))

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := server.ListenAndServe(); err != http.ErrServerClosed {
			slog.Error("❌ Failed to start server", slog.Any("error", err.Error()))
		}
	}()

	<-done

	slog.Warn("🛑 Shutdown signal received. Preparing to stop the server...")

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("⚠️ Server shutdown encountered an issue", slog.String("error", err.Error()))
	} else {
		slog.Info("✅ Server shut down gracefully. All connections closed.")
	}

	if err := shutdownTracing(shutdownCtx); err != nil {
		slog.Error("⚠️ Error flushing traces", slog.String("error", err.Error()))
	}
}

// newAuthorizer picks the payment backend. The stripe client is nil unless
// stripe is selected.
func newAuthorizer(cfg *config.Config) (service.PaymentAuthorizer, stripe.Client, error) {

	switch cfg.Payment.Provider {
	case "stripe":
		client := stripe.NewStripeClient(cfg.Stripe.APIKey)
		return stripe.NewAuthorizer(client, cfg.Stripe.Currency), client, nil
	case "simulated":
		return service.NewSimulatedAuthorizer(cfg.Payment.SimulatedLatency), nil, nil
	default:
		return nil, nil, fmt.Errorf("unknown payment provider %q", cfg.Payment.Provider)
	}
}
