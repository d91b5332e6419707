package service

import (
	"context"
	stderrors "errors"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/vortexgear/storefront/internal/errors"
	"github.com/vortexgear/storefront/internal/metrics"
	"github.com/vortexgear/storefront/internal/models"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

const widgetNotReady = "Payment system not ready. Please re-enter your card details."

var tracer = otel.Tracer("github.com/vortexgear/storefront/internal/services")

// OrderNotifier sends the order confirmation after a successful checkout.
type OrderNotifier interface {
	SendOrderConfirmation(ctx context.Context, to, name string, order *models.Order) error
}

// CheckoutService drives one checkout at a time:
//
//	idle -> collecting_input -> awaiting_authorization -> succeeded | failed
//
// Failed checkouts can be resubmitted. No lock is held while the authorizer runs.
type CheckoutService struct {
	mu        sync.Mutex
	state     models.CheckoutState
	lastError string
	lastOrder string

	cart       *CartService
	orders     *OrderService
	session    *SessionService
	authorizer PaymentAuthorizer
	notifier   OrderNotifier
	validator  *validator.Validate
	timeout    time.Duration
	now        func() time.Time
}

// NewCheckoutService wires the flow. notifier may be nil.
func NewCheckoutService(cart *CartService, orders *OrderService, session *SessionService, authorizer PaymentAuthorizer, notifier OrderNotifier, timeout time.Duration) *CheckoutService {
	return &CheckoutService{
		state:      models.CheckoutStateIdle,
		cart:       cart,
		orders:     orders,
		session:    session,
		authorizer: authorizer,
		notifier:   notifier,
		validator:  validator.New(),
		timeout:    timeout,
		now:        time.Now,
	}
}

// Begin opens the checkout form. It is ignored while an authorization is in flight.
func (s *CheckoutService) Begin() {

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == models.CheckoutStateAwaitingAuthorization {
		return
	}

	s.state = models.CheckoutStateCollectingInput
	s.lastError = ""
}

func (s *CheckoutService) Status() models.CheckoutStatus {

	s.mu.Lock()
	status := models.CheckoutStatus{
		State:   s.state,
		Error:   s.lastError,
		OrderID: s.lastOrder,
	}
	s.mu.Unlock()

	status.Total = s.cart.CartTotal()

	return status
}

// Submit validates the form, authorizes the cart total and records the order.
// Invalid input leaves the flow collecting input. A declined or unreachable
// authorization moves it to failed with the cart untouched.
func (s *CheckoutService) Submit(ctx context.Context, req *models.CheckoutRequest) (*models.Order, error) {

	s.mu.Lock()

	if s.state == models.CheckoutStateAwaitingAuthorization {
		s.mu.Unlock()
		return nil, errors.ConflictError("A payment is already being authorized")
	}

	s.state = models.CheckoutStateCollectingInput
	s.lastError = ""

	if err := s.validator.Struct(req); err != nil {
		s.mu.Unlock()

		var validationErrs validator.ValidationErrors
		if stderrors.As(err, &validationErrs) {
			return nil, errors.FromValidation(validationErrs)
		}

		return nil, errors.ValidationError("Invalid checkout details").WithError(err)
	}

	items, total := s.cart.Snapshot()
	if len(items) == 0 {
		s.mu.Unlock()
		return nil, errors.BadRequestError("Your cart is empty")
	}

	if strings.TrimSpace(req.PaymentMethod) == "" {
		s.state = models.CheckoutStateFailed
		s.lastError = widgetNotReady
		s.mu.Unlock()

		metrics.CheckoutOutcomesTotal.WithLabelValues(metrics.OutcomeWidgetMissing).Inc()

		return nil, errors.PaymentFailedError(widgetNotReady)
	}

	s.state = models.CheckoutStateAwaitingAuthorization
	s.mu.Unlock()

	// The authorization outlives the request that started it.
	authCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.timeout)
	defer cancel()

	authCtx, span := tracer.Start(authCtx, "checkout.authorize")
	span.SetAttributes(attribute.Float64("checkout.total", total), attribute.Int("checkout.lines", len(items)))
	defer span.End()

	logger := slog.Default().With(slog.Float64("amount", total))

	start := time.Now()
	result, err := s.authorizer.Authorize(authCtx, req.PaymentMethod, total)
	metrics.PaymentAuthorizationDuration.Observe(time.Since(start).Seconds())

	if message, ok := declineMessage(result, err); !ok {
		logger.Warn("Payment authorization failed", slog.String("reason", message))
		span.SetStatus(codes.Error, message)

		s.fail(message, metrics.OutcomeFailed)

		return nil, errors.PaymentFailedError(message).WithError(err)
	}

	order := models.Order{
		ID:     result.TransactionID,
		UserID: models.GuestUserID,
		Items:  items,
		Total:  total,
		Status: models.OrderStatusPending,
		Date:   s.now().UTC().Format(time.RFC3339),
	}

	if order.ID == "" {
		order.ID = "ord_" + strings.ReplaceAll(uuid.NewString(), "-", "")[:12]
	}

	if user, ok := s.session.CurrentUser(); ok {
		order.UserID = user.ID
	}

	span.SetAttributes(attribute.String("order.id", order.ID))

	// TODO: reconcile payments authorized here whose order fails to record; today only the log line links them.
	if err := s.orders.CreateOrder(authCtx, order); err != nil {
		logger.Error("Payment authorized but order was not recorded",
			slog.String("transaction_id", result.TransactionID),
			slog.String("error", err.Error()),
		)
		span.SetStatus(codes.Error, "order not recorded")

		message := "Payment was taken but the order could not be saved. Reference: " + order.ID
		s.fail(message, metrics.OutcomeRecordFailed)

		return nil, errors.StorageError(message).WithError(err)
	}

	if err := s.cart.ClearCart(authCtx); err != nil {
		logger.Error("Failed to clear cart after checkout", slog.String("order_id", order.ID), slog.String("error", err.Error()))
	}

	s.mu.Lock()
	s.state = models.CheckoutStateSucceeded
	s.lastOrder = order.ID
	s.mu.Unlock()

	metrics.CheckoutOutcomesTotal.WithLabelValues(metrics.OutcomeSucceeded).Inc()
	logger.Info("Order placed", slog.String("order_id", order.ID), slog.String("user_id", order.UserID))

	if s.notifier != nil {
		name := strings.TrimSpace(req.Shipping.FirstName + " " + req.Shipping.LastName)
		if err := s.notifier.SendOrderConfirmation(authCtx, req.Shipping.Email, name, &order); err != nil {
			logger.Warn("Failed to send order confirmation", slog.String("order_id", order.ID), slog.String("error", err.Error()))
		}
	}

	return &order, nil
}

func (s *CheckoutService) fail(message, outcome string) {

	s.mu.Lock()
	s.state = models.CheckoutStateFailed
	s.lastError = message
	s.mu.Unlock()

	metrics.CheckoutOutcomesTotal.WithLabelValues(outcome).Inc()
}

// declineMessage reports ok=true only for a successful authorization.
func declineMessage(result *models.PaymentResult, err error) (string, bool) {

	if err != nil {
		var appErr *errors.AppError
		if stderrors.As(err, &appErr) && appErr.Message != "" {
			return appErr.Message, false
		}
		return DefaultPaymentFailure, false
	}

	if result == nil || !result.Success {
		if result != nil && result.Error != "" {
			return result.Error, false
		}
		return DefaultPaymentFailure, false
	}

	return "", true
}
