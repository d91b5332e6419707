package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	OrdersCreatedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "storefront_orders_created_total",
			Help: "Total number of orders appended to the ledger.",
		},
	)

	CheckoutOutcomesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "storefront_checkout_outcomes_total",
			Help: "Checkout submissions by outcome.",
		},
		[]string{"outcome"},
	)

	PaymentAuthorizationDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "storefront_payment_authorization_seconds",
			Help:    "Time spent waiting on the payment authorizer.",
			Buckets: prometheus.DefBuckets,
		},
	)

	ChatRepliesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "storefront_chat_replies_total",
			Help: "Advisory chat replies by outcome.",
		},
		[]string{"outcome"},
	)

	CartItems = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "storefront_cart_items",
			Help: "Units currently in the cart.",
		},
	)
)

const (
	OutcomeSucceeded     = "succeeded"
	OutcomeFailed        = "failed"
	OutcomeWidgetMissing = "widget_not_ready"
	OutcomeRecordFailed  = "record_failed"

	OutcomeReply   = "reply"
	OutcomeOffline = "offline"
	OutcomeError   = "error"
	OutcomeEmpty   = "empty"
)
