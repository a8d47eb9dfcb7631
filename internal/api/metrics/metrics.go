// Package metrics defines and registers all custom Prometheus metrics for
// the commerce API. It is the single source of truth for metric names,
// labels, and help strings.
//
// The promauto vars register themselves with the default registry at
// package init; the router exposes them on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "commerce"

// CartOperationsTotal counts cart mutations by outcome.
// Labels:
//   - operation: "add", "update", "remove"
//   - result: "ok", "rejected" (domain rule), "error"
var CartOperationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "cart_operations_total",
		Help:      "Total number of cart mutations, by operation and result.",
	},
	[]string{"operation", "result"},
)

// InsufficientStockTotal counts cart requests rejected because the requested
// quantity exceeded available stock.
var InsufficientStockTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "insufficient_stock_total",
		Help:      "Total number of cart requests rejected for insufficient stock.",
	},
)

// CheckoutsTotal counts checkout attempts.
// Label:
//   - result: "ok", "duplicate", "inconsistent", "error"
var CheckoutsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "checkouts_total",
		Help:      "Total number of checkout attempts, by result.",
	},
	[]string{"result"},
)

// CheckoutAmount observes the order total of successful checkouts.
var CheckoutAmount = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "checkout_amount",
		Help:      "Distribution of successful checkout totals.",
		Buckets:   prometheus.ExponentialBuckets(1, 4, 8), // 1 … 16384
	},
)

// GoodsMutationsTotal counts catalog writes.
// Label:
//   - operation: "create", "update", "delete"
var GoodsMutationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "goods_mutations_total",
		Help:      "Total number of catalog mutations, by operation.",
	},
	[]string{"operation"},
)
