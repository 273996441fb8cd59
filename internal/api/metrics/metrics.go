// Package metrics defines and registers all custom Prometheus metrics for the
// marketplace API. It is the single source of truth for metric names, labels,
// and help strings; everything registers with the default registry at import
// time via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "marketplace"

// ── Auth metrics ──────────────────────────────────────────────────────────────

// SignupsTotal counts successful registrations.
// Label:
//   - role: the role assigned to the new identity ("buyer", "seller", "agent")
var SignupsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "signups_total",
		Help:      "Total number of successful registrations, by assigned role.",
	},
	[]string{"role"},
)

// SigninsTotal counts sign-in attempts.
// Label:
//   - result: "success" or "failure" (unknown email and wrong password are
//     deliberately indistinguishable, so both count as "failure")
var SigninsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "signins_total",
		Help:      "Total number of sign-in attempts, by result.",
	},
	[]string{"result"},
)

// GuardRedirectsTotal counts route-guard redirects.
// Label:
//   - reason: "auth_page", "missing_token", or "wrong_role"
var GuardRedirectsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "guard_redirects_total",
		Help:      "Total number of requests redirected by the route guard, by reason.",
	},
	[]string{"reason"},
)

// ── Listing metrics ───────────────────────────────────────────────────────────

// ListingsCreatedTotal counts newly published listings.
// Label:
//   - type: "house", "apartment", "condo", or "land"
var ListingsCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "listings_created_total",
		Help:      "Total number of listings published, by property type.",
	},
	[]string{"type"},
)

// FeaturedCacheTotal counts featured-listings cache lookups.
// Label:
//   - result: "hit" (served from Redis) or "miss" (fell through to MongoDB)
var FeaturedCacheTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "featured_cache_total",
		Help:      "Total number of featured-listings cache lookups, by result.",
	},
	[]string{"result"},
)

// ── View pipeline metrics ─────────────────────────────────────────────────────

// ViewsProcessedTotal counts view events that completed processing.
// Label:
//   - source: the reporting surface (e.g. "web", "api")
var ViewsProcessedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "views_processed_total",
		Help:      "Total number of listing view events successfully processed.",
	},
	[]string{"source"},
)

// ViewsErrorsTotal counts view events that failed processing.
// Label:
//   - reason: short description of the failure (e.g. "increment_failed")
var ViewsErrorsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "views_errors_total",
		Help:      "Total number of listing view events that failed processing.",
	},
	[]string{"reason"},
)

// ViewQueueDepth tracks the number of view events waiting in each worker channel.
// Label:
//   - worker_id: numeric worker index (e.g. "0", "1", …)
var ViewQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "view_queue_depth",
		Help:      "Current number of view events pending in each dispatcher worker channel.",
	},
	[]string{"worker_id"},
)

// ViewProcessingDuration measures how long a single view event takes to
// process end-to-end.
var ViewProcessingDuration = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "view_processing_duration_seconds",
		Help:      "Duration of view event processing from dequeue to persistence.",
		Buckets:   prometheus.DefBuckets,
	},
)
