// Package metrics defines and registers all custom Prometheus metrics for the
// KejaPlug rental API. It is the single source of truth for metric names,
// labels, and help strings.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "kejaplug"

// ── Property metrics ──────────────────────────────────────────────────────────

// PropertiesCreatedTotal counts newly created listings.
// Label:
//   - type: the free-text property type as submitted (e.g. "Apartment")
var PropertiesCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "properties_created_total",
		Help:      "Total number of properties created, by property type.",
	},
	[]string{"type"},
)

// PropertyStatusChangesTotal counts landlord-initiated status transitions.
// Label:
//   - status: the new status applied (e.g. "Rented")
var PropertyStatusChangesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "property_status_changes_total",
		Help:      "Total number of property status changes, by new status.",
	},
	[]string{"status"},
)

// ── Fan-out metrics ───────────────────────────────────────────────────────────

// NotificationsFanoutTotal counts notifications handed to the dispatcher.
// Label:
//   - type: notification type ("new_listing", "tenant_interest", "system")
var NotificationsFanoutTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "notifications_fanout_total",
		Help:      "Total number of notifications enqueued for fan-out, by type.",
	},
	[]string{"type"},
)

// NotificationsFanoutErrorsTotal counts notification inserts that failed.
// Fan-out is best-effort, so these are dropped after logging.
var NotificationsFanoutErrorsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "notifications_fanout_errors_total",
		Help:      "Total number of notification inserts that failed during fan-out.",
	},
)

// FanoutQueueDepth tracks the current number of notifications waiting in each
// dispatcher worker channel.
// Label:
//   - worker_id: numeric worker index (e.g. "0", "1", …)
var FanoutQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "fanout_queue_depth",
		Help:      "Current number of notifications pending in each dispatcher worker channel.",
	},
	[]string{"worker_id"},
)

// ApplicationsSubmittedTotal counts tenant interest submissions that reached
// the owning landlord's feed.
var ApplicationsSubmittedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "applications_submitted_total",
		Help:      "Total number of tenant applications submitted.",
	},
)

// ── Cache metrics ─────────────────────────────────────────────────────────────

// ListingCacheTotal counts public listing cache lookups.
// Label:
//   - result: "hit" or "miss"
var ListingCacheTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "listing_cache_total",
		Help:      "Total number of listing cache lookups, labelled by result (hit/miss).",
	},
	[]string{"result"},
)
