// Package metrics defines and registers all custom Prometheus metrics for the
// meal planner API. It is the single source of truth for metric names,
// labels, and help strings.
//
// Metrics are registered with the default Prometheus registry on package
// initialisation through promauto; /metrics serves that registry.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "mealplanner"

// ── Registration metrics ──────────────────────────────────────────────────────

// WizardTransitionsTotal counts wizard operations.
// Labels:
//   - action: "start", "next", "back", "submit", "resume", "abandon"
//   - result: "ok", "invalid" (field validation failed) or "rejected"
var WizardTransitionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "wizard_transitions_total",
		Help:      "Total number of registration wizard operations, by action and result.",
	},
	[]string{"action", "result"},
)

// RegistrationsTotal counts submit outcomes.
// Label:
//   - outcome: "success", "invalid_email", "duplicate", "rate_limited", "error"
var RegistrationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of account creation attempts from the wizard, by outcome.",
	},
	[]string{"outcome"},
)

// ProfileWriteBackTotal counts profile writes handed to the write-back queue.
// Label:
//   - result: "recovered", "exhausted" (gave up after retries) or "dropped" (queue full)
var ProfileWriteBackTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "profile_writeback_total",
		Help:      "Total number of deferred profile writes, by final result.",
	},
	[]string{"result"},
)

// ProfileWriteBackQueueDepth tracks pending deferred profile writes per worker.
var ProfileWriteBackQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "profile_writeback_queue_depth",
		Help:      "Current number of profile writes pending in each write-back worker.",
	},
	[]string{"worker_id"},
)

// ── Generation metrics ────────────────────────────────────────────────────────

// GenerationsTotal counts generation requests.
// Labels:
//   - kind: "meal", "plan" or "image"
//   - result: "ok" or "error"
var GenerationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "generations_total",
		Help:      "Total number of generation requests, by kind and result.",
	},
	[]string{"kind", "result"},
)

// GenerationDuration measures the round trip to the generation provider.
var GenerationDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "generation_duration_seconds",
		Help:      "Duration of generation requests including provider latency.",
		Buckets:   []float64{.25, .5, 1, 2.5, 5, 10, 20, 40, 60},
	},
	[]string{"kind"},
)

// ── Admin metrics ─────────────────────────────────────────────────────────────

// ChangeFeedSubscribers tracks open admin change-feed connections.
var ChangeFeedSubscribers = promauto.NewGauge(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "change_feed_subscribers",
		Help:      "Current number of admin clients streaming profile changes.",
	},
)
