// Package metrics defines and registers all custom Prometheus metrics for the
// storefront API. It is the single source of truth for metric names, labels,
// and help strings.
//
// Metrics are registered with the default Prometheus registry on import and
// exposed by the /metrics endpoint.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "storefront"

// ── Access metrics ────────────────────────────────────────────────────────────

// GuardDecisionsTotal counts route guard outcomes.
// Labels:
//   - capability: the first capability the route requires, or "session"
//   - decision: "allow", "deny" or "pending"
var GuardDecisionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "guard_decisions_total",
		Help:      "Total number of route guard decisions, by capability and outcome.",
	},
	[]string{"capability", "decision"},
)

// SessionsResolvedTotal counts session resolutions.
// Label:
//   - outcome: "authenticated", "anonymous" or "loading"
var SessionsResolvedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "sessions_resolved_total",
		Help:      "Total number of resolved sessions, by outcome.",
	},
	[]string{"outcome"},
)

// LoginsTotal counts login attempts.
// Label:
//   - result: "success", "invalid_credentials" or "error"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// ── Referral metrics ──────────────────────────────────────────────────────────

// ReferralVisitsTotal counts visits persisted by the visit dispatcher.
var ReferralVisitsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "referral_visits_total",
		Help:      "Total number of referral visits recorded.",
	},
)

// ReferralVisitsDroppedTotal counts visits discarded because the queue was full.
var ReferralVisitsDroppedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "referral_visits_dropped_total",
		Help:      "Total number of referral visits dropped on a full dispatcher queue.",
	},
)

// ReferralCodesCreatedTotal counts newly created referral codes.
// Label:
//   - origin: "custom" or "generated"
var ReferralCodesCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "referral_codes_created_total",
		Help:      "Total number of referral codes created, by origin.",
	},
	[]string{"origin"},
)
