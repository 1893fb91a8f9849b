// Package metrics declares the domain Prometheus metrics of the sales API.
// HTTP request metrics come from the echoprometheus middleware instead.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "sales"

// LoginsTotal counts login attempts.
// Label result: "success", "invalid" or "error".
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts by result.",
	},
	[]string{"result"},
)

// SignupsTotal counts signup attempts.
// Label result: "success", "duplicate" or "error".
var SignupsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "signups_total",
		Help:      "Total number of signup attempts by result.",
	},
	[]string{"result"},
)

// AuthzDecisionsTotal counts role gate decisions per route.
// Labels:
//   - route: the registered route path
//   - decision: "allow", "deny" or "unauthenticated"
var AuthzDecisionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "authz_decisions_total",
		Help:      "Total number of role gate decisions.",
	},
	[]string{"route", "decision"},
)

// RoleAssignmentsTotal counts assign-roles calls by outcome kind.
var RoleAssignmentsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "role_assignments_total",
		Help:      "Total number of role assignment requests by outcome.",
	},
	[]string{"outcome"},
)

// RateLimitedTotal counts requests rejected by the login throttle.
var RateLimitedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "rate_limited_total",
		Help:      "Total number of requests rejected by rate limiting.",
	},
	[]string{"scope"},
)

// RateLimitErrorsTotal counts limiter backend failures (the request is let through).
var RateLimitErrorsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "rate_limit_errors_total",
		Help:      "Total number of rate limiter backend failures.",
	},
)
