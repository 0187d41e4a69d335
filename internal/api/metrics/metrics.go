// Package metrics defines and registers all custom Prometheus metrics for
// the property-management API. It is the single source of truth for metric
// names, labels, and help strings.
//
// Metrics register with the default Prometheus registry at import time; the
// router exposes them on /metrics alongside the echoprometheus HTTP metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "property"

// ── Auth metrics ──────────────────────────────────────────────────────────────

// RegistrationsTotal counts successfully created accounts.
var RegistrationsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of accounts registered.",
	},
)

// LoginsTotal counts login attempts.
// Label:
//   - result: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// PasswordResetsTotal counts password-reset activity.
// Labels:
//   - step: "requested" (link asked for) or "completed" (token consumed)
//   - result: "success" or "failure"
var PasswordResetsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "password_resets_total",
		Help:      "Total number of password-reset steps, by step and result.",
	},
	[]string{"step", "result"},
)

// ── Record metrics ────────────────────────────────────────────────────────────

// TenantOpsTotal counts tenant-lease mutations.
// Label:
//   - op: "create", "update", or "delete"
var TenantOpsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "tenant_operations_total",
		Help:      "Total number of tenant-lease mutations, by operation.",
	},
	[]string{"op"},
)

// VacantShopOpsTotal counts vacant-shop listing mutations.
// Label:
//   - op: "create", "update", or "delete"
var VacantShopOpsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "vacant_shop_operations_total",
		Help:      "Total number of vacant-shop listing mutations, by operation.",
	},
	[]string{"op"},
)
