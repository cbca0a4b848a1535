// Package metrics defines and registers all custom Prometheus metrics for
// jobtrack. It is the single source of truth for metric names, labels, and
// help strings. Metrics register with the default registry at import time
// via promauto; the router exposes them on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "jobtrack"

// SignupsTotal counts successfully created accounts.
var SignupsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "signups_total",
		Help:      "Total number of accounts created.",
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

// ApplicationsCreatedTotal counts newly recorded job applications.
// Label:
//   - status: the status label the record was created with (e.g. "Applied")
var ApplicationsCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "applications_created_total",
		Help:      "Total number of job applications recorded, by status.",
	},
	[]string{"status"},
)

// ApplicationsUpdatedTotal counts edits to existing records.
var ApplicationsUpdatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "applications_updated_total",
		Help:      "Total number of job-application edits.",
	},
)

// ApplicationsDeletedTotal counts deleted records.
var ApplicationsDeletedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "applications_deleted_total",
		Help:      "Total number of job applications deleted.",
	},
)
