// Package metrics defines and registers the service's Prometheus metrics.
// It is the single source of truth for metric names, labels, and help strings.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "halladmin"

// LoginsTotal counts authentication attempts by outcome.
// Labels:
//   - result: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// UsersCreatedTotal counts created user accounts by role.
var UsersCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "users_created_total",
		Help:      "Total number of user accounts created, by role.",
	},
	[]string{"role"},
)

// AuditEventsTotal counts audit events accepted for recording, by action tag.
var AuditEventsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "audit_events_total",
		Help:      "Total number of audit events enqueued, by action.",
	},
	[]string{"action"},
)

// AuditDroppedTotal counts audit events dropped because the recorder queue
// was full or the store rejected the batch. Audit is best-effort; this is
// the only place those losses are visible.
var AuditDroppedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "audit_events_dropped_total",
		Help:      "Total number of audit events dropped by the best-effort recorder.",
	},
)

// HallRecordsCreatedTotal counts hall data records created, by hall number.
var HallRecordsCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "hall_records_created_total",
		Help:      "Total number of hall data records created, by hall.",
	},
	[]string{"hall"},
)
