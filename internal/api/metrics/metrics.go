// Package metrics defines and registers all custom Prometheus metrics for the
// SmartAdmin API. It is the single source of truth for metric names, labels,
// and help strings.
//
// Metrics register themselves with the default registry via promauto; the
// exposition endpoint is mounted by the router.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "smartadmin"

// RegistrationsTotal counts account registrations.
// Label:
//   - result: "created" or "conflict" (email already taken)
var RegistrationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of registration attempts, by result.",
	},
	[]string{"result"},
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

// ProjectsCreatedTotal counts newly created projects.
// Label:
//   - priority: "low", "medium", or "high"
var ProjectsCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "projects_created_total",
		Help:      "Total number of projects created, by priority.",
	},
	[]string{"priority"},
)

// ActivitiesRecordedTotal counts activity-feed entries persisted by the
// background dispatcher.
var ActivitiesRecordedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "activities_recorded_total",
		Help:      "Total number of activity feed entries written.",
	},
)

// ActivitiesDroppedTotal counts activity-feed entries discarded because the
// dispatcher buffer was full.
var ActivitiesDroppedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "activities_dropped_total",
		Help:      "Total number of activity feed entries dropped on a full buffer.",
	},
)

// DashboardCacheTotal counts dashboard snapshot cache lookups.
// Label:
//   - result: "hit" or "miss"
var DashboardCacheTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "dashboard_cache_total",
		Help:      "Total number of dashboard snapshot cache lookups, by result.",
	},
	[]string{"result"},
)
