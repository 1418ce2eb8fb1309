// Package metrics defines the Prometheus instrumentation shared by the
// serve layer and the sync pipeline.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP request metrics
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dealsync_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status_code"},
	)

	DealsServed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dealsync_deals_served_total",
			Help: "Total number of deals returned to API clients",
		},
		[]string{"main_category"},
	)

	// Sync pipeline metrics
	SyncRunsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dealsync_sync_runs_total",
			Help: "Total number of sync passes",
		},
		[]string{"status"},
	)

	DealsFetched = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "dealsync_deals_fetched_total",
			Help: "Total number of feed listings fetched",
		},
	)

	DealsAdded = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "dealsync_deals_added_total",
			Help: "Total number of new deals merged into the collection",
		},
	)
)
