// Package metrics exposes the Prometheus instrumentation served at /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequests counts requests by method, route and status class.
	HTTPRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "HTTP requests processed",
		},
		[]string{"method", "route", "status"},
	)

	// HTTPDuration observes request latency per route.
	HTTPDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	// JobsProcessed counts async jobs by queue and outcome.
	JobsProcessed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "worker_jobs_processed_total",
			Help: "Async jobs processed by the worker pool",
		},
		[]string{"queue", "outcome"},
	)

	// SheetPushRetries counts scheduled spreadsheet push retries.
	SheetPushRetries = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "sheet_push_retries_total",
			Help: "Spreadsheet pushes scheduled for retry",
		},
	)
)
