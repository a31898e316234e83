package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "chatextract_http_requests_total",
			Help: "Total HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "chatextract_http_request_duration_seconds",
			Help:    "HTTP request duration",
			Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
		},
		[]string{"method", "path"},
	)

	GateDenials = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "chatextract_gate_denials_total",
			Help: "Requests denied by the chat user gate",
		},
	)

	ImportsQueued = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "chatextract_imports_queued_total",
			Help: "Import jobs accepted for processing",
		},
	)

	ImportsFinished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "chatextract_imports_finished_total",
			Help: "Import jobs that reached a terminal status",
		},
		[]string{"status"},
	)
)
