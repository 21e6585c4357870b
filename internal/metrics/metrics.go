// Package metrics defines the Prometheus metrics for the AcademiTrend
// API. All metrics use the "academitrend" prefix.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "academitrend"

var (
	// RequestsTotal counts HTTP requests by route and status code.
	RequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "http_requests_total",
		Help:      "Total HTTP requests, by route and status code.",
	}, []string{"route", "status"})

	// RequestDuration tracks request handling latency by route.
	RequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_seconds",
		Help:      "HTTP request handling duration in seconds.",
		Buckets:   []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1.0, 5.0},
	}, []string{"route"})

	// ForecastErrors counts assembler failures reported to clients.
	ForecastErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "forecast_errors_total",
		Help:      "Total forecast assembler errors, by assembler.",
	}, []string{"assembler"})
)
