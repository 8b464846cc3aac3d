// internal/common/metrics/metrics.go
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "advisor_http_requests_total",
			Help: "Total number of HTTP requests handled",
		},
		[]string{"route", "method", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "advisor_http_request_duration_seconds",
			Help:    "Duration of HTTP request handling in seconds",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30, 60},
		},
		[]string{"route"},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "advisor_http_requests_in_flight",
			Help: "Number of HTTP requests currently being served",
		},
	)

	RecommendationsServed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "advisor_recommendations_served_total",
			Help: "Career recommendation responses by source",
		},
		[]string{"source"},
	)

	ChatRepliesServed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "advisor_chat_replies_served_total",
			Help: "Chat advisor replies by source",
		},
		[]string{"source"},
	)

	ModelCallDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "advisor_model_call_duration_seconds",
			Help:    "Duration of generative model calls in seconds",
			Buckets: []float64{0.25, 0.5, 1, 2, 5, 10, 20, 30, 60},
		},
		[]string{"provider", "outcome"},
	)

	ModelCallFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "advisor_model_call_failures_total",
			Help: "Failed generative model calls by reason",
		},
		[]string{"provider", "reason"},
	)

	CacheLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "advisor_cache_lookups_total",
			Help: "Recommendation cache lookups by result",
		},
		[]string{"result"},
	)
)
