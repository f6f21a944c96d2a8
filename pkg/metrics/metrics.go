package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	HTTPRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "radiostation", Name: "http_requests_total", Help: "Number of handled HTTP requests by route, method and status."},
		[]string{"route", "method", "status"},
	)
	HTTPDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{Namespace: "radiostation", Name: "http_request_duration_seconds", Help: "HTTP request latency by route and method.", Buckets: prometheus.DefBuckets},
		[]string{"route", "method"},
	)
	RateLimitAllowed = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "radiostation", Name: "rate_limit_allowed_total", Help: "Number of allowed requests by limiter type."},
		[]string{"limiter"},
	)
	RateLimitRejected = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "radiostation", Name: "rate_limit_rejected_total", Help: "Number of rejected requests by limiter type."},
		[]string{"limiter"},
	)
	SeededDocuments = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "radiostation", Name: "seeded_documents_total", Help: "Starter documents inserted at startup by collection."},
		[]string{"collection"},
	)
)

func RegisterCollectors(reg prometheus.Registerer) {
	reg.MustRegister(HTTPRequests)
	reg.MustRegister(HTTPDuration)
	reg.MustRegister(RateLimitAllowed)
	reg.MustRegister(RateLimitRejected)
	reg.MustRegister(SeededDocuments)
}
