package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"net/http"
)

var (
	// Счётчик решений gate-а по входящим токенам
	AuthDecisions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "auth_decisions_total",
			Help: "Total number of authentication gate decisions",
		},
		[]string{"outcome"}, // authenticated, invalid, blacklisted, store_error
	)

	// Счётчик решений rate limiter-а
	RateLimitDecisions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ratelimit_decisions_total",
			Help: "Total number of rate limiter decisions",
		},
		[]string{"outcome"}, // allowed, denied, fail_open
	)
)

func InitMetrics() {
	prometheus.MustRegister(AuthDecisions, RateLimitDecisions)
}

func MetricsHandler() http.Handler {
	return promhttp.Handler()
}
