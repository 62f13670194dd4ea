// ABOUTME: Prometheus instrumentation middleware for HTTP requests
// ABOUTME: Records per-route request counts and latency histograms

package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	requestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "studytime_http_requests_total",
			Help: "Total HTTP requests by route and status code.",
		},
		[]string{"route", "status"},
	)

	requestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "studytime_http_request_duration_seconds",
			Help:    "HTTP request latency by route.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"route"},
	)
)

// Metrics returns middleware that records request count and latency for a
// fixed route label. The label is the registered route pattern, not the raw
// request path, to keep cardinality bounded.
func Metrics(route string) func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			wrapped := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}

			next(wrapped, r)

			requestsTotal.WithLabelValues(route, strconv.Itoa(wrapped.statusCode)).Inc()
			requestDuration.WithLabelValues(route).Observe(time.Since(start).Seconds())
		}
	}
}
