package monitor

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "image_api"

const (
	OutcomeSuccess        = "success"
	OutcomeTransportError = "transport_error"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"method", "path", "status", "class"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			// the placeholder provider alone sleeps for two seconds
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2, 3, 5, 10, 30},
		},
		[]string{"method", "path"},
	)

	concurrentRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "http_requests_in_flight",
			Help:      "Number of HTTP requests currently being served",
		},
	)

	upstreamCallsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "upstream_calls_total",
			Help:      "Image provider calls by provider and outcome",
		},
		[]string{"provider", "outcome"},
	)
)

func RecordRequest(method string, path string, statusCode int, latency time.Duration) {
	httpRequestsTotal.WithLabelValues(method, path, strconv.Itoa(statusCode), classifyStatus(statusCode)).Inc()
	httpRequestDuration.WithLabelValues(method, path).Observe(latency.Seconds())
}

func IncrementConcurrent() {
	concurrentRequests.Inc()
}

func DecrementConcurrent() {
	concurrentRequests.Dec()
}

// RecordUpstreamCall counts one provider invocation. outcome is
// OutcomeSuccess or the error type the call failed with.
func RecordUpstreamCall(provider string, outcome string) {
	upstreamCallsTotal.WithLabelValues(provider, outcome).Inc()
}

// Handler exposes the default registry for scraping.
func Handler() http.Handler {
	return promhttp.Handler()
}

func classifyStatus(statusCode int) string {
	switch {
	case statusCode >= 200 && statusCode < 400:
		return "success"
	case statusCode == 401 || statusCode == 403 || statusCode == 429:
		return "policy_error"
	case statusCode >= 400 && statusCode < 500:
		return "explicit_error"
	case statusCode >= 500:
		return "implicit_error"
	default:
		return "unknown"
	}
}
