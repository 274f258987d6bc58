package observability

import (
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	registerOnce sync.Once

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "webcall",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total HTTP requests.",
		},
		[]string{"method", "path", "status"},
	)
	httpDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "webcall",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request duration in seconds.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)
	provisionResults = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "webcall",
			Subsystem: "provision",
			Name:      "results_total",
			Help:      "Call credential provisioning outcomes.",
		},
		[]string{"kind", "outcome"},
	)
	sessionTransitions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "webcall",
			Subsystem: "session",
			Name:      "transitions_total",
			Help:      "Call session status transitions.",
		},
		[]string{"from", "to"},
	)
	liveSessions = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "webcall",
			Subsystem: "session",
			Name:      "connections",
			Help:      "Open UI session connections.",
		},
	)
)

// RegisterMetrics registers the collectors with the default registry. Safe to call more than once.
func RegisterMetrics() {
	registerOnce.Do(func() {
		prometheus.MustRegister(httpRequests, httpDuration, provisionResults, sessionTransitions, liveSessions)
	})
}

// MetricsHandler serves the Prometheus scrape endpoint.
func MetricsHandler() gin.HandlerFunc {
	RegisterMetrics()
	h := promhttp.Handler()
	return func(c *gin.Context) {
		h.ServeHTTP(c.Writer, c.Request)
	}
}

func ObserveHTTPRequest(method, path string, status int, latency time.Duration) {
	labels := prometheus.Labels{
		"method": method,
		"path":   path,
		"status": strconv.Itoa(status),
	}
	httpRequests.With(labels).Inc()
	httpDuration.With(labels).Observe(latency.Seconds())
}

// RecordProvision counts a provisioning attempt. kind is "web" or "phone".
func RecordProvision(kind, outcome string) {
	provisionResults.WithLabelValues(kind, outcome).Inc()
}

func RecordSessionTransition(from, to string) {
	sessionTransitions.WithLabelValues(from, to).Inc()
}

func SessionConnectionOpened() { liveSessions.Inc() }

func SessionConnectionClosed() { liveSessions.Dec() }
