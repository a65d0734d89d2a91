// Package metrics registers the Prometheus collectors for the VidTube API
// and exposes the /metrics endpoint plus the request-instrumentation
// middleware.
package metrics

import (
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/valyala/fasthttp/fasthttpadaptor"
)

// Metrics holds all Prometheus collectors for the API.
var Metrics = struct {
	RequestDuration  *prometheus.HistogramVec
	RequestsInFlight prometheus.Gauge
	TogglesTotal     *prometheus.CounterVec
	CacheHits        prometheus.Counter
	CacheMisses      prometheus.Counter
}{}

// Init registers all Prometheus metrics. Call once at startup.
func Init() {
	Metrics.RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "vidtube_api_request_duration_seconds",
			Help:    "HTTP request duration in seconds, by endpoint and method.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"endpoint", "method", "status"},
	)

	Metrics.RequestsInFlight = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "vidtube_requests_in_flight",
			Help: "Number of HTTP requests currently being served.",
		},
	)

	Metrics.TogglesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "vidtube_toggles_total",
			Help: "Total like/subscription toggles, by kind and outcome.",
		},
		[]string{"kind", "outcome"},
	)

	Metrics.CacheHits = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "vidtube_cache_hits_total",
			Help: "Total Redis cache hits.",
		},
	)

	Metrics.CacheMisses = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "vidtube_cache_misses_total",
			Help: "Total Redis cache misses.",
		},
	)

	prometheus.MustRegister(
		Metrics.RequestDuration,
		Metrics.RequestsInFlight,
		Metrics.TogglesTotal,
		Metrics.CacheHits,
		Metrics.CacheMisses,
	)
}

// ObserveToggle records a toggle outcome ("added" or "removed").
func ObserveToggle(kind string, added bool) {
	if Metrics.TogglesTotal == nil {
		return
	}
	outcome := "removed"
	if added {
		outcome = "added"
	}
	Metrics.TogglesTotal.WithLabelValues(kind, outcome).Inc()
}

// ObserveCache records a cache hit or miss.
func ObserveCache(hit bool) {
	if Metrics.CacheHits == nil {
		return
	}
	if hit {
		Metrics.CacheHits.Inc()
	} else {
		Metrics.CacheMisses.Inc()
	}
}

// Middleware records request duration and in-flight count.
func Middleware() fiber.Handler {
	return func(c fiber.Ctx) error {
		if c.Path() == "/metrics" {
			return c.Next()
		}

		// Copy path and method into owned strings before c.Next(). Fiber
		// returns slices backed by the fasthttp buffer, which handlers can
		// reuse.
		path := string([]byte(c.Path()))
		method := string([]byte(c.Method()))
		endpoint := sanitizeEndpoint(path)

		Metrics.RequestsInFlight.Inc()
		start := time.Now()

		err := c.Next()

		duration := time.Since(start).Seconds()
		status := strconv.Itoa(c.Response().StatusCode())

		Metrics.RequestDuration.WithLabelValues(endpoint, method, status).Observe(duration)
		Metrics.RequestsInFlight.Dec()

		return err
	}
}

// sanitizeEndpoint collapses ID path segments to avoid cardinality explosion.
func sanitizeEndpoint(path string) string {
	parts := strings.Split(path, "/")
	for i, p := range parts {
		if len(p) == 24 && isHex(p) {
			parts[i] = ":id"
		}
	}
	return strings.Join(parts, "/")
}

func isHex(s string) bool {
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9', r >= 'a' && r <= 'f', r >= 'A' && r <= 'F':
		default:
			return false
		}
	}
	return true
}

// Handler serves the Prometheus /metrics endpoint via Fiber.
func Handler() fiber.Handler {
	httpHandler := fasthttpadaptor.NewFastHTTPHandler(promhttp.Handler())
	return func(c fiber.Ctx) error {
		httpHandler(c.Context())
		return nil
	}
}
