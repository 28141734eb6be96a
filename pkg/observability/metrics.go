package observability

import (
	"net/http"
	"strconv"
	"time"

	"mhtrends-backend/application/queries/bus"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector holds all Prometheus metrics for the application
type Collector struct {
	registry *prometheus.Registry

	// HTTP metrics
	HTTPRequests *prometheus.CounterVec
	HTTPDuration *prometheus.HistogramVec

	// Query bus metrics
	QueryCount    *prometheus.CounterVec
	QueryErrors   *prometheus.CounterVec
	QuerySuccess  *prometheus.CounterVec
	QueryDuration *prometheus.HistogramVec

	// Dashboard metrics
	SeriesPoints prometheus.Counter
}

var _ bus.Metrics = (*Collector)(nil)

// NewCollector creates a collector with its own registry, so tests and
// multiple containers never collide on registration.
func NewCollector(namespace string) *Collector {
	registry := prometheus.NewRegistry()

	c := &Collector{
		registry: registry,
		HTTPRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Total number of HTTP requests",
			},
			[]string{"method", "route", "status"},
		),
		HTTPDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request duration in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
		QueryCount: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "queries_total",
				Help:      "Total number of queries dispatched",
			},
			[]string{"query"},
		),
		QueryErrors: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "query_errors_total",
				Help:      "Total number of failed queries",
			},
			[]string{"query"},
		),
		QuerySuccess: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "query_success_total",
				Help:      "Total number of successful queries",
			},
			[]string{"query"},
		),
		QueryDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "query_duration_seconds",
				Help:      "Query execution duration in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"query"},
		),
		SeriesPoints: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "series_points_generated_total",
				Help:      "Total number of time series points served",
			},
		),
	}

	registry.MustRegister(
		c.HTTPRequests,
		c.HTTPDuration,
		c.QueryCount,
		c.QueryErrors,
		c.QuerySuccess,
		c.QueryDuration,
		c.SeriesPoints,
	)

	return c
}

// Increment increments a query counter by name
func (c *Collector) Increment(metric, label string) {
	switch metric {
	case "query_count":
		c.QueryCount.WithLabelValues(label).Inc()
	case "query_errors":
		c.QueryErrors.WithLabelValues(label).Inc()
	case "query_success":
		c.QuerySuccess.WithLabelValues(label).Inc()
	}
}

// StartTimer starts a duration observation; only query_duration is recorded
func (c *Collector) StartTimer(metric, label string) bus.Timer {
	start := time.Now()
	return timerFunc(func() {
		if metric == "query_duration" {
			c.QueryDuration.WithLabelValues(label).Observe(time.Since(start).Seconds())
		}
	})
}

// ObserveHTTP records one served request
func (c *Collector) ObserveHTTP(method, route string, status int, duration time.Duration) {
	c.HTTPRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	c.HTTPDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// RecordSeriesPoints counts the points of one served dashboard
func (c *Collector) RecordSeriesPoints(n int) {
	c.SeriesPoints.Add(float64(n))
}

// Handler exposes the registry in the Prometheus text format
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{Registry: c.registry})
}

type timerFunc func()

func (f timerFunc) Stop() { f() }
