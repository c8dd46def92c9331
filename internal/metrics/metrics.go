// Package metrics holds the prometheus collectors of both services.
//
// Collectors are registered on a registry owned by the Metrics value, never on the
// global default registry.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "ordering"

// Catalog lookup outcomes.
const (
	OutcomeSuccess  = "success"
	OutcomeNotFound = "not_found"
	OutcomeError    = "error"
)

// Metrics is the set of collectors exposed at /metrics.
type Metrics struct {
	registry *prometheus.Registry
	service  string

	HTTPRequestsTotal     *prometheus.CounterVec
	HTTPRequestDuration   *prometheus.HistogramVec
	CatalogRequestLatency *prometheus.HistogramVec
	OrdersByStatus        *prometheus.GaugeVec
}

// New creates the collectors for service and registers them, together with the
// Go runtime and process collectors, on a fresh registry.
func New(service string) *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		service:  service,

		HTTPRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Total number of HTTP requests",
			},
			[]string{"service", "method", "route", "status"},
		),
		HTTPRequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request duration in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"service", "method", "route"},
		),
		CatalogRequestLatency: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "catalog_request_duration_seconds",
				Help:      "Duration of catalog lookups in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"operation", "outcome"},
		),
		OrdersByStatus: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "orders_by_status",
				Help:      "Number of stored orders per status",
			},
			[]string{"status"},
		),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.CatalogRequestLatency,
		m.OrdersByStatus,
	)

	return m
}

// Registry returns the registry the collectors are registered on.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Middleware records count and duration of every request. The route label is the
// registered path template, so /api/v1/orders/:id is one series for all ids.
func (m *Metrics) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)
			if err != nil {
				c.Error(err)
			}

			route := c.Path()
			if route == "" {
				route = "unmatched"
			}
			method := c.Request().Method
			status := strconv.Itoa(c.Response().Status)

			m.HTTPRequestsTotal.WithLabelValues(m.service, method, route, status).Inc()
			m.HTTPRequestDuration.WithLabelValues(m.service, method, route).Observe(time.Since(start).Seconds())

			return nil
		}
	}
}

// ObserveCatalogRequest records the duration of one catalog lookup.
func (m *Metrics) ObserveCatalogRequest(operation, outcome string, duration time.Duration) {
	m.CatalogRequestLatency.WithLabelValues(operation, outcome).Observe(duration.Seconds())
}

// SetOrdersByStatus replaces the gauge values. Statuses missing from counts are
// removed so a status that no longer has orders stops being reported.
func (m *Metrics) SetOrdersByStatus(counts map[string]int64) {
	m.OrdersByStatus.Reset()
	for status, count := range counts {
		m.OrdersByStatus.WithLabelValues(status).Set(float64(count))
	}
}
