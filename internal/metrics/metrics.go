// Package metrics exposes stock levels and HTTP traffic to Prometheus.
package metrics

import (
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rogerio-castellano/inventory-store/internal/inventory"
)

// Collector owns a private registry so several servers can coexist in tests.
type Collector struct {
	registry *prometheus.Registry

	items     prometheus.Gauge
	units     prometheus.Gauge
	lowStock  prometheus.Gauge
	mutations *prometheus.CounterVec

	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
}

// New creates a Collector with Go and process collectors registered.
func New() *Collector {
	registry := prometheus.NewRegistry()
	registry.MustRegister(prometheus.NewGoCollector())
	registry.MustRegister(prometheus.NewProcessCollector(prometheus.ProcessCollectorOpts{}))

	c := &Collector{
		registry: registry,
		items: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "inventory_items",
			Help: "Number of distinct items in stock",
		}),
		units: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "inventory_units",
			Help: "Sum of all item quantities",
		}),
		lowStock: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "inventory_low_stock_items",
			Help: "Number of items below the low stock threshold",
		}),
		mutations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "inventory_mutations_total",
				Help: "Stock mutations by operation and result",
			},
			[]string{"operation", "result"},
		),
		requestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total HTTP requests",
			},
			[]string{"method", "endpoint", "status"},
		),
		requestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP request latency",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "endpoint"},
		),
	}

	registry.MustRegister(c.items, c.units, c.lowStock, c.mutations, c.requestsTotal, c.requestDuration)
	return c
}

// ObserveInventory updates the stock gauges from inv.
func (c *Collector) ObserveInventory(inv *inventory.Inventory, threshold int) {
	c.items.Set(float64(inv.Len()))
	c.units.Set(float64(inv.TotalUnits()))
	c.lowStock.Set(float64(len(inv.Below(threshold))))
}

// CountMutation increments the mutation counter.
func (c *Collector) CountMutation(operation, result string) {
	c.mutations.WithLabelValues(operation, result).Inc()
}

// Middleware records the count and latency of every request by route pattern.
func (c *Collector) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		endpoint := r.URL.Path
		if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
			endpoint = rctx.RoutePattern()
		}
		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}

		c.requestsTotal.WithLabelValues(r.Method, endpoint, fmt.Sprintf("%d", status)).Inc()
		c.requestDuration.WithLabelValues(r.Method, endpoint).Observe(time.Since(start).Seconds())
	})
}

// Handler serves the registry in the Prometheus exposition format.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}
