// Package metrics wires prometheus instrumentation for the storefront.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the service counters and the HTTP histogram.
type Metrics struct {
	registry *prometheus.Registry

	OrdersPlaced     prometheus.Counter
	OrderAmount      prometheus.Counter
	ReviewsSubmitted prometheus.Counter

	requestDuration *prometheus.HistogramVec
}

// New registers the storefront metrics on a fresh registry.
func New() *Metrics {
	registry := prometheus.NewRegistry()
	factory := promauto.With(registry)

	return &Metrics{
		registry: registry,
		OrdersPlaced: factory.NewCounter(prometheus.CounterOpts{
			Name: "storefront_orders_placed_total",
			Help: "Orders successfully placed.",
		}),
		OrderAmount: factory.NewCounter(prometheus.CounterOpts{
			Name: "storefront_order_amount_total",
			Help: "Sum of grand totals of placed orders.",
		}),
		ReviewsSubmitted: factory.NewCounter(prometheus.CounterOpts{
			Name: "storefront_reviews_submitted_total",
			Help: "User reviews submitted.",
		}),
		requestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "storefront_http_request_duration_seconds",
			Help:    "HTTP request latency by route.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route", "status"}),
	}
}

// GinMiddleware records a latency sample per request.
func (m *Metrics) GinMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		m.requestDuration.WithLabelValues(
			c.Request.Method,
			route,
			strconv.Itoa(c.Writer.Status()),
		).Observe(time.Since(start).Seconds())
	}
}

// Handler serves the /metrics endpoint.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
