// Package metrics collects and exposes Prometheus metrics for the service.
package metrics

import (
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"dashboard_backend/internal/feature/analytics/usecase"
)

// Collector registers and updates the service's Prometheus metrics.
type Collector struct {
	httpRequests   *prometheus.CounterVec
	portfolioViews *prometheus.CounterVec
}

var _ usecase.ViewCounter = (*Collector)(nil)

// NewCollector creates a Collector and registers its metrics on reg.
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "dashboard_http_requests_total",
			Help: "HTTP requests by method, route and status code.",
		}, []string{"method", "route", "status"}),
		portfolioViews: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "dashboard_portfolio_views_total",
			Help: "Portfolio detail views by portfolio id.",
		}, []string{"portfolio_id"}),
	}

	reg.MustRegister(
		c.httpRequests,
		c.portfolioViews,
	)

	return c
}

// RecordHTTPRequest records one served request. route is the registered
// route pattern, not the raw URL, so cardinality stays bounded.
func (c *Collector) RecordHTTPRequest(method, route string, status int) {
	if route == "" {
		route = "unmatched"
	}
	c.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
}

// IncPortfolioView records one portfolio detail view.
func (c *Collector) IncPortfolioView(portfolioID uint) {
	c.portfolioViews.WithLabelValues(strconv.FormatUint(uint64(portfolioID), 10)).Inc()
}

// Handler returns the HTTP handler Prometheus scrapes.
func Handler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}
