package metrics

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Recommendation outcomes.
const (
	OutcomeMatched = "matched"
	OutcomeEmpty   = "empty"
	OutcomeInvalid = "invalid"
)

// Collector holds the service metrics on its own registry. A nil *Collector
// is valid and records nothing.
type Collector struct {
	Registry *prometheus.Registry

	RecommendationsTotal   *prometheus.CounterVec
	RecommendationDuration prometheus.Histogram
	RecommendationResults  prometheus.Histogram
	CatalogServices        prometheus.Gauge
	HTTPRequestsTotal      *prometheus.CounterVec
}

// New registers all metrics on a fresh registry.
func New() *Collector {
	reg := prometheus.NewRegistry()

	c := &Collector{
		Registry: reg,

		RecommendationsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "skincare",
			Name:      "recommendations_total",
			Help:      "Recommendation requests by outcome.",
		}, []string{"outcome"}),

		RecommendationDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "skincare",
			Name:      "recommendation_duration_seconds",
			Help:      "Time spent ranking the catalog for one profile.",
			Buckets:   []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1},
		}),

		RecommendationResults: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "skincare",
			Name:      "recommendation_results",
			Help:      "Number of services returned per recommendation.",
			Buckets:   []float64{0, 1, 3, 5, 10, 25, 50, 100},
		}),

		CatalogServices: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "skincare",
			Name:      "catalog_services",
			Help:      "Services in the loaded catalog.",
		}),

		HTTPRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "skincare",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "HTTP requests by route and status class.",
		}, []string{"route", "status"}),
	}

	reg.MustRegister(
		c.RecommendationsTotal,
		c.RecommendationDuration,
		c.RecommendationResults,
		c.CatalogServices,
		c.HTTPRequestsTotal,
	)
	return c
}

// ObserveRecommendation records one ranking call.
func (c *Collector) ObserveRecommendation(outcome string, elapsed time.Duration, results int) {
	if c == nil {
		return
	}
	c.RecommendationsTotal.WithLabelValues(outcome).Inc()
	if outcome == OutcomeInvalid {
		return
	}
	c.RecommendationDuration.Observe(elapsed.Seconds())
	c.RecommendationResults.Observe(float64(results))
}

// SetCatalogServices records the size of the loaded catalog.
func (c *Collector) SetCatalogServices(n int) {
	if c == nil {
		return
	}
	c.CatalogServices.Set(float64(n))
}

// ObserveHTTP counts one finished request.
func (c *Collector) ObserveHTTP(route string, status int) {
	if c == nil {
		return
	}
	if route == "" {
		route = "unmatched"
	}
	c.HTTPRequestsTotal.WithLabelValues(route, statusClass(status)).Inc()
}

// Handler exposes the registry in Prometheus text format.
func (c *Collector) Handler() gin.HandlerFunc {
	reg := prometheus.NewRegistry()
	if c != nil {
		reg = c.Registry
	}
	return gin.WrapH(promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
}

func statusClass(status int) string {
	switch {
	case status >= 500:
		return "5xx"
	case status >= 400:
		return "4xx"
	case status >= 300:
		return "3xx"
	default:
		return "2xx"
	}
}
