package middleware

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"skincare-recommender/internal/shared/metrics"
	"skincare-recommender/internal/shared/telemetry"
)

// Context keys handlers may set to enrich the request log.
const (
	ResultCountKey    = "resultCount"
	CatalogVersionKey = "catalogVersion"
)

// Logging emits a structured log per request and counts it in m.
func Logging(m *metrics.Collector) gin.HandlerFunc {
	return func(c *gin.Context) {
		if strings.EqualFold(c.Request.Method, "OPTIONS") {
			c.Next()
			return
		}

		start := time.Now()
		c.Next()
		latency := time.Since(start)
		status := c.Writer.Status()
		m.ObserveHTTP(c.FullPath(), status)

		fields := map[string]any{
			"request_id":  RequestIDFromContext(c),
			"method":      c.Request.Method,
			"path":        c.Request.URL.Path,
			"route":       c.FullPath(),
			"status":      status,
			"duration_ms": float64(latency.Microseconds()) / 1000.0,
			"client_ip":   c.ClientIP(),
			"user_agent":  c.Request.UserAgent(),
		}
		if n, ok := c.Get(ResultCountKey); ok {
			fields["result_count"] = n
		}
		if v, ok := c.Get(CatalogVersionKey); ok {
			fields["catalog_version"] = v
		}
		telemetry.Info("request.complete", fields)
	}
}
