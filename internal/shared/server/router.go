package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"skincare-recommender/internal/catalog"
	"skincare-recommender/internal/matches"
	"skincare-recommender/internal/services/health"
	"skincare-recommender/internal/shared/config"
	"skincare-recommender/internal/shared/metrics"
	"skincare-recommender/internal/shared/server/middleware"
	"skincare-recommender/internal/shared/server/respond"
)

// RouterDeps holds the handlers registered on the router.
type RouterDeps struct {
	Config         config.Config
	Metrics        *metrics.Collector
	Health         *health.Service
	CatalogHandler *catalog.Handler
	MatchHandler   *matches.Handler
}

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	if deps.Config.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(deps.Metrics),
		middleware.Recovery(),
		middleware.CORS(deps.Config.CORSAllowOrigin),
		middleware.RateLimit(middleware.RateLimitConfig{
			Rules: map[string]middleware.RateLimitRule{
				"DEFAULT": {Rate: deps.Config.RateLimitRPS, Burst: deps.Config.RateLimitBurst},
			},
			GroupFor: rateLimitGroup,
		}),
	)

	r.GET("/metrics", deps.Metrics.Handler())

	api := r.Group("/api/v1")
	api.GET("/health", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, deps.Health.Status())
	})
	if deps.CatalogHandler != nil {
		deps.CatalogHandler.RegisterRoutes(api)
	}
	if deps.MatchHandler != nil {
		deps.MatchHandler.RegisterRoutes(api)
	}

	r.NoRoute(func(c *gin.Context) {
		respond.Error(c, http.StatusNotFound, respond.CodeNotFound, "route not found", nil)
	})

	return r
}

// Health and metrics probes are never limited.
func rateLimitGroup(c *gin.Context) string {
	switch c.FullPath() {
	case "/api/v1/health", "/metrics":
		return "PROBE"
	default:
		return "DEFAULT"
	}
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
