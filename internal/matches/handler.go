package matches

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"skincare-recommender/internal/profile"
	"skincare-recommender/internal/shared/metrics"
	"skincare-recommender/internal/shared/server/middleware"
	"skincare-recommender/internal/shared/server/respond"
)

const maxBodySize = 64 << 10 // 64KB

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches recommendation routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/recommendations", h.recommend)
	rg.GET("/recommendations", h.recommendQuery)
}

func (h *Handler) recommend(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBodySize)

	var p profile.Profile
	if isJSON(c.ContentType()) {
		var req recommendRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			h.invalid(c, "invalid request body")
			return
		}
		p = profile.New(req.input())
	} else {
		if err := c.Request.ParseMultipartForm(maxBodySize); err != nil && !errors.Is(err, http.ErrNotMultipart) {
			h.invalid(c, "invalid form body")
			return
		}
		p = profile.FromForm(c.Request.PostForm)
	}
	h.respond(c, p)
}

func (h *Handler) recommendQuery(c *gin.Context) {
	h.respond(c, profile.FromForm(c.Request.URL.Query()))
}

func (h *Handler) respond(c *gin.Context, p profile.Profile) {
	limit, ok := parseLimit(c.Query("limit"))
	if !ok {
		h.invalid(c, "limit must be a non-negative integer")
		return
	}

	res, err := h.Svc.Recommend(c.Request.Context(), p, limit)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidInput):
			respond.ValidationError(c, err.Error(), nil)
		case errors.Is(err, ErrCatalogUnavailable):
			respond.Error(c, http.StatusServiceUnavailable, respond.CodeUnavailable, "catalog is not loaded", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, respond.CodeInternal, "failed to rank services", nil)
		}
		return
	}

	c.Set(middleware.ResultCountKey, len(res.Matches))
	c.Set(middleware.CatalogVersionKey, res.CatalogVersion)
	respond.OK(c, NewResponse(res))
}

// invalid rejects a request that never reached the ranking service.
func (h *Handler) invalid(c *gin.Context, msg string) {
	if h.Svc != nil {
		h.Svc.Metrics.ObserveRecommendation(metrics.OutcomeInvalid, 0, 0)
	}
	respond.ValidationError(c, msg, nil)
}

func parseLimit(raw string) (int, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, true
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}

func isJSON(contentType string) bool {
	return contentType == "application/json" || strings.HasSuffix(contentType, "+json")
}
