package catalog

import (
	"github.com/gin-gonic/gin"

	"skincare-recommender/internal/shared/server/respond"
)

// Handler serves the read-only catalog.
type Handler struct {
	Catalog *Catalog
}

// NewHandler constructs a Handler.
func NewHandler(cat *Catalog) *Handler {
	return &Handler{Catalog: cat}
}

// RegisterRoutes attaches catalog routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/catalog/options", h.options)
	rg.GET("/catalog/services", h.services)
}

func (h *Handler) options(c *gin.Context) {
	respond.OK(c, OptionsResponse{
		Version: h.Catalog.Version(),
		Options: h.Catalog.Options(),
	})
}

func (h *Handler) services(c *gin.Context) {
	services := h.Catalog.Services()
	out := make([]ServiceResponse, 0, len(services))
	for _, svc := range services {
		out = append(out, toServiceResponse(svc))
	}
	respond.OK(c, ServicesResponse{
		Version:  h.Catalog.Version(),
		Count:    len(out),
		Services: out,
	})
}
