package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/seeforge-labs/seeforge-gateway/internal/catalog/service"
)

type Handler struct {
	catalog *service.Service
}

func NewHandler(catalog *service.Service) *Handler {
	return &Handler{catalog: catalog}
}

// Register attaches catalog routes to the API group.
func (h *Handler) Register(rg *gin.RouterGroup) {
	rg.GET("/templates", h.templates)
	rg.GET("/catalog", h.catalogData)
}

func (h *Handler) templates(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"ok": true, "templates": h.catalog.Templates()})
}

func (h *Handler) catalogData(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"ok":              true,
		"features":        h.catalog.Features(),
		"addons":          h.catalog.Addons(),
		"frontend_stacks": h.catalog.FrontendStacks(),
		"backend_stacks":  h.catalog.BackendStacks(),
		"tiers":           h.catalog.Tiers(),
	})
}
