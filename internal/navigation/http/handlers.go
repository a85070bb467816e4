package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	catalogservice "github.com/seeforge-labs/seeforge-gateway/internal/catalog/service"
	"github.com/seeforge-labs/seeforge-gateway/internal/navigation/service"
	sessiondomain "github.com/seeforge-labs/seeforge-gateway/internal/session/domain"
)

type Handler struct {
	policy  *service.Policy
	catalog *catalogservice.Service
}

func NewHandler(policy *service.Policy, catalog *catalogservice.Service) *Handler {
	return &Handler{policy: policy, catalog: catalog}
}

// RegisterSessionSubroutes attaches navigation routes under the sessions group.
func (h *Handler) RegisterSessionSubroutes(rg *gin.RouterGroup) {
	rg.POST("/:id/navigate", h.navigate)
	rg.POST("/:id/navigate/from-pricing", h.fromPricing)
}

type navigateReq struct {
	Target     string `json:"target"`
	Reset      bool   `json:"reset"`
	TemplateID string `json:"template_id"`
}

func (h *Handler) navigate(c *gin.Context) {
	var req navigateReq
	if err := c.ShouldBindJSON(&req); err != nil || req.Target == "" {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}

	opts := service.Options{Reset: req.Reset}
	if req.TemplateID != "" {
		template, ok := h.catalog.TemplateByID(req.TemplateID)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "unknown template"})
			return
		}
		opts.Template = &template
	}

	dest, err := h.policy.NavigateToWorkflow(c.Request.Context(), c.Param("id"), req.Target, opts)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "destination": dest})
}

func (h *Handler) fromPricing(c *gin.Context) {
	dest, err := h.policy.NavigateFromPricing(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "destination": dest})
}

func respondError(c *gin.Context, err error) {
	if errors.Is(err, sessiondomain.ErrSessionNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": "session not found"})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
}
