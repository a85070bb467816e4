package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/seeforge-labs/seeforge-gateway/internal/projects/service"
	sessiondomain "github.com/seeforge-labs/seeforge-gateway/internal/session/domain"
)

type Handler struct {
	projects *service.Service
}

func NewHandler(projects *service.Service) *Handler {
	return &Handler{projects: projects}
}

// Register attaches the project listing route to the API group.
func (h *Handler) Register(rg *gin.RouterGroup) {
	rg.GET("/projects", h.list)
}

// RegisterSessionSubroutes attaches the submission route under the sessions group.
func (h *Handler) RegisterSessionSubroutes(rg *gin.RouterGroup) {
	rg.POST("/:id/submit", h.submit)
}

func (h *Handler) submit(c *gin.Context) {
	result, err := h.projects.Submit(c.Request.Context(), c.Param("id"), bearerToken(c))
	if err != nil {
		if errors.Is(err, sessiondomain.ErrSessionNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": "session not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"ok":          true,
		"submitted":   result.Submitted,
		"destination": result.Destination,
		"pricing":     result.State.Pricing,
	})
}

func (h *Handler) list(c *gin.Context) {
	items := h.projects.List(c.Request.Context(), bearerToken(c))
	c.JSON(http.StatusOK, gin.H{"ok": true, "projects": items})
}

// bearerToken extracts the Bearer token from the Authorization header.
func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimSpace(header[7:])
	}
	return ""
}
