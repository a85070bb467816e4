package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/seeforge-labs/seeforge-gateway/internal/session/domain"
	"github.com/seeforge-labs/seeforge-gateway/internal/session/service"
)

type Handler struct {
	sessions *service.Service
}

func NewHandler(sessions *service.Service) *Handler {
	return &Handler{sessions: sessions}
}

// Register attaches session routes to the given router group.
func (h *Handler) Register(rg *gin.RouterGroup) {
	rg.POST("", h.create)
	rg.GET("/:id", h.get)
}

func (h *Handler) create(c *gin.Context) {
	sessionID, state, err := h.sessions.Start(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"ok": true, "session_id": sessionID, "state": state})
}

func (h *Handler) get(c *gin.Context) {
	state, err := h.sessions.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrSessionNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": "session not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "state": state, "pricing_fresh": state.PricingFresh()})
}
