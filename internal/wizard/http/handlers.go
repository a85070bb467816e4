package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	sessiondomain "github.com/seeforge-labs/seeforge-gateway/internal/session/domain"
	"github.com/seeforge-labs/seeforge-gateway/internal/wizard/domain"
	"github.com/seeforge-labs/seeforge-gateway/internal/wizard/service"
)

type Handler struct {
	wizard *service.Service
}

func NewHandler(wizard *service.Service) *Handler {
	return &Handler{wizard: wizard}
}

// RegisterSessionSubroutes attaches the wizard routes under the sessions group.
func (h *Handler) RegisterSessionSubroutes(rg *gin.RouterGroup) {
	wg := rg.Group("/:id/wizard")
	wg.GET("", h.current)
	wg.POST("/next", h.next)
	wg.POST("/back", h.back)
	wg.PUT("/basics", h.updateBasics)
	wg.PUT("/frontend", h.setFrontend)
	wg.PUT("/backend", h.setBackend)
	wg.PUT("/ui-template", h.setUITemplate)
	wg.POST("/features/toggle", h.toggleFeature)
	wg.POST("/addons/toggle", h.toggleAddon)
	wg.PUT("/options", h.updateOptions)
}

func (h *Handler) current(c *gin.Context) {
	step, err := h.wizard.Current(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "step": int(step), "step_name": step.String()})
}

func (h *Handler) next(c *gin.Context) {
	step, state, err := h.wizard.Next(c.Request.Context(), c.Param("id"))
	if err != nil {
		var verr *domain.ValidationError
		if errors.As(err, &verr) {
			c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": verr.Error(), "fields": verr.Fields, "step": int(step)})
			return
		}
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "step": int(step), "step_name": step.String(), "state": state})
}

func (h *Handler) back(c *gin.Context) {
	step, err := h.wizard.Back(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "step": int(step), "step_name": step.String()})
}

type basicsReq struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Category    *string `json:"category"`
	Platform    *string `json:"platform"`
}

func (h *Handler) updateBasics(c *gin.Context) {
	var req basicsReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}

	state, err := h.wizard.UpdateBasics(c.Request.Context(), c.Param("id"), service.BasicsUpdate{
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
		Platform:    req.Platform,
	})
	h.respondState(c, state, err)
}

type stackReq struct {
	StackID string `json:"stack_id"`
}

func (h *Handler) setFrontend(c *gin.Context) {
	var req stackReq
	if err := c.ShouldBindJSON(&req); err != nil || req.StackID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}

	state, err := h.wizard.SetFrontend(c.Request.Context(), c.Param("id"), req.StackID)
	h.respondState(c, state, err)
}

func (h *Handler) setBackend(c *gin.Context) {
	var req stackReq
	if err := c.ShouldBindJSON(&req); err != nil || req.StackID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}

	state, err := h.wizard.SetBackend(c.Request.Context(), c.Param("id"), req.StackID)
	h.respondState(c, state, err)
}

type uiTemplateReq struct {
	TemplateID              string `json:"template_id"`
	CustomDesignDescription string `json:"custom_design_description"`
}

func (h *Handler) setUITemplate(c *gin.Context) {
	var req uiTemplateReq
	if err := c.ShouldBindJSON(&req); err != nil || req.TemplateID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}

	state, err := h.wizard.SetUITemplate(c.Request.Context(), c.Param("id"), req.TemplateID, req.CustomDesignDescription)
	h.respondState(c, state, err)
}

type featureToggleReq struct {
	FeatureID string `json:"feature_id"`
}

func (h *Handler) toggleFeature(c *gin.Context) {
	var req featureToggleReq
	if err := c.ShouldBindJSON(&req); err != nil || req.FeatureID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}

	state, err := h.wizard.ToggleFeature(c.Request.Context(), c.Param("id"), req.FeatureID)
	h.respondState(c, state, err)
}

type addonToggleReq struct {
	AddonID string `json:"addon_id"`
}

func (h *Handler) toggleAddon(c *gin.Context) {
	var req addonToggleReq
	if err := c.ShouldBindJSON(&req); err != nil || req.AddonID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}

	state, err := h.wizard.ToggleAddon(c.Request.Context(), c.Param("id"), req.AddonID)
	h.respondState(c, state, err)
}

type optionsReq struct {
	GithubRepoURL    *string `json:"github_repo_url"`
	IsStudent        *bool   `json:"is_student"`
	DeploymentOption *string `json:"deployment_option"`
}

func (h *Handler) updateOptions(c *gin.Context) {
	var req optionsReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}

	state, err := h.wizard.UpdateOptions(c.Request.Context(), c.Param("id"), service.OptionsUpdate{
		GithubRepoURL:    req.GithubRepoURL,
		IsStudent:        req.IsStudent,
		DeploymentOption: req.DeploymentOption,
	})
	h.respondState(c, state, err)
}

func (h *Handler) respondState(c *gin.Context, state interface{}, err error) {
	if err != nil {
		var verr *domain.ValidationError
		if errors.As(err, &verr) {
			c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": verr.Error(), "fields": verr.Fields})
			return
		}
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "state": state})
}

func respondError(c *gin.Context, err error) {
	if errors.Is(err, sessiondomain.ErrSessionNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": "session not found"})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
}
