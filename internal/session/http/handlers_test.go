package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seeforge-labs/seeforge-gateway/internal/session/repository"
	"github.com/seeforge-labs/seeforge-gateway/internal/session/service"
)

func setupRouter(t *testing.T) (*gin.Engine, *service.Service) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	sessions := service.NewService(repository.NewSessionRepository(client, time.Hour))

	r := gin.New()
	NewHandler(sessions).Register(r.Group("/api/v1/sessions"))
	return r, sessions
}

func TestCreateSession(t *testing.T) {
	r, _ := setupRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/sessions", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)

	var body struct {
		OK        bool   `json:"ok"`
		SessionID string `json:"session_id"`
		State     struct {
			CurrentStep   string `json:"current_step"`
			ProjectConfig struct {
				Platform string `json:"platform"`
				Tier     string `json:"tier"`
			} `json:"project_config"`
		} `json:"state"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))

	assert.True(t, body.OK)
	assert.NotEmpty(t, body.SessionID)
	assert.Equal(t, "landing", body.State.CurrentStep)
	assert.Equal(t, "web", body.State.ProjectConfig.Platform)
	assert.Equal(t, "Starter", body.State.ProjectConfig.Tier)
}

func TestGetSession(t *testing.T) {
	r, sessions := setupRouter(t)

	sessionID, _, err := sessions.Start(context.Background())
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/sessions/"+sessionID, nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		OK           bool `json:"ok"`
		PricingFresh bool `json:"pricing_fresh"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.True(t, body.OK)
	assert.False(t, body.PricingFresh)
}

func TestGetSession_NotFound(t *testing.T) {
	r, _ := setupRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/sessions/does-not-exist", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusNotFound, w.Code)

	var body struct {
		OK    bool   `json:"ok"`
		Error string `json:"error"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.False(t, body.OK)
	assert.Equal(t, "session not found", body.Error)
}
