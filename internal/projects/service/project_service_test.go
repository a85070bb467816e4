package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	catalogservice "github.com/seeforge-labs/seeforge-gateway/internal/catalog/service"
	navdomain "github.com/seeforge-labs/seeforge-gateway/internal/navigation/domain"
	pricingservice "github.com/seeforge-labs/seeforge-gateway/internal/pricing/service"
	sessiondomain "github.com/seeforge-labs/seeforge-gateway/internal/session/domain"
	sessionrepository "github.com/seeforge-labs/seeforge-gateway/internal/session/repository"
	sessionservice "github.com/seeforge-labs/seeforge-gateway/internal/session/service"
	"github.com/seeforge-labs/seeforge-gateway/internal/upstream"
	wizarddomain "github.com/seeforge-labs/seeforge-gateway/internal/wizard/domain"
	wizardrepository "github.com/seeforge-labs/seeforge-gateway/internal/wizard/repository"
	wizardservice "github.com/seeforge-labs/seeforge-gateway/internal/wizard/service"
)

func setupProjects(t *testing.T, upstreamURL string) (*Service, *sessionservice.Service, *wizardservice.Service, string) {
	t.Helper()

	mr := miniredis.RunT(t)
	redisClient := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { redisClient.Close() })

	sessions := sessionservice.NewService(sessionrepository.NewSessionRepository(redisClient, time.Hour))
	steps := wizardrepository.NewStepRepository(redisClient, time.Hour)
	catalog := catalogservice.New()
	engine := pricingservice.NewEngine(nil, pricingservice.NewLocalStrategy(catalog))
	wizard := wizardservice.NewService(sessions, steps, catalog, engine)
	client := upstream.NewClient(upstreamURL, "demo-token", upstream.Options{})

	svc := NewService(sessions, wizard, engine, client)

	sessionID, _, err := sessions.Start(context.Background())
	require.NoError(t, err)

	return svc, sessions, wizard, sessionID
}

func configureProject(t *testing.T, sessions *sessionservice.Service, sessionID string) {
	t.Helper()

	name := "My Shop"
	features := []string{"Payments"}
	_, err := sessions.Dispatch(context.Background(), sessionID, sessiondomain.UpdateProjectConfig{
		Patch: sessiondomain.ConfigPatch{Name: &name, Features: &features},
	})
	require.NoError(t, err)
}

func TestSubmit_Success(t *testing.T) {
	var gotAuth string
	var gotConfig sessiondomain.ProjectConfig
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/projects", r.URL.Path)
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotConfig))
		w.WriteHeader(http.StatusCreated)
	}))
	defer server.Close()

	svc, sessions, wizard, sessionID := setupProjects(t, server.URL)
	ctx := context.Background()
	configureProject(t, sessions, sessionID)

	result, err := svc.Submit(ctx, sessionID, "user-token")
	require.NoError(t, err)

	assert.True(t, result.Submitted)
	assert.Equal(t, navdomain.DestDashboard, result.Destination)
	assert.Equal(t, "Bearer user-token", gotAuth)
	assert.Equal(t, "My Shop", gotConfig.Name)

	// The result carries the final pricing the upstream saw.
	require.NotNil(t, result.State.Pricing)
	assert.Equal(t, 3500, result.State.Pricing.TotalCost)

	// A successful submission clears the session and the wizard.
	state, err := sessions.Get(ctx, sessionID)
	require.NoError(t, err)
	assert.Empty(t, state.ProjectConfig.Name)
	assert.Nil(t, state.Pricing)

	step, err := wizard.Current(ctx, sessionID)
	require.NoError(t, err)
	assert.Equal(t, wizarddomain.FirstStep, step)
}

func TestSubmit_UpstreamFailureStillRoutesForward(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	svc, sessions, _, sessionID := setupProjects(t, server.URL)
	ctx := context.Background()
	configureProject(t, sessions, sessionID)

	result, err := svc.Submit(ctx, sessionID, "")
	require.NoError(t, err)

	assert.False(t, result.Submitted)
	assert.Equal(t, navdomain.DestDashboard, result.Destination)

	// A failed submission keeps the session so the visitor can retry.
	state, err := sessions.Get(ctx, sessionID)
	require.NoError(t, err)
	assert.Equal(t, "My Shop", state.ProjectConfig.Name)
	require.NotNil(t, state.Pricing)
}

func TestSubmit_UnknownSession(t *testing.T) {
	svc, _, _, _ := setupProjects(t, "http://127.0.0.1:1")

	_, err := svc.Submit(context.Background(), "nope", "")
	assert.ErrorIs(t, err, sessiondomain.ErrSessionNotFound)
}

func TestList_DegradesToEmpty(t *testing.T) {
	t.Run("upstream returns projects", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"projects":[{"id":"1"},{"id":"2"}]}`))
		}))
		defer server.Close()

		svc, _, _, _ := setupProjects(t, server.URL)
		assert.Len(t, svc.List(context.Background(), ""), 2)
	})

	t.Run("upstream down", func(t *testing.T) {
		svc, _, _, _ := setupProjects(t, "http://127.0.0.1:1")

		projects := svc.List(context.Background(), "")
		assert.NotNil(t, projects)
		assert.Empty(t, projects)
	})
}
