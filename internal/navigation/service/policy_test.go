package service

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	catalogdomain "github.com/seeforge-labs/seeforge-gateway/internal/catalog/domain"
	catalogservice "github.com/seeforge-labs/seeforge-gateway/internal/catalog/service"
	"github.com/seeforge-labs/seeforge-gateway/internal/navigation/domain"
	pricingservice "github.com/seeforge-labs/seeforge-gateway/internal/pricing/service"
	sessiondomain "github.com/seeforge-labs/seeforge-gateway/internal/session/domain"
	sessionrepository "github.com/seeforge-labs/seeforge-gateway/internal/session/repository"
	sessionservice "github.com/seeforge-labs/seeforge-gateway/internal/session/service"
	wizardrepository "github.com/seeforge-labs/seeforge-gateway/internal/wizard/repository"
	wizardservice "github.com/seeforge-labs/seeforge-gateway/internal/wizard/service"
)

func setupPolicy(t *testing.T) (*Policy, *sessionservice.Service, *wizardservice.Service, string) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	sessions := sessionservice.NewService(sessionrepository.NewSessionRepository(client, time.Hour))
	steps := wizardrepository.NewStepRepository(client, time.Hour)
	catalog := catalogservice.New()
	engine := pricingservice.NewEngine(nil, pricingservice.NewLocalStrategy(catalog))
	wizard := wizardservice.NewService(sessions, steps, catalog, engine)

	sessionID, _, err := sessions.Start(context.Background())
	require.NoError(t, err)

	return NewPolicy(sessions, wizard), sessions, wizard, sessionID
}

func nameSession(t *testing.T, sessions *sessionservice.Service, sessionID, name string) {
	t.Helper()

	_, err := sessions.Dispatch(context.Background(), sessionID, sessiondomain.UpdateProjectConfig{
		Patch: sessiondomain.ConfigPatch{Name: &name},
	})
	require.NoError(t, err)
}

func TestNavigateToWorkflow_Templates(t *testing.T) {
	policy, sessions, _, sessionID := setupPolicy(t)
	ctx := context.Background()

	dest, err := policy.NavigateToWorkflow(ctx, sessionID, domain.TargetTemplates, Options{})
	require.NoError(t, err)
	assert.Equal(t, domain.DestTemplates, dest)

	state, err := sessions.Get(ctx, sessionID)
	require.NoError(t, err)
	assert.Equal(t, sessiondomain.PhaseTemplates, state.CurrentStep)
}

func TestNavigateToWorkflow_NewProjectWithTemplate(t *testing.T) {
	policy, sessions, _, sessionID := setupPolicy(t)
	ctx := context.Background()

	template := catalogdomain.Template{
		ID:        "1",
		Name:      "E-commerce Starter",
		Category:  "ecommerce",
		TechStack: catalogdomain.TechStack{Frontend: "react-tailwind", Backend: "nodejs-express"},
	}

	dest, err := policy.NavigateToWorkflow(ctx, sessionID, domain.TargetNewProject, Options{Template: &template})
	require.NoError(t, err)
	assert.Equal(t, domain.DestNewProject, dest)

	state, err := sessions.Get(ctx, sessionID)
	require.NoError(t, err)
	require.NotNil(t, state.SelectedTemplate)
	assert.Equal(t, "ecommerce", state.ProjectConfig.Category)
	assert.Equal(t, "react-tailwind", state.ProjectConfig.Frontend)
	assert.Equal(t, sessiondomain.PhaseProject, state.CurrentStep)
}

func TestNavigateToWorkflow_NewProjectBlank(t *testing.T) {
	policy, sessions, _, sessionID := setupPolicy(t)
	ctx := context.Background()

	dest, err := policy.NavigateToWorkflow(ctx, sessionID, domain.TargetNewProject, Options{})
	require.NoError(t, err)
	assert.Equal(t, domain.DestNewProject, dest)

	state, err := sessions.Get(ctx, sessionID)
	require.NoError(t, err)
	assert.Nil(t, state.SelectedTemplate)
	assert.Equal(t, sessiondomain.PhaseProject, state.CurrentStep)
}

func TestNavigateToWorkflow_PricingAlwaysReachable(t *testing.T) {
	policy, sessions, _, sessionID := setupPolicy(t)
	ctx := context.Background()

	// No configured project, pricing is still a valid destination.
	dest, err := policy.NavigateToWorkflow(ctx, sessionID, domain.TargetPricing, Options{})
	require.NoError(t, err)
	assert.Equal(t, domain.DestPricing, dest)

	state, err := sessions.Get(ctx, sessionID)
	require.NoError(t, err)
	assert.Equal(t, sessiondomain.PhasePricing, state.CurrentStep)
}

func TestNavigateToWorkflow_CheckoutGuard(t *testing.T) {
	policy, sessions, _, sessionID := setupPolicy(t)
	ctx := context.Background()

	// Unconfigured session bounces to templates.
	dest, err := policy.NavigateToWorkflow(ctx, sessionID, domain.TargetCheckout, Options{})
	require.NoError(t, err)
	assert.Equal(t, domain.DestTemplates, dest)

	// Once the project has a name, checkout opens.
	nameSession(t, sessions, sessionID, "My Shop")
	dest, err = policy.NavigateToWorkflow(ctx, sessionID, domain.TargetCheckout, Options{})
	require.NoError(t, err)
	assert.Equal(t, domain.DestCheckout, dest)
}

func TestNavigateFromPricing_AgreesWithCheckoutTarget(t *testing.T) {
	policy, sessions, _, sessionID := setupPolicy(t)
	ctx := context.Background()

	// Both checkout entry paths must make the same call, before and after
	// the configuration becomes active.
	fromPricing, err := policy.NavigateFromPricing(ctx, sessionID)
	require.NoError(t, err)
	viaTarget, err := policy.NavigateToWorkflow(ctx, sessionID, domain.TargetCheckout, Options{})
	require.NoError(t, err)
	assert.Equal(t, viaTarget, fromPricing)
	assert.Equal(t, domain.DestTemplates, fromPricing)

	nameSession(t, sessions, sessionID, "My Shop")

	fromPricing, err = policy.NavigateFromPricing(ctx, sessionID)
	require.NoError(t, err)
	viaTarget, err = policy.NavigateToWorkflow(ctx, sessionID, domain.TargetCheckout, Options{})
	require.NoError(t, err)
	assert.Equal(t, viaTarget, fromPricing)
	assert.Equal(t, domain.DestCheckout, fromPricing)
}

func TestNavigateToWorkflow_Reset(t *testing.T) {
	policy, sessions, wizard, sessionID := setupPolicy(t)
	ctx := context.Background()

	nameSession(t, sessions, sessionID, "Old Project")
	name := "Old Project"
	description := "old"
	category := "saas"
	_, err := wizard.UpdateBasics(ctx, sessionID, wizardservice.BasicsUpdate{
		Name: &name, Description: &description, Category: &category,
	})
	require.NoError(t, err)
	_, _, err = wizard.Next(ctx, sessionID)
	require.NoError(t, err)

	dest, err := policy.NavigateToWorkflow(ctx, sessionID, domain.TargetNewProject, Options{Reset: true})
	require.NoError(t, err)
	assert.Equal(t, domain.DestNewProject, dest)

	state, err := sessions.Get(ctx, sessionID)
	require.NoError(t, err)
	assert.Empty(t, state.ProjectConfig.Name)
	assert.Nil(t, state.SelectedTemplate)

	step, err := wizard.Current(ctx, sessionID)
	require.NoError(t, err)
	assert.Equal(t, 1, int(step))
}

func TestNavigateToWorkflow_PassthroughTarget(t *testing.T) {
	policy, sessions, _, sessionID := setupPolicy(t)
	ctx := context.Background()

	before, err := sessions.Get(ctx, sessionID)
	require.NoError(t, err)

	dest, err := policy.NavigateToWorkflow(ctx, sessionID, "about", Options{})
	require.NoError(t, err)
	assert.Equal(t, domain.Destination("about"), dest)

	// Static pages leave the session alone.
	after, err := sessions.Get(ctx, sessionID)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestNavigateFromPricing_UnknownSession(t *testing.T) {
	policy, _, _, _ := setupPolicy(t)

	_, err := policy.NavigateFromPricing(context.Background(), "nope")
	assert.ErrorIs(t, err, sessiondomain.ErrSessionNotFound)
}
