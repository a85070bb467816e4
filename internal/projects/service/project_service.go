package service

import (
	"context"

	navdomain "github.com/seeforge-labs/seeforge-gateway/internal/navigation/domain"
	pricingservice "github.com/seeforge-labs/seeforge-gateway/internal/pricing/service"
	sessiondomain "github.com/seeforge-labs/seeforge-gateway/internal/session/domain"
	sessionservice "github.com/seeforge-labs/seeforge-gateway/internal/session/service"
	"github.com/seeforge-labs/seeforge-gateway/internal/upstream"
	wizardservice "github.com/seeforge-labs/seeforge-gateway/internal/wizard/service"
)

// Service handles project submission and listing against the upstream API.
// The gateway never persists projects itself.
type Service struct {
	sessions *sessionservice.Service
	wizard   *wizardservice.Service
	engine   *pricingservice.Engine
	client   *upstream.Client
}

// NewService creates a new project service.
func NewService(sessions *sessionservice.Service, wizard *wizardservice.Service, engine *pricingservice.Engine, client *upstream.Client) *Service {
	return &Service{sessions: sessions, wizard: wizard, engine: engine, client: client}
}

// SubmitResult reports how a submission went and where the visitor goes next.
type SubmitResult struct {
	Submitted   bool
	State       sessiondomain.State
	Destination navdomain.Destination
}

// Submit finalizes the session's project: recompute pricing, hand the
// configuration to the upstream API, and route the visitor to the
// dashboard. A failed submission still routes forward; the visitor is
// never trapped in the wizard over a transport error. Only a successful
// submission discards the session state.
func (s *Service) Submit(ctx context.Context, sessionID, token string) (SubmitResult, error) {
	state, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return SubmitResult{}, err
	}

	quote := s.engine.Quote(ctx, state.ProjectConfig)
	state, err = s.sessions.Dispatch(ctx, sessionID, sessiondomain.SetPricing{
		Quote:   quote,
		Version: state.ConfigVersion,
	})
	if err != nil {
		return SubmitResult{}, err
	}

	result := SubmitResult{State: state, Destination: navdomain.DestDashboard}

	if err := s.client.CreateProject(ctx, state.ProjectConfig, token); err != nil {
		// Logged by the client; the visitor moves on regardless.
		return result, nil
	}
	result.Submitted = true

	if _, err := s.sessions.Dispatch(ctx, sessionID, sessiondomain.ResetProject{}); err != nil {
		return result, err
	}
	if err := s.wizard.Reset(ctx, sessionID); err != nil {
		return result, err
	}
	return result, nil
}

// List fetches the caller's projects from the upstream API. Any failure
// degrades to an empty list so the dashboard always renders.
func (s *Service) List(ctx context.Context, token string) []map[string]any {
	projects, err := s.client.ListProjects(ctx, token)
	if err != nil || projects == nil {
		return []map[string]any{}
	}
	return projects
}
