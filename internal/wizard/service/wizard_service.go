package service

import (
	"context"
	"slices"

	catalogdomain "github.com/seeforge-labs/seeforge-gateway/internal/catalog/domain"
	catalogservice "github.com/seeforge-labs/seeforge-gateway/internal/catalog/service"
	pricingservice "github.com/seeforge-labs/seeforge-gateway/internal/pricing/service"
	sessiondomain "github.com/seeforge-labs/seeforge-gateway/internal/session/domain"
	sessionservice "github.com/seeforge-labs/seeforge-gateway/internal/session/service"
	"github.com/seeforge-labs/seeforge-gateway/internal/wizard/domain"
	"github.com/seeforge-labs/seeforge-gateway/internal/wizard/repository"
)

// Service drives the six-step configuration wizard. All configuration edits
// flow through the session store's action set; the wizard adds ordering,
// per-step validation, and the step-6 pricing side effect on top.
type Service struct {
	sessions *sessionservice.Service
	steps    *repository.StepRepository
	catalog  *catalogservice.Service
	engine   *pricingservice.Engine
}

// NewService creates a new wizard service.
func NewService(sessions *sessionservice.Service, steps *repository.StepRepository, catalog *catalogservice.Service, engine *pricingservice.Engine) *Service {
	return &Service{sessions: sessions, steps: steps, catalog: catalog, engine: engine}
}

// Current returns the wizard position for a session.
func (s *Service) Current(ctx context.Context, sessionID string) (domain.Step, error) {
	if _, err := s.sessions.Get(ctx, sessionID); err != nil {
		return domain.FirstStep, err
	}
	return s.steps.Get(ctx, sessionID)
}

// Next advances the wizard by one step. At the last step it is a no-op.
// Leaving the basics step requires name, description, and category; a miss
// surfaces as a ValidationError and the step stays put.
//
// Entering the review step always recomputes pricing against the current
// configuration, so the review can never show a quote older than the
// configuration it reviews.
func (s *Service) Next(ctx context.Context, sessionID string) (domain.Step, sessiondomain.State, error) {
	state, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return domain.FirstStep, sessiondomain.State{}, err
	}

	step, err := s.steps.Get(ctx, sessionID)
	if err != nil {
		return domain.FirstStep, sessiondomain.State{}, err
	}

	if step >= domain.LastStep {
		return step, state, nil
	}

	if step == domain.StepBasics {
		if verr := validateBasics(state.ProjectConfig); verr != nil {
			return step, state, verr
		}
	}

	next := step.Next()
	if err := s.steps.Save(ctx, sessionID, next); err != nil {
		return step, state, err
	}

	if next == domain.StepReviewPricing {
		quote := s.engine.Quote(ctx, state.ProjectConfig)
		state, err = s.sessions.Dispatch(ctx, sessionID, sessiondomain.SetPricing{
			Quote:   quote,
			Version: state.ConfigVersion,
		})
		if err != nil {
			return next, sessiondomain.State{}, err
		}
	}

	return next, state, nil
}

// Back recedes the wizard by one step. At the first step it is a no-op.
func (s *Service) Back(ctx context.Context, sessionID string) (domain.Step, error) {
	step, err := s.steps.Get(ctx, sessionID)
	if err != nil {
		return domain.FirstStep, err
	}

	prev := step.Back()
	if prev == step {
		return step, nil
	}
	if err := s.steps.Save(ctx, sessionID, prev); err != nil {
		return step, err
	}
	return prev, nil
}

// Reset rewinds the wizard to the first step.
func (s *Service) Reset(ctx context.Context, sessionID string) error {
	return s.steps.Reset(ctx, sessionID)
}

// BasicsUpdate carries the step-1 fields. Nil fields are left unchanged.
type BasicsUpdate struct {
	Name        *string
	Description *string
	Category    *string
	Platform    *string
}

// UpdateBasics applies step-1 edits. Category and platform must be drawn
// from their fixed enumerations when supplied.
func (s *Service) UpdateBasics(ctx context.Context, sessionID string, upd BasicsUpdate) (sessiondomain.State, error) {
	if upd.Category != nil && !slices.Contains(sessiondomain.Categories, *upd.Category) {
		return sessiondomain.State{}, domain.UnknownChoice("category", *upd.Category)
	}
	if upd.Platform != nil && !slices.Contains(sessiondomain.Platforms, *upd.Platform) {
		return sessiondomain.State{}, domain.UnknownChoice("platform", *upd.Platform)
	}

	return s.sessions.Dispatch(ctx, sessionID, sessiondomain.UpdateProjectConfig{
		Patch: sessiondomain.ConfigPatch{
			Name:        upd.Name,
			Description: upd.Description,
			Category:    upd.Category,
			Platform:    upd.Platform,
		},
	})
}

// SetFrontend applies the step-2 choice of a catalog-known frontend stack.
func (s *Service) SetFrontend(ctx context.Context, sessionID, stackID string) (sessiondomain.State, error) {
	if !s.catalog.HasFrontend(stackID) {
		return sessiondomain.State{}, domain.UnknownChoice("frontend", stackID)
	}
	return s.sessions.Dispatch(ctx, sessionID, sessiondomain.UpdateProjectConfig{
		Patch: sessiondomain.ConfigPatch{Frontend: &stackID},
	})
}

// SetBackend applies the step-3 choice of a catalog-known backend stack.
func (s *Service) SetBackend(ctx context.Context, sessionID, stackID string) (sessiondomain.State, error) {
	if !s.catalog.HasBackend(stackID) {
		return sessiondomain.State{}, domain.UnknownChoice("backend", stackID)
	}
	return s.sessions.Dispatch(ctx, sessionID, sessiondomain.UpdateProjectConfig{
		Patch: sessiondomain.ConfigPatch{Backend: &stackID},
	})
}

// SetUITemplate applies the step-4 choice. Picking the "custom" sentinel
// stores the free-text design brief; picking any concrete template clears a
// previously stored brief so no orphaned custom text survives.
func (s *Service) SetUITemplate(ctx context.Context, sessionID, templateID, customDescription string) (sessiondomain.State, error) {
	if !s.catalog.HasUITemplate(templateID) {
		return sessiondomain.State{}, domain.UnknownChoice("ui_template", templateID)
	}

	description := ""
	if templateID == catalogdomain.CustomUITemplateID {
		description = customDescription
	}

	return s.sessions.Dispatch(ctx, sessionID, sessiondomain.UpdateProjectConfig{
		Patch: sessiondomain.ConfigPatch{
			UITemplate:              &templateID,
			CustomDesignDescription: &description,
		},
	})
}

// ToggleFeature flips membership of a catalog-known feature id in the
// feature set. Existing members keep their insertion order.
func (s *Service) ToggleFeature(ctx context.Context, sessionID, featureID string) (sessiondomain.State, error) {
	if !s.catalog.HasFeature(featureID) {
		return sessiondomain.State{}, domain.UnknownChoice("feature", featureID)
	}

	state, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return sessiondomain.State{}, err
	}

	features := toggle(state.ProjectConfig.Features, featureID)
	return s.sessions.Dispatch(ctx, sessionID, sessiondomain.UpdateProjectConfig{
		Patch: sessiondomain.ConfigPatch{Features: &features},
	})
}

// ToggleAddon flips membership of a catalog-known addon id in the addon set.
func (s *Service) ToggleAddon(ctx context.Context, sessionID, addonID string) (sessiondomain.State, error) {
	if !s.catalog.HasAddon(addonID) {
		return sessiondomain.State{}, domain.UnknownChoice("addon", addonID)
	}

	state, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return sessiondomain.State{}, err
	}

	addons := toggle(state.ProjectConfig.Addons, addonID)
	return s.sessions.Dispatch(ctx, sessionID, sessiondomain.UpdateProjectConfig{
		Patch: sessiondomain.ConfigPatch{Addons: &addons},
	})
}

// OptionsUpdate carries the remaining step-5 fields. Nil fields are left
// unchanged.
type OptionsUpdate struct {
	GithubRepoURL    *string
	IsStudent        *bool
	DeploymentOption *string
}

// UpdateOptions applies the step-5 enhancement/discount/deployment fields.
func (s *Service) UpdateOptions(ctx context.Context, sessionID string, upd OptionsUpdate) (sessiondomain.State, error) {
	if upd.DeploymentOption != nil && !slices.Contains(sessiondomain.DeploymentOptions, *upd.DeploymentOption) {
		return sessiondomain.State{}, domain.UnknownChoice("deployment_option", *upd.DeploymentOption)
	}

	return s.sessions.Dispatch(ctx, sessionID, sessiondomain.UpdateProjectConfig{
		Patch: sessiondomain.ConfigPatch{
			GithubRepoURL:    upd.GithubRepoURL,
			IsStudent:        upd.IsStudent,
			DeploymentOption: upd.DeploymentOption,
		},
	})
}

func validateBasics(cfg sessiondomain.ProjectConfig) *domain.ValidationError {
	var missing []string
	if cfg.Name == "" {
		missing = append(missing, "name")
	}
	if cfg.Description == "" {
		missing = append(missing, "description")
	}
	if cfg.Category == "" {
		missing = append(missing, "category")
	}
	if len(missing) > 0 {
		return domain.MissingFields(missing...)
	}
	return nil
}

// toggle returns a new slice with id removed if present (preserving the
// order of the rest) or appended if absent.
func toggle(ids []string, id string) []string {
	out := make([]string, 0, len(ids)+1)
	found := false
	for _, existing := range ids {
		if existing == id {
			found = true
			continue
		}
		out = append(out, existing)
	}
	if !found {
		out = append(out, id)
	}
	return out
}
