package service

import (
	"context"

	catalogdomain "github.com/seeforge-labs/seeforge-gateway/internal/catalog/domain"
	"github.com/seeforge-labs/seeforge-gateway/internal/navigation/domain"
	sessiondomain "github.com/seeforge-labs/seeforge-gateway/internal/session/domain"
	sessionservice "github.com/seeforge-labs/seeforge-gateway/internal/session/service"
	wizardservice "github.com/seeforge-labs/seeforge-gateway/internal/wizard/service"
)

// Policy turns a logical intent ("I want to reach X") into a concrete
// destination plus any state mutation the move requires. All ambiguity is
// resolved from the session snapshot, so every entry path into a page makes
// the same decision.
type Policy struct {
	sessions *sessionservice.Service
	wizard   *wizardservice.Service
}

// NewPolicy creates a navigation policy.
func NewPolicy(sessions *sessionservice.Service, wizard *wizardservice.Service) *Policy {
	return &Policy{sessions: sessions, wizard: wizard}
}

// Options modify a workflow navigation.
type Options struct {
	// Template, when set with the new-project target, is selected into the
	// session before navigating.
	Template *catalogdomain.Template

	// Reset clears the whole session (and rewinds the wizard) before the
	// target is evaluated.
	Reset bool
}

// NavigateToWorkflow resolves a workflow target for a session.
func (p *Policy) NavigateToWorkflow(ctx context.Context, sessionID, target string, opts Options) (domain.Destination, error) {
	if opts.Reset {
		if _, err := p.sessions.Dispatch(ctx, sessionID, sessiondomain.ResetProject{}); err != nil {
			return "", err
		}
		if err := p.wizard.Reset(ctx, sessionID); err != nil {
			return "", err
		}
	}

	switch target {
	case domain.TargetTemplates:
		if _, err := p.sessions.Dispatch(ctx, sessionID, sessiondomain.SetStep{Step: sessiondomain.PhaseTemplates}); err != nil {
			return "", err
		}
		return domain.DestTemplates, nil

	case domain.TargetNewProject:
		if opts.Template != nil {
			// Selecting a template also advances the phase to "project".
			if _, err := p.sessions.Dispatch(ctx, sessionID, sessiondomain.SelectTemplate{Template: *opts.Template}); err != nil {
				return "", err
			}
		} else {
			if _, err := p.sessions.Dispatch(ctx, sessionID, sessiondomain.SetStep{Step: sessiondomain.PhaseProject}); err != nil {
				return "", err
			}
		}
		return domain.DestNewProject, nil

	case domain.TargetPricing:
		// Pricing stays reachable straight from marketing pages, configured
		// project or not.
		if _, err := p.sessions.Dispatch(ctx, sessionID, sessiondomain.SetStep{Step: sessiondomain.PhasePricing}); err != nil {
			return "", err
		}
		return domain.DestPricing, nil

	case domain.TargetCheckout:
		state, err := p.sessions.Get(ctx, sessionID)
		if err != nil {
			return "", err
		}
		return checkoutOrTemplates(state), nil

	default:
		// Static pages pass through with no state mutation.
		return domain.Destination(target), nil
	}
}

// NavigateFromPricing resolves the forward destination when a visitor is
// done reviewing pricing.
func (p *Policy) NavigateFromPricing(ctx context.Context, sessionID string) (domain.Destination, error) {
	state, err := p.sessions.Get(ctx, sessionID)
	if err != nil {
		return "", err
	}
	return checkoutOrTemplates(state), nil
}

// checkoutOrTemplates is the single checkout-eligibility rule: an active
// configuration goes to checkout, anything else is redirected to templates.
// Both NavigateToWorkflow and NavigateFromPricing route through it so the
// two entry paths cannot diverge.
func checkoutOrTemplates(state sessiondomain.State) domain.Destination {
	if state.ProjectConfig.Active() {
		return domain.DestCheckout
	}
	return domain.DestTemplates
}
