package domain

import (
	catalogdomain "github.com/seeforge-labs/seeforge-gateway/internal/catalog/domain"
	pricingdomain "github.com/seeforge-labs/seeforge-gateway/internal/pricing/domain"
)

// Action is one of the fixed set of session state transitions. Anything
// else handed to Apply leaves the state untouched; forward/backward
// navigation races must degrade to no-ops, not errors.
type Action interface {
	isAction()
}

// SelectTemplate records the chosen template and seeds the configuration
// from it (one-time copy, not a live link).
type SelectTemplate struct {
	Template catalogdomain.Template
}

// UpdateProjectConfig shallow-merges the set fields of Patch into the
// configuration. Template selection, pricing, and phase are untouched.
type UpdateProjectConfig struct {
	Patch ConfigPatch
}

// SetPricing replaces the stored quote and advances the phase to pricing.
// Version is the configuration version the quote was computed against.
type SetPricing struct {
	Quote   pricingdomain.Quote
	Version int
}

// ResetProject restores the entire session to its defaults.
type ResetProject struct{}

// SetStep replaces the phase only.
type SetStep struct {
	Step Phase
}

func (SelectTemplate) isAction()      {}
func (UpdateProjectConfig) isAction() {}
func (SetPricing) isAction()         {}
func (ResetProject) isAction()       {}
func (SetStep) isAction()            {}

// ConfigPatch carries partial configuration edits. Nil fields are left
// as-is; non-nil fields replace the current value wholesale.
type ConfigPatch struct {
	Name                    *string
	Description             *string
	Category                *string
	Platform                *string
	Frontend                *string
	Backend                 *string
	UITemplate              *string
	CustomDesignDescription *string
	Features                *[]string
	Addons                  *[]string
	DeploymentOption        *string
	GithubRepoURL           *string
	Tier                    *string
	IsStudent               *bool
}
