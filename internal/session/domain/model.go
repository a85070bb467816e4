package domain

import (
	catalogdomain "github.com/seeforge-labs/seeforge-gateway/internal/catalog/domain"
	pricingdomain "github.com/seeforge-labs/seeforge-gateway/internal/pricing/domain"
)

// Phase is the coarse cross-page position of a session: which part of the
// flow the visitor is in. It is distinct from the wizard's own step counter.
type Phase string

const (
	PhaseLanding   Phase = "landing"
	PhaseTemplates Phase = "templates"
	PhaseProject   Phase = "project"
	PhasePricing   Phase = "pricing"
)

// Project categories and platforms accepted in the basics step.
var (
	Categories = []string{"ecommerce", "saas", "marketplace", "portfolio", "education", "other"}
	Platforms  = []string{"web", "mobile"}
)

// Deployment options accepted for a configuration.
var DeploymentOptions = []string{"vercel", "netlify", "railway", "render"}

// ProjectConfig is the project being configured through the wizard.
// Field names mirror the upstream wire format.
type ProjectConfig struct {
	Name                    string   `json:"name"`
	Description             string   `json:"description"`
	Category                string   `json:"category"`
	Platform                string   `json:"platform"`
	Frontend                string   `json:"frontend"`
	Backend                 string   `json:"backend"`
	UITemplate              string   `json:"ui_template"`
	CustomDesignDescription string   `json:"custom_design_description,omitempty"`
	Features                []string `json:"features"`
	Addons                  []string `json:"addons"`
	DeploymentOption        string   `json:"deployment_option"`
	GithubRepoURL           string   `json:"github_repo_url,omitempty"`
	Tier                    string   `json:"tier"`
	IsStudent               bool     `json:"is_student"`
}

// DefaultProjectConfig returns the configuration a fresh session starts with.
func DefaultProjectConfig() ProjectConfig {
	return ProjectConfig{
		Platform:         "web",
		Features:         []string{},
		Addons:           []string{},
		DeploymentOption: "vercel",
		Tier:             "Starter",
	}
}

// Active reports whether the configuration has progressed far enough to be
// considered a real project. This gates checkout navigation.
func (c ProjectConfig) Active() bool {
	return c.Name != ""
}

// State is the full session snapshot: the single source of truth every
// component reads. Snapshots are values; applying an action produces a new
// one and never mutates its predecessor.
type State struct {
	SelectedTemplate *catalogdomain.Template `json:"selected_template,omitempty"`
	ProjectConfig    ProjectConfig           `json:"project_config"`
	Pricing          *pricingdomain.Quote    `json:"pricing,omitempty"`
	CurrentStep      Phase                   `json:"current_step"`

	// ConfigVersion counts configuration edits; PricingVersion records the
	// configuration version the stored quote was computed against. A quote
	// whose version trails the configuration is stale.
	ConfigVersion  int `json:"config_version"`
	PricingVersion int `json:"pricing_version"`
}

// DefaultState returns the documented session defaults.
func DefaultState() State {
	return State{
		ProjectConfig: DefaultProjectConfig(),
		CurrentStep:   PhaseLanding,
	}
}

// PricingFresh reports whether the stored quote was computed against the
// current configuration.
func (s State) PricingFresh() bool {
	return s.Pricing != nil && s.PricingVersion == s.ConfigVersion
}
