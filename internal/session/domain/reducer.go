package domain

import "strings"

// Apply produces the next session state for an action. The input snapshot
// is never mutated; callers may keep old snapshots to detect change.
func Apply(state State, action Action) State {
	switch a := action.(type) {
	case SelectTemplate:
		t := a.Template
		next := state
		next.SelectedTemplate = &t
		next.ProjectConfig = cloneConfig(state.ProjectConfig)
		next.ProjectConfig.Category = t.Category
		next.ProjectConfig.Frontend = t.TechStack.Frontend
		next.ProjectConfig.Backend = t.TechStack.Backend
		next.ProjectConfig.UITemplate = TemplateSlug(t.Name)
		next.ProjectConfig.Tier = "Starter"
		next.CurrentStep = PhaseProject
		next.ConfigVersion = state.ConfigVersion + 1
		return next

	case UpdateProjectConfig:
		next := state
		next.ProjectConfig = mergeConfig(state.ProjectConfig, a.Patch)
		next.ConfigVersion = state.ConfigVersion + 1
		return next

	case SetPricing:
		q := a.Quote
		next := state
		next.Pricing = &q
		next.PricingVersion = a.Version
		next.CurrentStep = PhasePricing
		return next

	case ResetProject:
		return DefaultState()

	case SetStep:
		next := state
		next.CurrentStep = a.Step
		return next

	default:
		return state
	}
}

// TemplateSlug derives the ui_template identifier from a template's display
// name: lower-cased, whitespace runs replaced with hyphens.
func TemplateSlug(name string) string {
	return strings.Join(strings.Fields(strings.ToLower(name)), "-")
}

func mergeConfig(cfg ProjectConfig, p ConfigPatch) ProjectConfig {
	out := cloneConfig(cfg)

	if p.Name != nil {
		out.Name = *p.Name
	}
	if p.Description != nil {
		out.Description = *p.Description
	}
	if p.Category != nil {
		out.Category = *p.Category
	}
	if p.Platform != nil {
		out.Platform = *p.Platform
	}
	if p.Frontend != nil {
		out.Frontend = *p.Frontend
	}
	if p.Backend != nil {
		out.Backend = *p.Backend
	}
	if p.UITemplate != nil {
		out.UITemplate = *p.UITemplate
	}
	if p.CustomDesignDescription != nil {
		out.CustomDesignDescription = *p.CustomDesignDescription
	}
	if p.Features != nil {
		out.Features = append([]string{}, (*p.Features)...)
	}
	if p.Addons != nil {
		out.Addons = append([]string{}, (*p.Addons)...)
	}
	if p.DeploymentOption != nil {
		out.DeploymentOption = *p.DeploymentOption
	}
	if p.GithubRepoURL != nil {
		out.GithubRepoURL = *p.GithubRepoURL
	}
	if p.Tier != nil {
		out.Tier = *p.Tier
	}
	if p.IsStudent != nil {
		out.IsStudent = *p.IsStudent
	}

	return out
}

// cloneConfig copies the slice-valued fields so edits on the new snapshot
// can never reach back into an older one.
func cloneConfig(cfg ProjectConfig) ProjectConfig {
	out := cfg
	out.Features = append([]string{}, cfg.Features...)
	out.Addons = append([]string{}, cfg.Addons...)
	return out
}
