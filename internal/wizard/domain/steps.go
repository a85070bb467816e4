package domain

// Step is the wizard's position in its fixed six-step ordering. It is a
// finer-grained counter than the session phase: the phase says "the visitor
// is configuring a project", the step says exactly where in the wizard.
type Step int

const (
	StepBasics Step = iota + 1
	StepFrontend
	StepBackend
	StepUITemplate
	StepFeaturesAddons
	StepReviewPricing
)

const (
	FirstStep = StepBasics
	LastStep  = StepReviewPricing
)

// Next returns the following step, or the same step at the upper boundary.
func (s Step) Next() Step {
	if s >= LastStep {
		return s
	}
	return s + 1
}

// Back returns the preceding step, or the same step at the lower boundary.
func (s Step) Back() Step {
	if s <= FirstStep {
		return s
	}
	return s - 1
}

func (s Step) String() string {
	switch s {
	case StepBasics:
		return "basics"
	case StepFrontend:
		return "frontend"
	case StepBackend:
		return "backend"
	case StepUITemplate:
		return "ui_template"
	case StepFeaturesAddons:
		return "features_addons"
	case StepReviewPricing:
		return "review_pricing"
	default:
		return "unknown"
	}
}
