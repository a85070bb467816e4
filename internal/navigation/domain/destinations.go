package domain

// Destination is a logical page the gateway tells the frontend to go to.
// The policy deals in named destinations only; route syntax belongs to the
// frontend router.
type Destination string

const (
	DestLanding    Destination = "/"
	DestTemplates  Destination = "/templates"
	DestNewProject Destination = "/new-project"
	DestPricing    Destination = "/pricing"
	DestCheckout   Destination = "/checkout"
	DestDashboard  Destination = "/dashboard"
)

// Workflow targets the policy resolves specially. Any other target is a
// static page and passes through untouched.
const (
	TargetTemplates  = "templates"
	TargetNewProject = "new-project"
	TargetPricing    = "pricing"
	TargetCheckout   = "checkout"
)
