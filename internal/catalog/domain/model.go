package domain

// Template is a project template a visitor can start from.
// It is read-only reference data; selecting one copies a few of its fields
// into the session's project configuration, it never links back.
type Template struct {
	ID                 string    `json:"id"`
	Name               string    `json:"name"`
	Description        string    `json:"description"`
	Category           string    `json:"category"`
	PreviewImage       string    `json:"preview_image,omitempty"`
	Features           []string  `json:"features"`
	TechStack          TechStack `json:"tech_stack"`
	EstimatedBuildTime string    `json:"estimated_build_time"`
	BasePrice          int       `json:"base_price"`
}

// TechStack names the frontend/backend pairing a template ships with.
type TechStack struct {
	Frontend string `json:"frontend"`
	Backend  string `json:"backend"`
}

// Feature is a selectable core feature. Included features carry no cost.
type Feature struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Price    int    `json:"price"`
	Included bool   `json:"included,omitempty"`
}

// Addon is a selectable add-on service. Addons have no "included"
// exemption; every addon is priced.
type Addon struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Price     int    `json:"price"`
	Recurring bool   `json:"recurring,omitempty"`
}

// Stack describes a frontend or backend technology choice in the wizard.
type Stack struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Recommended bool   `json:"recommended,omitempty"`
	TimeImpact  string `json:"time_impact"`
	BestFor     string `json:"best_for,omitempty"`
}

// Tier is a named pricing package used as the coarse pricing anchor.
type Tier struct {
	Name  string `json:"name"`
	Price int    `json:"price"`
}

// CustomUITemplateID is the sentinel identifier for the "bring your own
// design" choice in the UI-template step.
const CustomUITemplateID = "custom"
