package domain

// Quote is a derived price breakdown for one project configuration.
// All amounts are whole currency units (INR); none may be negative.
// A quote is disposable: it is stale the moment the configuration that
// produced it changes, and must then be recomputed, never patched.
type Quote struct {
	BaseCost     int    `json:"base_cost"`
	FeaturesCost int    `json:"features_cost"`
	AddonsCost   int    `json:"addons_cost"`
	Discount     int    `json:"discount"`
	TotalCost    int    `json:"total_cost"`
	Timeline     string `json:"timeline"`
}

// DefaultTimeline is the delivery estimate used when the upstream API
// does not supply one.
const DefaultTimeline = "2-3 weeks"
