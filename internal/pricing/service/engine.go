package service

import (
	"context"
	"math"

	"github.com/seeforge-labs/seeforge-gateway/internal/pricing/domain"
	sessiondomain "github.com/seeforge-labs/seeforge-gateway/internal/session/domain"
)

const (
	// StarterBasePrice anchors the local fallback when the configured tier
	// is unknown to the catalog.
	StarterBasePrice = 3000

	// EnhancementBasePrice replaces the tier base when the visitor brings
	// an existing repository instead of starting from scratch.
	EnhancementBasePrice = 700

	studentDiscountRate = 0.15
)

// Strategy computes a quote from a configuration. Both strategies honor the
// same contract: deterministic output for identical inputs, all amounts in
// whole currency units.
type Strategy interface {
	Calculate(ctx context.Context, cfg sessiondomain.ProjectConfig) (domain.Quote, error)
}

// Engine is the pricing engine: it asks the remote strategy first and falls
// back to the local one only when the remote request fails. The fallback is
// a degraded-mode substitute, never a cache.
type Engine struct {
	remote Strategy
	local  *LocalStrategy
}

// NewEngine creates a pricing engine. remote may be nil, in which case every
// quote is computed locally.
func NewEngine(remote Strategy, local *LocalStrategy) *Engine {
	return &Engine{remote: remote, local: local}
}

// Quote computes the current price breakdown for a configuration.
func (e *Engine) Quote(ctx context.Context, cfg sessiondomain.ProjectConfig) domain.Quote {
	if e.remote != nil {
		quote, err := e.remote.Calculate(ctx, cfg)
		if err == nil {
			return quote
		}
		// Transport failure: the local strategy takes over, the user keeps
		// moving. The client already logged the error.
	}

	quote, _ := e.local.Calculate(ctx, cfg)
	return quote
}

// PricingClient is the slice of the upstream client the remote strategy needs.
type PricingClient interface {
	CalculatePricing(ctx context.Context, cfg sessiondomain.ProjectConfig) (domain.Quote, error)
}

// RemoteStrategy delegates the whole computation to the upstream pricing
// API and accepts its breakdown verbatim.
type RemoteStrategy struct {
	client PricingClient
}

// NewRemoteStrategy creates a remote pricing strategy.
func NewRemoteStrategy(client PricingClient) *RemoteStrategy {
	return &RemoteStrategy{client: client}
}

func (s *RemoteStrategy) Calculate(ctx context.Context, cfg sessiondomain.ProjectConfig) (domain.Quote, error) {
	quote, err := s.client.CalculatePricing(ctx, cfg)
	if err != nil {
		return domain.Quote{}, err
	}
	if quote.Timeline == "" {
		quote.Timeline = domain.DefaultTimeline
	}
	return quote, nil
}

// Catalog is the lookup surface the local strategy prices against.
// A miss contributes zero cost, it is never an error.
type Catalog interface {
	FeaturePrice(id string) (int, bool)
	AddonPrice(id string) (int, bool)
	TierBase(name string) (int, bool)
}

// LocalStrategy recomputes the breakdown from catalog data. It never fails;
// the error return exists only to satisfy the Strategy contract.
type LocalStrategy struct {
	catalog Catalog
}

// NewLocalStrategy creates a local pricing strategy.
func NewLocalStrategy(catalog Catalog) *LocalStrategy {
	return &LocalStrategy{catalog: catalog}
}

func (s *LocalStrategy) Calculate(_ context.Context, cfg sessiondomain.ProjectConfig) (domain.Quote, error) {
	baseCost := s.baseCost(cfg)

	featuresCost := 0
	for _, id := range cfg.Features {
		if price, ok := s.catalog.FeaturePrice(id); ok {
			featuresCost += price
		}
	}

	addonsCost := 0
	for _, id := range cfg.Addons {
		if price, ok := s.catalog.AddonPrice(id); ok {
			addonsCost += price
		}
	}

	subtotal := baseCost + featuresCost + addonsCost

	discount := 0
	if cfg.IsStudent {
		discount = int(math.Round(studentDiscountRate * float64(subtotal)))
	}

	return domain.Quote{
		BaseCost:     baseCost,
		FeaturesCost: featuresCost,
		AddonsCost:   addonsCost,
		Discount:     discount,
		TotalCost:    subtotal - discount,
		Timeline:     domain.DefaultTimeline,
	}, nil
}

func (s *LocalStrategy) baseCost(cfg sessiondomain.ProjectConfig) int {
	// Enhancement flow: an existing repository swaps the tier base for the
	// flat enhancement price.
	if cfg.GithubRepoURL != "" {
		return EnhancementBasePrice
	}
	if base, ok := s.catalog.TierBase(cfg.Tier); ok {
		return base
	}
	return StarterBasePrice
}
