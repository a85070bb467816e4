package service

import (
	"sync"

	"github.com/seeforge-labs/seeforge-gateway/internal/catalog/domain"
)

// Service holds the read-only reference catalogs: project templates,
// features, addons, tech stacks, and pricing tiers.
//
// Lookup methods return an explicit (value, ok) pair. A miss is a valid
// outcome the caller turns into zero cost or a no-op, never an error; that
// policy belongs to this contract, not to individual call sites.
type Service struct {
	mu        sync.RWMutex
	templates []domain.Template

	features    map[string]domain.Feature
	addons      map[string]domain.Addon
	frontends   map[string]domain.Stack
	backends    map[string]domain.Stack
	uiTemplates map[string]struct{}
	tiers       map[string]domain.Tier

	featureOrder  []string
	addonOrder    []string
	frontendOrder []string
	backendOrder  []string
}

// New creates a catalog service seeded with the built-in data.
func New() *Service {
	s := &Service{
		features:    make(map[string]domain.Feature),
		addons:      make(map[string]domain.Addon),
		frontends:   make(map[string]domain.Stack),
		backends:    make(map[string]domain.Stack),
		uiTemplates: make(map[string]struct{}),
		tiers:       make(map[string]domain.Tier),
	}

	for _, f := range defaultFeatures() {
		s.features[f.ID] = f
		s.featureOrder = append(s.featureOrder, f.ID)
	}
	for _, a := range defaultAddons() {
		s.addons[a.ID] = a
		s.addonOrder = append(s.addonOrder, a.ID)
	}
	for _, st := range defaultFrontendStacks() {
		s.frontends[st.ID] = st
		s.frontendOrder = append(s.frontendOrder, st.ID)
	}
	for _, st := range defaultBackendStacks() {
		s.backends[st.ID] = st
		s.backendOrder = append(s.backendOrder, st.ID)
	}
	for _, id := range defaultUITemplateIDs() {
		s.uiTemplates[id] = struct{}{}
	}
	for _, t := range defaultTiers() {
		s.tiers[t.Name] = t
	}
	s.templates = defaultTemplates()

	return s
}

// Templates returns the current template list.
func (s *Service) Templates() []domain.Template {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Template, len(s.templates))
	copy(out, s.templates)
	return out
}

// TemplateByID looks up a template.
func (s *Service) TemplateByID(id string) (domain.Template, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, t := range s.templates {
		if t.ID == id {
			return t, true
		}
	}
	return domain.Template{}, false
}

// SetTemplates replaces the template list. Called by the catalog refresher;
// an empty list is ignored so a bad upstream response cannot wipe the catalog.
func (s *Service) SetTemplates(templates []domain.Template) {
	if len(templates) == 0 {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.templates = templates
}

// FeaturePrice returns the price of a feature. Included features cost zero.
func (s *Service) FeaturePrice(id string) (int, bool) {
	f, ok := s.features[id]
	if !ok {
		return 0, false
	}
	if f.Included {
		return 0, true
	}
	return f.Price, true
}

// AddonPrice returns the price of an addon.
func (s *Service) AddonPrice(id string) (int, bool) {
	a, ok := s.addons[id]
	if !ok {
		return 0, false
	}
	return a.Price, true
}

// TierBase returns the base price of a pricing tier.
func (s *Service) TierBase(name string) (int, bool) {
	t, ok := s.tiers[name]
	if !ok {
		return 0, false
	}
	return t.Price, true
}

// HasFeature reports whether the feature id is catalog-known.
func (s *Service) HasFeature(id string) bool {
	_, ok := s.features[id]
	return ok
}

// HasAddon reports whether the addon id is catalog-known.
func (s *Service) HasAddon(id string) bool {
	_, ok := s.addons[id]
	return ok
}

// HasFrontend reports whether the frontend stack id is catalog-known.
func (s *Service) HasFrontend(id string) bool {
	_, ok := s.frontends[id]
	return ok
}

// HasBackend reports whether the backend stack id is catalog-known.
func (s *Service) HasBackend(id string) bool {
	_, ok := s.backends[id]
	return ok
}

// HasUITemplate reports whether the UI template id is catalog-known.
// The "custom" sentinel is always known.
func (s *Service) HasUITemplate(id string) bool {
	_, ok := s.uiTemplates[id]
	return ok
}

// Features returns the feature catalog in its fixed display order.
func (s *Service) Features() []domain.Feature {
	out := make([]domain.Feature, 0, len(s.featureOrder))
	for _, id := range s.featureOrder {
		out = append(out, s.features[id])
	}
	return out
}

// Addons returns the addon catalog in its fixed display order.
func (s *Service) Addons() []domain.Addon {
	out := make([]domain.Addon, 0, len(s.addonOrder))
	for _, id := range s.addonOrder {
		out = append(out, s.addons[id])
	}
	return out
}

// FrontendStacks returns the frontend stack catalog.
func (s *Service) FrontendStacks() []domain.Stack {
	out := make([]domain.Stack, 0, len(s.frontendOrder))
	for _, id := range s.frontendOrder {
		out = append(out, s.frontends[id])
	}
	return out
}

// BackendStacks returns the backend stack catalog.
func (s *Service) BackendStacks() []domain.Stack {
	out := make([]domain.Stack, 0, len(s.backendOrder))
	for _, id := range s.backendOrder {
		out = append(out, s.backends[id])
	}
	return out
}

// Tiers returns the pricing tiers ordered by price.
func (s *Service) Tiers() []domain.Tier {
	return defaultTiers()
}
