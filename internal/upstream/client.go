package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"golang.org/x/time/rate"

	catalogdomain "github.com/seeforge-labs/seeforge-gateway/internal/catalog/domain"
	pricingdomain "github.com/seeforge-labs/seeforge-gateway/internal/pricing/domain"
	sessiondomain "github.com/seeforge-labs/seeforge-gateway/internal/session/domain"
)

// DefaultTimeout is the standard timeout for upstream operations.
const DefaultTimeout = 30 * time.Second

// Client talks to the upstream SeeForge API: pricing calculation, project
// persistence, and the template catalog. It is the only component allowed
// to cross the network boundary.
type Client struct {
	baseURL       string
	httpClient    *http.Client
	limiter       *rate.Limiter
	fallbackToken string
}

// Options configures optional client behavior.
type Options struct {
	Timeout       time.Duration
	RatePerSecond int
}

// NewClient creates a new upstream client. The fallback token is sent when
// a caller supplies no bearer token of its own.
func NewClient(baseURL, fallbackToken string, opts Options) *Client {
	timeout := opts.Timeout
	if timeout == 0 {
		timeout = DefaultTimeout
	}
	perSecond := opts.RatePerSecond
	if perSecond <= 0 {
		perSecond = 20
	}

	return &Client{
		baseURL:       baseURL,
		httpClient:    &http.Client{Timeout: timeout},
		limiter:       rate.NewLimiter(rate.Limit(perSecond), perSecond),
		fallbackToken: fallbackToken,
	}
}

// CalculatePricing submits the full configuration to the upstream pricing
// endpoint and returns its quote verbatim.
func (c *Client) CalculatePricing(ctx context.Context, cfg sessiondomain.ProjectConfig) (pricingdomain.Quote, error) {
	logger := NewLogger(ctx)
	start := time.Now()

	var quote pricingdomain.Quote
	err := c.postJSON(ctx, "/pricing/calculate", "", cfg, &quote)
	recordUpstreamCall(opPricing, time.Since(start), err)
	if err != nil {
		logger.LogError("calculate_pricing", err)
		return pricingdomain.Quote{}, err
	}
	return quote, nil
}

// CreateProject submits a configured project for persistence. The created
// representation is not consumed further; success or failure only gates
// routing.
func (c *Client) CreateProject(ctx context.Context, cfg sessiondomain.ProjectConfig, token string) error {
	logger := NewLogger(ctx)
	start := time.Now()

	err := c.postJSON(ctx, "/projects", token, cfg, nil)
	recordUpstreamCall(opProjects, time.Since(start), err)
	if err != nil {
		logger.LogError("create_project", err)
		return err
	}
	logger.LogInfof("create_project", "project submitted name=%q", cfg.Name)
	return nil
}

// ListProjects fetches the caller's projects. The upstream has shipped two
// response shapes over time (a bare array and an object wrapping the array
// under "projects"); both are accepted, and anything else degrades to an
// empty list rather than an error.
func (c *Client) ListProjects(ctx context.Context, token string) ([]map[string]any, error) {
	logger := NewLogger(ctx)
	start := time.Now()

	var payload any
	err := c.getJSON(ctx, "/projects", token, &payload)
	recordUpstreamCall(opProjects, time.Since(start), err)
	if err != nil {
		logger.LogError("list_projects", err)
		return nil, err
	}

	switch v := payload.(type) {
	case []any:
		return toObjectList(v), nil
	case map[string]any:
		if wrapped, ok := v["projects"].([]any); ok {
			return toObjectList(wrapped), nil
		}
	}

	logger.LogWarnf("list_projects", "unexpected response shape %T, returning empty list", payload)
	return []map[string]any{}, nil
}

// FetchTemplates fetches the template catalog, tolerating the same bare
// list / wrapped list shapes as ListProjects.
func (c *Client) FetchTemplates(ctx context.Context) ([]catalogdomain.Template, error) {
	logger := NewLogger(ctx)
	start := time.Now()

	var raw json.RawMessage
	err := c.getJSON(ctx, "/templates", "", &raw)
	recordUpstreamCall(opTemplates, time.Since(start), err)
	if err != nil {
		logger.LogError("fetch_templates", err)
		return nil, err
	}

	var templates []catalogdomain.Template
	if err := json.Unmarshal(raw, &templates); err == nil {
		return templates, nil
	}

	var wrapped struct {
		Templates []catalogdomain.Template `json:"templates"`
	}
	if err := json.Unmarshal(raw, &wrapped); err == nil && wrapped.Templates != nil {
		return wrapped.Templates, nil
	}

	logger.LogWarn("fetch_templates", "unexpected response shape, returning empty list")
	return []catalogdomain.Template{}, nil
}

func (c *Client) postJSON(ctx context.Context, path, token string, body, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limit wait: %w", err)
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	c.setAuth(req, token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("upstream request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return fmt.Errorf("upstream returned status %d", resp.StatusCode)
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode JSON: %w", err)
	}
	return nil
}

func (c *Client) getJSON(ctx context.Context, path, token string, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limit wait: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	c.setAuth(req, token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("upstream request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return fmt.Errorf("upstream returned status %d", resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode JSON: %w", err)
	}
	return nil
}

func (c *Client) setAuth(req *http.Request, token string) {
	if token == "" {
		token = c.fallbackToken
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
}

func toObjectList(items []any) []map[string]any {
	out := make([]map[string]any, 0, len(items))
	for _, item := range items {
		if obj, ok := item.(map[string]any); ok {
			out = append(out, obj)
		}
	}
	return out
}
